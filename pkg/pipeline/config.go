package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"featprep/internal/logger"
)

// Step types understood by configuration.
const (
	StepMissingness        = "missingness"
	StepDominantValue      = "dominant_value"
	StepCardinality        = "cardinality"
	StepCategoricalEncoder = "categorical_encoder"
)

// Config is a pipeline description, usually read from YAML:
//
//	steps:
//	  - type: missingness
//	    threshold: 0.5
//	  - type: dominant_value
//	    labels: [target]
//	  - type: categorical_encoder
type Config struct {
	Steps []StepConfig `yaml:"steps"`
}

// StepConfig configures one step. A nil Threshold keeps the rule's default.
type StepConfig struct {
	Type      string   `yaml:"type"`
	Threshold *float64 `yaml:"threshold,omitempty"`
	Labels    []string `yaml:"labels,omitempty"`
}

// DefaultConfig drops sparse, dominated and high-cardinality columns with
// default thresholds and then encodes what remains.
func DefaultConfig() *Config {
	return &Config{Steps: []StepConfig{
		{Type: StepMissingness},
		{Type: StepDominantValue},
		{Type: StepCardinality},
		{Type: StepCategoricalEncoder},
	}}
}

// ParseConfig decodes and validates a YAML pipeline description. Unknown keys
// are rejected.
func ParseConfig(raw []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse config: empty document")
		}
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every step can be built.
func (c *Config) Validate() error {
	_, err := c.buildSteps()
	return err
}

// Build creates the pipeline described by c.
func (c *Config) Build() (*Pipeline, error) {
	steps, err := c.buildSteps()
	if err != nil {
		return nil, err
	}
	c.warnOrder()
	return NewPipeline(steps...), nil
}

func (c *Config) buildSteps() ([]Transformer, error) {
	if len(c.Steps) == 0 {
		return nil, fmt.Errorf("config: no steps")
	}
	steps := make([]Transformer, 0, len(c.Steps))
	for i, sc := range c.Steps {
		f, err := lookup(sc.Type)
		if err != nil {
			return nil, fmt.Errorf("config: step %d: %w", i, err)
		}
		t, err := f(sc)
		if err != nil {
			return nil, fmt.Errorf("config: step %d (%s): %w", i, sc.Type, err)
		}
		steps = append(steps, t)
	}
	return steps, nil
}

// warnOrder logs every filter placed after the first encoder step.
func (c *Config) warnOrder() {
	encoderAt := -1
	for i, sc := range c.Steps {
		if sc.Type == StepCategoricalEncoder {
			if encoderAt < 0 {
				encoderAt = i
			}
			continue
		}
		if encoderAt >= 0 {
			logger.Warn("column filter runs after the categorical encoder; encoded columns are numeric and skipped by kind-aware filters",
				"step", i, "type", sc.Type)
		}
	}
}
