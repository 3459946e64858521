// Package pipeline chains preprocessing transformers and builds chains from
// YAML configuration.
package pipeline

import (
	"fmt"

	"featprep/internal/logger"
	"featprep/pkg/data"
)

// Transformer is a two-phase preprocessing step: Fit learns from a reference
// dataset, Transform applies what was learned to any dataset.
type Transformer interface {
	Name() string
	Fit(ds *data.Dataset) error
	Transform(ds *data.Dataset) (*data.Dataset, error)
}

// FitTransform fits t on ds and transforms ds with it.
func FitTransform(t Transformer, ds *data.Dataset) (*data.Dataset, error) {
	if err := t.Fit(ds); err != nil {
		return nil, err
	}
	return t.Transform(ds)
}

// Pipeline chains multiple transformers.
type Pipeline struct {
	steps  []Transformer
	output *Schema
}

func NewPipeline(steps ...Transformer) *Pipeline {
	return &Pipeline{steps: steps}
}

// Steps returns the transformers in run order.
func (p *Pipeline) Steps() []Transformer {
	out := make([]Transformer, len(p.steps))
	copy(out, p.steps)
	return out
}

// Fit fits each step on the output of the previous one.
func (p *Pipeline) Fit(ds *data.Dataset) error {
	_, err := p.FitTransform(ds)
	return err
}

// FitTransform fits every step in order and returns the final dataset.
func (p *Pipeline) FitTransform(ds *data.Dataset) (*data.Dataset, error) {
	cur := ds
	for i, step := range p.steps {
		log := logger.WithStep(step.Name())
		log.Debug("fit step", "index", i, "columns", cur.Ncol())
		out, err := FitTransform(step, cur)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i, step.Name(), err)
		}
		if dropped := cur.Ncol() - out.Ncol(); dropped > 0 {
			log.Info("dropped columns", "count", dropped)
		}
		cur = out
	}
	s := SchemaOf(cur)
	p.output = &s
	return cur, nil
}

// Transform runs every fitted step in order.
func (p *Pipeline) Transform(ds *data.Dataset) (*data.Dataset, error) {
	cur := ds
	for i, step := range p.steps {
		out, err := step.Transform(cur)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i, step.Name(), err)
		}
		cur = out
	}
	return cur, nil
}

// OutputSchema is the shape of the dataset produced by the last fit, or nil
// before any fit.
func (p *Pipeline) OutputSchema() *Schema {
	return p.output
}
