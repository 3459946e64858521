package pipeline

import (
	"errors"
	"fmt"
	"sort"

	"featprep/pkg/dataprep"
)

// ErrUnknownStep is returned for a step type with no registered factory.
var ErrUnknownStep = errors.New("unknown step type")

// Factory builds a transformer from its step configuration.
type Factory func(StepConfig) (Transformer, error)

var factories = map[string]Factory{}

// Register makes a step type available to configuration. Registering the
// same type twice replaces the factory.
func Register(stepType string, f Factory) {
	factories[stepType] = f
}

// StepTypes lists the registered step types, sorted.
func StepTypes() []string {
	out := make([]string, 0, len(factories))
	for k := range factories {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func lookup(stepType string) (Factory, error) {
	f, ok := factories[stepType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStep, stepType)
	}
	return f, nil
}

func filterOptions(c StepConfig) []dataprep.Option {
	var opts []dataprep.Option
	if c.Threshold != nil {
		opts = append(opts, dataprep.WithThreshold(*c.Threshold))
	}
	if len(c.Labels) > 0 {
		opts = append(opts, dataprep.WithLabel(c.Labels...))
	}
	return opts
}

func init() {
	Register(StepMissingness, func(c StepConfig) (Transformer, error) {
		f, err := dataprep.NewMissingnessFilter(filterOptions(c)...)
		if err != nil {
			return nil, err
		}
		return f, nil
	})
	Register(StepDominantValue, func(c StepConfig) (Transformer, error) {
		f, err := dataprep.NewDominantValueFilter(filterOptions(c)...)
		if err != nil {
			return nil, err
		}
		return f, nil
	})
	Register(StepCardinality, func(c StepConfig) (Transformer, error) {
		f, err := dataprep.NewCardinalityFilter(filterOptions(c)...)
		if err != nil {
			return nil, err
		}
		return f, nil
	})
	Register(StepCategoricalEncoder, func(StepConfig) (Transformer, error) {
		return dataprep.NewCategoricalEncoder(), nil
	})
}
