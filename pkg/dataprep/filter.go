// Package dataprep implements fit/transform preprocessing rules for tabular
// datasets: filters that drop columns by missingness, dominant value share or
// cardinality, and an encoder that recodes categories as integers.
//
// Each rule learns its state in Fit and only reads it in Transform. Fit
// replaces earlier state; it never accumulates across calls. A rule instance
// is not safe for concurrent use.
package dataprep

import (
	"fmt"
	"math"

	"featprep/internal/logger"
	"featprep/pkg/data"
	"featprep/pkg/stats"
)

// Option configures a rule at construction.
type Option func(*settings)

type settings struct {
	threshold float64
	labels    map[string]struct{}
}

// WithThreshold overrides the rule's default threshold. It must lie in (0, 1].
func WithThreshold(t float64) Option {
	return func(s *settings) { s.threshold = t }
}

// WithLabel marks label/target columns that a filter must never drop.
// MissingnessFilter and CategoricalEncoder ignore it.
func WithLabel(names ...string) Option {
	return func(s *settings) {
		for _, n := range names {
			s.labels[n] = struct{}{}
		}
	}
}

func newSettings(def float64, opts []Option) (settings, error) {
	s := settings{threshold: def, labels: map[string]struct{}{}}
	for _, o := range opts {
		o(&s)
	}
	if math.IsNaN(s.threshold) || s.threshold <= 0 || s.threshold > 1 {
		return s, fmt.Errorf("%w: got %v", ErrInvalidThreshold, s.threshold)
	}
	return s, nil
}

func (s settings) isLabel(name string) bool {
	_, ok := s.labels[name]
	return ok
}

// Threshold returns the configured threshold.
func (s settings) Threshold() float64 { return s.threshold }

// columnSet is the learned state of a dropping rule.
type columnSet struct {
	fitted bool
	names  []string
}

// dropper carries what the three column filters share: settings, the learned
// set and the drop step of Transform.
type dropper struct {
	name string
	settings
	learned columnSet
}

// fit recomputes the learned set from scratch: a column joins it when
// selected reports true for its profile.
func (d *dropper) fit(ds *data.Dataset, selected func(stats.Profile) bool) error {
	if ds == nil {
		return fmt.Errorf("%s: %w", d.name, ErrNilDataset)
	}
	var names []string
	for _, p := range stats.ProfileDataset(ds) {
		if selected(p) {
			names = append(names, p.Name)
		}
	}
	d.learned = columnSet{fitted: true, names: names}
	logger.WithStep(d.name).Debug("fitted",
		"threshold", d.threshold,
		"columns", ds.Ncol(),
		"drop", names,
	)
	return nil
}

func (d *dropper) Name() string { return d.name }

// Fitted reports whether Fit has run.
func (d *dropper) Fitted() bool { return d.learned.fitted }

// Columns returns the learned columns in the order they appeared at fit time.
func (d *dropper) Columns() []string {
	out := make([]string, len(d.learned.names))
	copy(out, d.learned.names)
	return out
}

// Transform returns a copy of ds without the learned columns. Learned columns
// missing from ds are ignored.
func (d *dropper) Transform(ds *data.Dataset) (*data.Dataset, error) {
	if !d.learned.fitted {
		return nil, fmt.Errorf("%s: %w", d.name, ErrNotFitted)
	}
	if ds == nil {
		return nil, fmt.Errorf("%s: %w", d.name, ErrNilDataset)
	}
	return ds.Drop(d.learned.names...), nil
}
