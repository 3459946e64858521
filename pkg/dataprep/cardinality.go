package dataprep

import (
	"featprep/pkg/data"
	"featprep/pkg/stats"
)

// DefaultCardinalityThreshold is the distinct-value share above which a
// categorical column is dropped.
const DefaultCardinalityThreshold = 0.5

// CardinalityFilter drops categorical columns whose count of distinct present
// values, over the row count of that same column, exceeds the threshold.
// Numeric columns and label columns are kept.
type CardinalityFilter struct {
	dropper
}

func NewCardinalityFilter(opts ...Option) (*CardinalityFilter, error) {
	s, err := newSettings(DefaultCardinalityThreshold, opts)
	if err != nil {
		return nil, err
	}
	return &CardinalityFilter{dropper{name: "cardinality", settings: s}}, nil
}

func (f *CardinalityFilter) Fit(ds *data.Dataset) error {
	return f.fit(ds, func(p stats.Profile) bool {
		if p.Kind != data.Categorical || f.isLabel(p.Name) {
			return false
		}
		return p.DistinctRatio() > f.threshold
	})
}
