package dataprep

import (
	"featprep/pkg/data"
	"featprep/pkg/stats"
)

// DefaultDominantThreshold is the top-value share above which a categorical
// column is dropped.
const DefaultDominantThreshold = 0.95

// DominantValueFilter drops categorical columns where a single value covers
// more than the threshold share of rows. Label columns are kept.
//
// The share is taken over all rows, missing ones included, so missing cells
// dilute the top value. A column with no present values has share 0 and is
// kept.
type DominantValueFilter struct {
	dropper
}

func NewDominantValueFilter(opts ...Option) (*DominantValueFilter, error) {
	s, err := newSettings(DefaultDominantThreshold, opts)
	if err != nil {
		return nil, err
	}
	return &DominantValueFilter{dropper{name: "dominant_value", settings: s}}, nil
}

func (f *DominantValueFilter) Fit(ds *data.Dataset) error {
	return f.fit(ds, func(p stats.Profile) bool {
		if p.Kind != data.Categorical || f.isLabel(p.Name) {
			return false
		}
		return p.TopShare() > f.threshold
	})
}
