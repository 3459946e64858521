package dataprep

import (
	"featprep/pkg/data"
	"featprep/pkg/stats"
)

// DefaultMissingThreshold is the missing share above which a column is dropped.
const DefaultMissingThreshold = 0.5

// MissingnessFilter drops columns whose share of missing cells is strictly
// greater than its threshold. Every column is considered, whatever its kind.
type MissingnessFilter struct {
	dropper
}

func NewMissingnessFilter(opts ...Option) (*MissingnessFilter, error) {
	s, err := newSettings(DefaultMissingThreshold, opts)
	if err != nil {
		return nil, err
	}
	return &MissingnessFilter{dropper{name: "missingness", settings: s}}, nil
}

// Fit learns the columns to drop; missing share is over all rows.
func (f *MissingnessFilter) Fit(ds *data.Dataset) error {
	return f.fit(ds, func(p stats.Profile) bool {
		return p.MissingRatio() > f.threshold
	})
}
