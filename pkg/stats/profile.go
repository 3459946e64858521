package stats

import "featprep/pkg/data"

// Profile summarises one column: how many rows it has, how many are missing,
// how many distinct non-missing values appear and which value is most common.
type Profile struct {
	Name     string
	Kind     data.Kind
	Rows     int
	Missing  int
	Distinct int
	Top      string // most common non-missing value, first seen wins ties
	TopCount int
}

// ProfileColumn computes the profile of a single column in one pass.
func ProfileColumn(c data.Column) Profile {
	p := Profile{Name: c.Name(), Kind: c.Kind(), Rows: c.Len()}
	counts := make(map[string]int)
	for i := 0; i < p.Rows; i++ {
		if c.IsMissing(i) {
			p.Missing++
			continue
		}
		v := c.Value(i)
		counts[v]++
		if counts[v] > p.TopCount {
			p.TopCount = counts[v]
			p.Top = v
		}
	}
	p.Distinct = len(counts)
	return p
}

// ProfileDataset profiles every column in dataset order.
func ProfileDataset(ds *data.Dataset) []Profile {
	cols := ds.Columns()
	out := make([]Profile, len(cols))
	for i, c := range cols {
		out[i] = ProfileColumn(c)
	}
	return out
}

// MissingRatio is the share of rows that are missing.
func (p Profile) MissingRatio() float64 {
	return ratio(p.Missing, p.Rows)
}

// TopShare is the share of all rows holding the most common value. A column
// with no present values has share 0.
func (p Profile) TopShare() float64 {
	return ratio(p.TopCount, p.Rows)
}

// DistinctRatio is the number of distinct present values over the row count
// of the same column.
func (p Profile) DistinctRatio() float64 {
	return ratio(p.Distinct, p.Rows)
}

func ratio(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}
