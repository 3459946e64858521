// Package data holds the tabular dataset the preprocessing rules operate on:
// an ordered set of named, kind-tagged columns backed by gota series.
//
// Every operation that changes a Dataset returns a new one; the receiver is
// never modified.
package data

import (
	"errors"
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

var (
	ErrDuplicateColumn  = errors.New("duplicate column name")
	ErrRowCountMismatch = errors.New("column row count mismatch")
	ErrUnknownColumn    = errors.New("unknown column")
)

// Dataset is an ordered sequence of uniquely named columns of equal length.
type Dataset struct {
	cols  []Column
	index map[string]int
	nrows int
}

// New builds a dataset from columns, in the given order.
func New(cols ...Column) (*Dataset, error) {
	ds := &Dataset{
		cols:  make([]Column, 0, len(cols)),
		index: make(map[string]int, len(cols)),
	}
	for i, c := range cols {
		if _, dup := ds.index[c.Name()]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, c.Name())
		}
		if i == 0 {
			ds.nrows = c.Len()
		} else if c.Len() != ds.nrows {
			return nil, fmt.Errorf("%w: %q has %d rows, want %d", ErrRowCountMismatch, c.Name(), c.Len(), ds.nrows)
		}
		ds.index[c.Name()] = len(ds.cols)
		ds.cols = append(ds.cols, c)
	}
	return ds, nil
}

// Names returns column names in order.
func (d *Dataset) Names() []string {
	names := make([]string, len(d.cols))
	for i, c := range d.cols {
		names[i] = c.Name()
	}
	return names
}

func (d *Dataset) Nrow() int { return d.nrows }

func (d *Dataset) Ncol() int { return len(d.cols) }

// Column looks up a column by name.
func (d *Dataset) Column(name string) (Column, bool) {
	i, ok := d.index[name]
	if !ok {
		return Column{}, false
	}
	return d.cols[i], true
}

// Columns returns the columns in order.
func (d *Dataset) Columns() []Column {
	out := make([]Column, len(d.cols))
	copy(out, d.cols)
	return out
}

// Drop returns a dataset without the named columns. Names not present are
// ignored.
func (d *Dataset) Drop(names ...string) *Dataset {
	drop := make(map[string]struct{}, len(names))
	for _, n := range names {
		drop[n] = struct{}{}
	}
	out := &Dataset{
		cols:  make([]Column, 0, len(d.cols)),
		index: make(map[string]int, len(d.cols)),
		nrows: d.nrows,
	}
	for _, c := range d.cols {
		if _, ok := drop[c.Name()]; ok {
			continue
		}
		out.index[c.Name()] = len(out.cols)
		out.cols = append(out.cols, c)
	}
	return out
}

// Replace returns a dataset where each given column takes the place of the
// existing column with the same name.
func (d *Dataset) Replace(cols ...Column) (*Dataset, error) {
	out := &Dataset{
		cols:  d.Columns(),
		index: make(map[string]int, len(d.index)),
		nrows: d.nrows,
	}
	for k, v := range d.index {
		out.index[k] = v
	}
	for _, c := range cols {
		i, ok := out.index[c.Name()]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, c.Name())
		}
		if c.Len() != d.nrows {
			return nil, fmt.Errorf("%w: %q has %d rows, want %d", ErrRowCountMismatch, c.Name(), c.Len(), d.nrows)
		}
		out.cols[i] = c
	}
	return out, nil
}

// DataFrame returns a gota view of the dataset.
func (d *Dataset) DataFrame() dataframe.DataFrame {
	ss := make([]series.Series, len(d.cols))
	for i, c := range d.cols {
		ss[i] = c.Series()
	}
	return dataframe.New(ss...)
}

// FromDataFrame converts a gota DataFrame, tagging each column by its series
// type.
func FromDataFrame(df dataframe.DataFrame) (*Dataset, error) {
	if df.Err != nil {
		return nil, df.Err
	}
	cols := make([]Column, 0, df.Ncol())
	for _, name := range df.Names() {
		cols = append(cols, NewColumn(df.Col(name)))
	}
	return New(cols...)
}

// Rows returns a dataset holding the given rows, in the given order.
func (d *Dataset) Rows(idx []int) (*Dataset, error) {
	for _, i := range idx {
		if i < 0 || i >= d.nrows {
			return nil, fmt.Errorf("row %d out of range [0, %d)", i, d.nrows)
		}
	}
	cols := make([]Column, len(d.cols))
	for j, c := range d.cols {
		var s series.Series
		if len(idx) == 0 {
			s = series.New([]string{}, c.s.Type(), c.Name())
		} else {
			s = c.s.Subset(idx)
		}
		if s.Err != nil {
			return nil, fmt.Errorf("column %q: %w", c.Name(), s.Err)
		}
		cols[j] = Column{s: s, kind: c.kind}
	}
	return New(cols...)
}
