package dataprep

import (
	"fmt"
	"math"
	"strconv"

	"featprep/internal/logger"
	"featprep/pkg/data"
)

// categoryCodes maps each value seen in one column to its code, in first-seen
// order.
type categoryCodes struct {
	codes  map[string]int
	values []string
}

func (c *categoryCodes) add(v string) {
	if _, ok := c.codes[v]; ok {
		return
	}
	c.codes[v] = len(c.values)
	c.values = append(c.values, v)
}

// codeMap is the learned state of CategoricalEncoder.
type codeMap struct {
	fitted  bool
	order   []string
	columns map[string]*categoryCodes
}

// CategoricalEncoder label-encodes columns: each distinct value seen at fit
// time gets an integer code in [0, k-1], assigned in first-seen order.
//
// Fit encodes whatever columns are present, numeric ones included; column
// kind is not consulted. Numeric columns are keyed by the string form of their
// values. Missing cells get no code and stay missing after Transform.
type CategoricalEncoder struct {
	learned codeMap
}

func NewCategoricalEncoder() *CategoricalEncoder {
	return &CategoricalEncoder{}
}

func (e *CategoricalEncoder) Name() string { return "categorical_encoder" }

func (e *CategoricalEncoder) Fitted() bool { return e.learned.fitted }

// Fit builds a fresh code map from every column of ds.
func (e *CategoricalEncoder) Fit(ds *data.Dataset) error {
	if ds == nil {
		return fmt.Errorf("%s: %w", e.Name(), ErrNilDataset)
	}
	m := codeMap{
		fitted:  true,
		order:   ds.Names(),
		columns: make(map[string]*categoryCodes, ds.Ncol()),
	}
	for _, col := range ds.Columns() {
		cc := &categoryCodes{codes: map[string]int{}}
		for i := 0; i < col.Len(); i++ {
			if !col.IsMissing(i) {
				cc.add(col.Value(i))
			}
		}
		m.columns[col.Name()] = cc
	}
	e.learned = m
	logger.WithStep(e.Name()).Debug("fitted", "columns", m.order)
	return nil
}

// Columns returns the encoded column names in fit order.
func (e *CategoricalEncoder) Columns() []string {
	out := make([]string, len(e.learned.order))
	copy(out, e.learned.order)
	return out
}

// Mapping returns a copy of the value-to-code map learned for column.
func (e *CategoricalEncoder) Mapping(column string) (map[string]int, bool) {
	cc, ok := e.learned.columns[column]
	if !ok {
		return nil, false
	}
	out := make(map[string]int, len(cc.codes))
	for k, v := range cc.codes {
		out[k] = v
	}
	return out, true
}

// Categories returns the values of column indexed by their code.
func (e *CategoricalEncoder) Categories(column string) ([]string, bool) {
	cc, ok := e.learned.columns[column]
	if !ok {
		return nil, false
	}
	out := make([]string, len(cc.values))
	copy(out, cc.values)
	return out, true
}

// Transform replaces every encoded column present in ds by its integer
// codes. Other columns pass through unchanged. A value not seen at fit time
// fails the whole call with *UnseenCategoryError.
func (e *CategoricalEncoder) Transform(ds *data.Dataset) (*data.Dataset, error) {
	if !e.learned.fitted {
		return nil, fmt.Errorf("%s: %w", e.Name(), ErrNotFitted)
	}
	if ds == nil {
		return nil, fmt.Errorf("%s: %w", e.Name(), ErrNilDataset)
	}
	var encoded []data.Column
	for _, col := range ds.Columns() {
		cc, ok := e.learned.columns[col.Name()]
		if !ok {
			continue
		}
		codes := make([]int, col.Len())
		missing := make([]bool, col.Len())
		for i := range codes {
			if col.IsMissing(i) {
				missing[i] = true
				continue
			}
			v := col.Value(i)
			code, seen := cc.codes[v]
			if !seen {
				return nil, &UnseenCategoryError{Column: col.Name(), Value: v, Row: i}
			}
			codes[i] = code
		}
		encoded = append(encoded, data.NewInts(col.Name(), codes, missing))
	}
	return ds.Replace(encoded...)
}

// InverseTransform maps codes in encoded columns back to their original
// values, as categorical columns. A code outside the learned range fails the
// call with *UnknownCodeError.
func (e *CategoricalEncoder) InverseTransform(ds *data.Dataset) (*data.Dataset, error) {
	if !e.learned.fitted {
		return nil, fmt.Errorf("%s: %w", e.Name(), ErrNotFitted)
	}
	if ds == nil {
		return nil, fmt.Errorf("%s: %w", e.Name(), ErrNilDataset)
	}
	var decoded []data.Column
	for _, col := range ds.Columns() {
		cc, ok := e.learned.columns[col.Name()]
		if !ok {
			continue
		}
		values := make([]string, col.Len())
		for i := range values {
			if col.IsMissing(i) {
				values[i] = ""
				continue
			}
			raw := col.Value(i)
			code, ok := parseCode(raw, len(cc.values))
			if !ok {
				return nil, &UnknownCodeError{Column: col.Name(), Code: raw, Row: i}
			}
			values[i] = cc.values[code]
		}
		decoded = append(decoded, data.NewCategorical(col.Name(), values))
	}
	return ds.Replace(decoded...)
}

// parseCode accepts integer codes in [0, n) in either integer or float
// spelling. The bound is checked before converting so huge values cannot
// overflow int.
func parseCode(s string, n int) (int, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || f >= float64(n) || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}
