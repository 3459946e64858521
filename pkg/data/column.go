package data

import (
	"math"
	"strconv"

	"github.com/go-gota/gota/series"
)

// Kind tags a column as numeric or categorical. It is decided once, when the
// column is built or ingested, and never re-inferred by the transformers.
type Kind int

const (
	Numeric Kind = iota
	Categorical
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	default:
		return "unknown"
	}
}

// MissingMarkers are the raw cell values read as missing.
var MissingMarkers = []string{"", "NA", "NaN", "<nil>"}

// nan is the gota spelling of a missing cell.
const nan = "NaN"

// IsMissingMarker reports whether a raw string is one of MissingMarkers.
func IsMissingMarker(v string) bool {
	for _, m := range MissingMarkers {
		if v == m {
			return true
		}
	}
	return false
}

// Column is a named, typed, read-only sequence of cells.
type Column struct {
	s    series.Series
	kind Kind
}

// KindOf maps a gota series type to a column kind.
func KindOf(t series.Type) Kind {
	switch t {
	case series.Float, series.Int:
		return Numeric
	default:
		return Categorical
	}
}

// NewColumn wraps a gota series, taking the kind from the series type.
func NewColumn(s series.Series) Column {
	return Column{s: s.Copy(), kind: KindOf(s.Type())}
}

// NewNumeric builds a numeric column. NaN entries are missing.
func NewNumeric(name string, values []float64) Column {
	raw := make([]string, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			raw[i] = nan
			continue
		}
		raw[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return Column{s: series.New(raw, series.Float, name), kind: Numeric}
}

// NewInts builds a numeric integer column. Cells where missing[i] is true are
// missing; a nil missing slice means every cell is present.
func NewInts(name string, values []int, missing []bool) Column {
	raw := make([]string, len(values))
	for i, v := range values {
		if missing != nil && missing[i] {
			raw[i] = nan
			continue
		}
		raw[i] = strconv.Itoa(v)
	}
	return Column{s: series.New(raw, series.Int, name), kind: Numeric}
}

// NewCategorical builds a categorical column. Values listed in
// MissingMarkers are missing.
func NewCategorical(name string, values []string) Column {
	raw := make([]string, len(values))
	for i, v := range values {
		if IsMissingMarker(v) {
			raw[i] = nan
			continue
		}
		raw[i] = v
	}
	return Column{s: series.New(raw, series.String, name), kind: Categorical}
}

func (c Column) Name() string { return c.s.Name }

func (c Column) Kind() Kind { return c.kind }

func (c Column) Len() int { return c.s.Len() }

// IsMissing reports whether row i holds the missing marker.
func (c Column) IsMissing(i int) bool {
	return c.s.Elem(i).IsNA()
}

// Value returns the string form of row i, or "" when the cell is missing.
// Float cells use the shortest form that reads back to the same float64.
func (c Column) Value(i int) string {
	e := c.s.Elem(i)
	if e.IsNA() {
		return ""
	}
	if c.s.Type() == series.Float {
		return strconv.FormatFloat(e.Float(), 'g', -1, 64)
	}
	return e.String()
}

// Values returns the string form of every row; missing cells are "".
func (c Column) Values() []string {
	out := make([]string, c.Len())
	for i := range out {
		out[i] = c.Value(i)
	}
	return out
}

// MissingCount counts missing cells.
func (c Column) MissingCount() int {
	n := 0
	for _, na := range c.s.IsNaN() {
		if na {
			n++
		}
	}
	return n
}

// Series returns a copy of the underlying gota series.
func (c Column) Series() series.Series { return c.s.Copy() }

