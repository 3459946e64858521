package data

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(t *testing.T) *Dataset {
	t.Helper()
	ds, err := New(
		NewNumeric("age", []float64{31, math.NaN(), 45}),
		NewCategorical("city", []string{"Paris", "NA", "Oslo"}),
		NewCategorical("plan", []string{"free", "pro", ""}),
	)
	require.NoError(t, err)
	return ds
}

func TestNew_Validation(t *testing.T) {
	_, err := New(NewCategorical("a", []string{"x"}), NewCategorical("a", []string{"y"}))
	assert.ErrorIs(t, err, ErrDuplicateColumn)

	_, err = New(NewCategorical("a", []string{"x"}), NewCategorical("b", []string{"y", "z"}))
	assert.ErrorIs(t, err, ErrRowCountMismatch)

	empty, err := New()
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Ncol())
	assert.Equal(t, 0, empty.Nrow())
}

func TestColumn_MissingAndKind(t *testing.T) {
	ds := sample(t)
	assert.Equal(t, []string{"age", "city", "plan"}, ds.Names())
	assert.Equal(t, 3, ds.Nrow())

	age, ok := ds.Column("age")
	require.True(t, ok)
	assert.Equal(t, Numeric, age.Kind())
	assert.True(t, age.IsMissing(1))
	assert.False(t, age.IsMissing(0))
	assert.Equal(t, 1, age.MissingCount())
	assert.Equal(t, "", age.Value(1))

	city, _ := ds.Column("city")
	assert.Equal(t, Categorical, city.Kind())
	assert.Equal(t, []string{"Paris", "", "Oslo"}, city.Values())
	assert.Equal(t, 1, city.MissingCount())

	plan, _ := ds.Column("plan")
	assert.True(t, plan.IsMissing(2))

	_, ok = ds.Column("nope")
	assert.False(t, ok)
}

func TestNewInts(t *testing.T) {
	c := NewInts("code", []int{0, 1, 0}, []bool{false, true, false})
	assert.Equal(t, Numeric, c.Kind())
	assert.Equal(t, []string{"0", "", "0"}, c.Values())

	c = NewInts("code", []int{2, 1}, nil)
	assert.Equal(t, 0, c.MissingCount())
	assert.Equal(t, "2", c.Value(0))
}

func TestDrop(t *testing.T) {
	ds := sample(t)

	out := ds.Drop("city", "absent")
	assert.Equal(t, []string{"age", "plan"}, out.Names())
	assert.Equal(t, 3, out.Nrow())
	plan, ok := out.Column("plan")
	require.True(t, ok)
	assert.Equal(t, "free", plan.Value(0))

	// input untouched
	assert.Equal(t, []string{"age", "city", "plan"}, ds.Names())

	all := ds.Drop(ds.Names()...)
	assert.Equal(t, 0, all.Ncol())
	assert.Equal(t, 3, all.Nrow())
}

func TestReplace(t *testing.T) {
	ds := sample(t)

	out, err := ds.Replace(NewInts("city", []int{0, 0, 1}, []bool{false, true, false}))
	require.NoError(t, err)
	assert.Equal(t, []string{"age", "city", "plan"}, out.Names())
	city, _ := out.Column("city")
	assert.Equal(t, Numeric, city.Kind())
	assert.Equal(t, "1", city.Value(2))

	orig, _ := ds.Column("city")
	assert.Equal(t, Categorical, orig.Kind())
	assert.Equal(t, "Oslo", orig.Value(2))

	_, err = ds.Replace(NewCategorical("zip", []string{"a", "b", "c"}))
	assert.ErrorIs(t, err, ErrUnknownColumn)

	_, err = ds.Replace(NewCategorical("city", []string{"a"}))
	assert.ErrorIs(t, err, ErrRowCountMismatch)
}

func TestReadCSV(t *testing.T) {
	in := "age,city,zip\n30,Paris,75001\nNA,,75002\n41,Oslo,\n"

	ds, err := ReadCSV(strings.NewReader(in), WithKinds(map[string]Kind{"zip": Categorical}))
	require.NoError(t, err)
	assert.Equal(t, []string{"age", "city", "zip"}, ds.Names())
	assert.Equal(t, 3, ds.Nrow())

	age, _ := ds.Column("age")
	assert.Equal(t, Numeric, age.Kind())
	assert.Equal(t, 1, age.MissingCount())

	city, _ := ds.Column("city")
	assert.Equal(t, Categorical, city.Kind())
	assert.True(t, city.IsMissing(1))

	zip, _ := ds.Column("zip")
	assert.Equal(t, Categorical, zip.Kind())
	assert.Equal(t, "75001", zip.Value(0))
	assert.True(t, zip.IsMissing(2))
}

func TestLoadRecords(t *testing.T) {
	ds, err := LoadRecords([][]string{
		{"flag", "score"},
		{"true", "1.5"},
		{"false", "2"},
	})
	require.NoError(t, err)
	flag, _ := ds.Column("flag")
	assert.Equal(t, Categorical, flag.Kind())
	score, _ := ds.Column("score")
	assert.Equal(t, Numeric, score.Kind())

	_, err = LoadRecords(nil)
	assert.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	ds, err := New(
		NewCategorical("city", []string{"Paris", "Oslo"}),
		NewInts("code", []int{0, 1}, nil),
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, ds))
	assert.Equal(t, "city,code\nParis,0\nOslo,1\n", buf.String())

	empty, _ := New()
	assert.Error(t, WriteCSV(&buf, empty))
}

func TestRows(t *testing.T) {
	ds := sample(t)

	sub, err := ds.Rows([]int{2, 0})
	require.NoError(t, err)
	assert.Equal(t, 2, sub.Nrow())
	city, _ := sub.Column("city")
	assert.Equal(t, []string{"Oslo", "Paris"}, city.Values())
	age, _ := sub.Column("age")
	assert.Equal(t, Numeric, age.Kind())

	none, err := ds.Rows(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, none.Nrow())
	assert.Equal(t, ds.Names(), none.Names())

	_, err = ds.Rows([]int{3})
	assert.Error(t, err)
}

func TestColumn_FloatValuesKeepPrecision(t *testing.T) {
	c := NewNumeric("x", []float64{0.1234561, 0.1234562, 1e-9, 2e-9})
	assert.Equal(t, []string{"0.1234561", "0.1234562", "1e-09", "2e-09"}, c.Values())
}

func TestWriteCSV_FloatRoundTrip(t *testing.T) {
	ds, err := New(NewNumeric("x", []float64{0.1234567, 1e-9, math.NaN()}))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, ds))
	assert.Equal(t, "x\n0.1234567\n1e-09\nNaN\n", buf.String())

	back, err := ReadCSV(&buf)
	require.NoError(t, err)
	x, _ := back.Column("x")
	orig, _ := ds.Column("x")
	assert.Equal(t, Numeric, x.Kind())
	assert.Equal(t, orig.Values(), x.Values())
	assert.True(t, x.IsMissing(2))
}
