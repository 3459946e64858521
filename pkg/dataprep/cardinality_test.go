package dataprep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"featprep/pkg/data"
)

func TestCardinalityFilter(t *testing.T) {
	all := distinct("u", 100)
	two := append(repeated("a", 50), repeated("b", 50)...)

	ds := dataset(t,
		data.NewCategorical("unique", all),
		data.NewCategorical("binary", two),
		data.NewNumeric("measure", numbers(100, 0)),
		data.NewCategorical("half", append(distinct("h", 50), repeated("h0", 50)...)),
		data.NewCategorical("sparse_unique", append(distinct("s", 40), repeated("", 60)...)),
	)

	f, err := NewCardinalityFilter()
	require.NoError(t, err)
	require.NoError(t, f.Fit(ds))
	assert.Equal(t, []string{"unique"}, f.Columns())

	out, err := f.Transform(ds)
	require.NoError(t, err)
	assert.Equal(t, []string{"binary", "measure", "half", "sparse_unique"}, out.Names())
}

func TestCardinalityFilter_DenominatorIsOwnColumn(t *testing.T) {
	// Two datasets with different row counts: the ratio must follow each
	// column's own length.
	small := dataset(t, data.NewCategorical("id", distinct("x", 4)))
	large := dataset(t, data.NewCategorical("id", append(distinct("x", 4), repeated("x0", 96)...)))

	f, err := NewCardinalityFilter()
	require.NoError(t, err)

	require.NoError(t, f.Fit(small))
	assert.Equal(t, []string{"id"}, f.Columns())

	require.NoError(t, f.Fit(large))
	assert.Empty(t, f.Columns())
}

func TestCardinalityFilter_Labels(t *testing.T) {
	ds := dataset(t, data.NewCategorical("key", distinct("k", 10)))

	f, err := NewCardinalityFilter(WithLabel("key"))
	require.NoError(t, err)
	require.NoError(t, f.Fit(ds))
	assert.Empty(t, f.Columns())
}
