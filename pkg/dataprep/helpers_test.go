package dataprep

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"featprep/pkg/data"
)

// repeated returns n copies of v followed by rest.
func repeated(v string, n int, rest ...string) []string {
	out := make([]string, 0, n+len(rest))
	for i := 0; i < n; i++ {
		out = append(out, v)
	}
	return append(out, rest...)
}

// distinct returns n unique values sharing a prefix.
func distinct(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return out
}

// numbers returns 0..n-1 with the first missing entries set to NaN.
func numbers(n, missing int) []float64 {
	out := make([]float64, n)
	for i := range out {
		if i < missing {
			out[i] = math.NaN()
			continue
		}
		out[i] = float64(i)
	}
	return out
}

func dataset(t *testing.T, cols ...data.Column) *data.Dataset {
	t.Helper()
	ds, err := data.New(cols...)
	require.NoError(t, err)
	return ds
}

// scenario is the five-column dataset used by the end-to-end tests: age with
// 10% missing, zip with 60% missing, country and target 98% one value, id
// unique per row.
func scenario(t *testing.T) *data.Dataset {
	t.Helper()
	const rows = 100
	zip := append(repeated("", 60), distinct("z", 40)...)
	return dataset(t,
		data.NewNumeric("age", numbers(rows, 10)),
		data.NewCategorical("zip", zip),
		data.NewCategorical("country", repeated("FR", 98, "DE", "IT")),
		data.NewCategorical("id", distinct("id-", rows)),
		data.NewCategorical("target", repeated("no", 98, "yes", "yes")),
	)
}
