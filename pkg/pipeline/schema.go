package pipeline

import "featprep/pkg/data"

// Schema describes the structure of a dataset.
type Schema struct {
	FeatureNames []string
	Kinds        []data.Kind
}

// SchemaOf captures the column names and kinds of ds.
func SchemaOf(ds *data.Dataset) Schema {
	s := Schema{FeatureNames: ds.Names(), Kinds: make([]data.Kind, 0, ds.Ncol())}
	for _, c := range ds.Columns() {
		s.Kinds = append(s.Kinds, c.Kind())
	}
	return s
}
