package data

import (
	"fmt"
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// LoadOption adjusts how raw records are ingested.
type LoadOption func(*loadConfig)

type loadConfig struct {
	types map[string]series.Type
}

// WithKinds pins the kind of the named columns instead of detecting it from
// the values, e.g. numeric-looking postal codes that should be categorical.
func WithKinds(kinds map[string]Kind) LoadOption {
	return func(c *loadConfig) {
		for name, k := range kinds {
			if k == Numeric {
				c.types[name] = series.Float
			} else {
				c.types[name] = series.String
			}
		}
	}
}

func (c *loadConfig) gotaOptions() []dataframe.LoadOption {
	opts := []dataframe.LoadOption{
		dataframe.NaNValues(MissingMarkers),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
	}
	if len(c.types) > 0 {
		opts = append(opts, dataframe.WithTypes(c.types))
	}
	return opts
}

func newLoadConfig(opts []LoadOption) *loadConfig {
	cfg := &loadConfig{types: map[string]series.Type{}}
	for _, o := range opts {
		o(cfg)
	}
	return cfg
}

// LoadRecords builds a dataset from string records; the first record is the
// header row. Column kinds are detected once here.
func LoadRecords(records [][]string, opts ...LoadOption) (*Dataset, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("load records: no header row")
	}
	cfg := newLoadConfig(opts)
	ds, err := FromDataFrame(dataframe.LoadRecords(records, cfg.gotaOptions()...))
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}
	return ds, nil
}

// ReadCSV reads a headed CSV stream into a dataset.
func ReadCSV(r io.Reader, opts ...LoadOption) (*Dataset, error) {
	cfg := newLoadConfig(opts)
	ds, err := FromDataFrame(dataframe.ReadCSV(r, cfg.gotaOptions()...))
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return ds, nil
}

// WriteCSV writes the dataset with a header row. Missing cells are written as
// NaN; float cells use the shortest spelling that reads back to the same
// value.
func WriteCSV(w io.Writer, ds *Dataset) error {
	if ds.Ncol() == 0 {
		return fmt.Errorf("write csv: dataset has no columns")
	}
	ss := make([]series.Series, 0, ds.Ncol())
	for _, c := range ds.cols {
		if c.s.Type() != series.Float {
			ss = append(ss, c.Series())
			continue
		}
		raw := make([]string, c.Len())
		for i := range raw {
			if c.IsMissing(i) {
				raw[i] = nan
				continue
			}
			raw[i] = c.Value(i)
		}
		ss = append(ss, series.New(raw, series.String, c.Name()))
	}
	df := dataframe.New(ss...)
	if df.Err != nil {
		return fmt.Errorf("write csv: %w", df.Err)
	}
	return df.WriteCSV(w)
}
