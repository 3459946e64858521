// DropColumns reads a CSV file, runs a preprocessing pipeline over it and
// writes the result.
//
// Example:
//
//	go run ./cmd/examples/DropColumns --input employees.csv --config pipeline.yaml \
//	    --output processed.csv --chart missing.png
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"featprep/internal/logger"
	"featprep/pkg/data"
	"featprep/pkg/dataprep"
	"featprep/pkg/pipeline"
	"featprep/pkg/report"
	"featprep/pkg/stats"
)

type options struct {
	input      string
	output     string
	configPath string
	chart      string
	labels     []string
	logLevel   string
	seqURL     string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "DropColumns",
		Short:         "Drop sparse, dominated and high-cardinality columns from a CSV file",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.input, "input", "i", "", "path to the input CSV file")
	f.StringVarP(&opts.output, "output", "o", "", "path to write the processed CSV (default stdout)")
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML pipeline file (default: built-in pipeline)")
	f.StringVar(&opts.chart, "chart", "", "write a missing-ratio chart of the input columns to this file")
	f.StringSliceVar(&opts.labels, "label", nil, "label columns that filters must keep (built-in pipeline only)")
	f.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	f.StringVar(&opts.seqURL, "seq-url", "", "also ship logs to a Seq server at this URL")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func run(stdout io.Writer, opts *options) error {
	logger.SetLevel(logger.ParseLevel(opts.logLevel))
	if opts.seqURL != "" {
		closeSeq := logger.EnableSeq(opts.seqURL)
		defer closeSeq()
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	p, err := cfg.Build()
	if err != nil {
		return err
	}

	in, err := os.Open(opts.input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	ds, err := data.ReadCSV(bufio.NewReader(in))
	if err != nil {
		return err
	}
	logger.Info("loaded dataset", "path", opts.input, "rows", ds.Nrow(), "columns", ds.Ncol())

	if opts.chart != "" {
		if err := report.SaveChart(opts.chart, stats.ProfileDataset(ds), report.MissingRatio, missingThreshold(cfg)); err != nil {
			return err
		}
		logger.Info("saved chart", "path", opts.chart)
	}

	out, err := p.FitTransform(ds)
	if err != nil {
		return err
	}
	logger.Info("processed dataset", "columns", out.Names())

	if opts.output == "" {
		return data.WriteCSV(stdout, out)
	}
	f, err := os.Create(opts.output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := data.WriteCSV(f, out); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func loadConfig(opts *options) (*pipeline.Config, error) {
	if opts.configPath == "" {
		cfg := pipeline.DefaultConfig()
		for i := range cfg.Steps {
			cfg.Steps[i].Labels = opts.labels
		}
		return cfg, nil
	}
	raw, err := os.ReadFile(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return pipeline.ParseConfig(raw)
}

// missingThreshold finds the threshold of the first missingness step so the
// chart line matches what the pipeline applies.
func missingThreshold(cfg *pipeline.Config) float64 {
	for _, s := range cfg.Steps {
		if s.Type == pipeline.StepMissingness && s.Threshold != nil {
			return *s.Threshold
		}
	}
	return dataprep.DefaultMissingThreshold
}
