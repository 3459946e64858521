// Package report renders column profiles as charts.
package report

import (
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"featprep/pkg/stats"
)

// Metric selects which profile ratio a chart shows.
type Metric int

const (
	MissingRatio Metric = iota
	TopShare
	DistinctRatio
)

func (m Metric) String() string {
	switch m {
	case MissingRatio:
		return "missing ratio"
	case TopShare:
		return "top value share"
	case DistinctRatio:
		return "distinct ratio"
	default:
		return "unknown"
	}
}

func (m Metric) value(p stats.Profile) float64 {
	switch m {
	case TopShare:
		return p.TopShare()
	case DistinctRatio:
		return p.DistinctRatio()
	default:
		return p.MissingRatio()
	}
}

// Chart builds a bar chart of one metric per column with a horizontal line
// at threshold. Bars above the threshold are drawn in red.
func Chart(profiles []stats.Profile, m Metric, threshold float64) (*plot.Plot, error) {
	if len(profiles) == 0 {
		return nil, fmt.Errorf("chart: no columns to plot")
	}

	p := plot.New()
	p.Title.Text = "Column " + m.String()
	p.Y.Label.Text = m.String()
	p.Y.Min, p.Y.Max = 0, 1

	var under, over plotter.Values
	names := make([]string, len(profiles))
	for i, prof := range profiles {
		names[i] = prof.Name
		v := m.value(prof)
		if v > threshold {
			under, over = append(under, 0), append(over, v)
		} else {
			under, over = append(under, v), append(over, 0)
		}
	}

	width := vg.Points(20)
	kept, err := plotter.NewBarChart(under, width)
	if err != nil {
		return nil, err
	}
	kept.Color = color.RGBA{R: 50, G: 50, B: 255, A: 255}
	kept.LineStyle.Width = 0

	dropped, err := plotter.NewBarChart(over, width)
	if err != nil {
		return nil, err
	}
	dropped.Color = color.RGBA{R: 255, A: 255}
	dropped.LineStyle.Width = 0
	dropped.StackOn(kept)

	line, err := plotter.NewLine(plotter.XYs{
		{X: -0.5, Y: threshold},
		{X: float64(len(profiles)) - 0.5, Y: threshold},
	})
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(1)
	line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(kept, dropped, line)
	p.NominalX(names...)
	return p, nil
}

// WriteChart renders the chart to w in the given format (png, svg, pdf...).
func WriteChart(w io.Writer, format string, profiles []stats.Profile, m Metric, threshold float64) error {
	p, err := Chart(profiles, m, threshold)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(chartWidth(len(profiles)), 4*vg.Inch, format)
	if err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// SaveChart renders the chart to a file; the extension picks the format.
func SaveChart(path string, profiles []stats.Profile, m Metric, threshold float64) error {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return fmt.Errorf("chart: %q has no file extension", path)
	}
	p, err := Chart(profiles, m, threshold)
	if err != nil {
		return err
	}
	return p.Save(chartWidth(len(profiles)), 4*vg.Inch, path)
}

func chartWidth(columns int) vg.Length {
	w := vg.Length(columns) * vg.Points(36)
	if w < 4*vg.Inch {
		return 4 * vg.Inch
	}
	return w
}
