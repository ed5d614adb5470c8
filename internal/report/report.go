package report

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"benchviz/internal/extract"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// ErrNoData is returned when a dataset has no implementations to plot.
// No report file is produced in that case.
var ErrNoData = errors.New("no data to plot")

// palette is the fixed series color rotation. Assignment is by series index
// modulo palette size, so the same dataset always gets the same colors and
// more than five series reuse them.
var palette = []string{
	"rgb(255, 99, 132)",  // red
	"rgb(54, 162, 235)",  // blue
	"rgb(255, 206, 86)",  // yellow
	"rgb(75, 192, 192)",  // green
	"rgb(153, 102, 255)", // purple
}

// Series is one implementation's throughput sequence, ready for plotting
// against the shared thread-count axis.
type Series struct {
	Name   string
	Values []float64
	Color  string
}

// Model is the fully derived chart: everything the renderer embeds in the
// document, and nothing it has to compute at render time.
type Model struct {
	Title    string
	Subtitle string
	Labels   []int
	Series   []Series
}

// Builder derives a chart model from a parsed dataset.
type Builder struct {
	Title    string
	Subtitle string
}

// Build derives the shared label axis from the first implementation's thread
// counts and one series per implementation, in dataset key order. A series
// whose own thread sequence diverges from the shared axis is still rendered,
// but the divergence is logged loudly since its values plot against the first
// implementation's thread counts.
func (b Builder) Build(ds *extract.Dataset) (*Model, error) {
	if ds == nil || ds.Empty() {
		return nil, ErrNoData
	}

	impls := ds.Implementations()
	first := ds.Samples(impls[0])
	labels := make([]int, len(first))
	for i, r := range first {
		labels[i] = r.Threads
	}

	m := &Model{
		Title:    b.Title,
		Subtitle: b.Subtitle,
		Labels:   labels,
	}

	for i, name := range impls {
		recs := ds.Samples(name)
		values := make([]float64, len(recs))
		diverges := len(recs) != len(labels)
		for j, r := range recs {
			values[j] = r.Throughput
			if !diverges && r.Threads != labels[j] {
				diverges = true
			}
		}
		if diverges {
			slog.Warn("series thread axis diverges from shared axis; its values plot against the first implementation's thread counts",
				"series", name)
		}
		m.Series = append(m.Series, Series{
			Name:   name,
			Values: values,
			Color:  palette[i%len(palette)],
		})
	}

	return m, nil
}

// Render writes the self-contained HTML document: one line chart with the
// labels and series embedded as literal data and the chart runtime referenced
// from its CDN. The chart ID is fixed so reruns produce stable output.
func (m *Model) Render(w io.Writer) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "LRU Cache Comparison",
			ChartID:   "perfChart",
			Width:     "1080px",
			Height:    "560px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    m.Title,
			Subtitle: m.Subtitle,
			Left:     "center",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Number of Threads",
			Type: "category",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Throughput (Ops/sec)",
			Type: "value",
			Min:  0,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Top:  "40px",
		}),
	)

	line.SetXAxis(m.Labels)
	for _, s := range m.Series {
		data := make([]opts.LineData, len(s.Values))
		for i, v := range s.Values {
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(s.Name, data,
			charts.WithLineStyleOpts(opts.LineStyle{Color: s.Color}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}),
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}),
		)
	}

	return line.Render(w)
}

// WriteFile renders the document to path, overwriting any prior report, and
// returns the absolute path written.
func (m *Model) WriteFile(path string) (string, error) {
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := m.Render(f); err != nil {
		return "", err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}
