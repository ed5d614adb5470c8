package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"benchviz/internal/extract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singleKeyDataset() *extract.Dataset {
	ds := extract.NewDataset()
	ds.Append(extract.Record{Implementation: "A", Threads: 1, Throughput: 100.0})
	ds.Append(extract.Record{Implementation: "A", Threads: 2, Throughput: 150.0})
	return ds
}

func TestBuild_SingleKey(t *testing.T) {
	model, err := Builder{Title: "t"}.Build(singleKeyDataset())
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2}, model.Labels)
	require.Len(t, model.Series, 1)
	assert.Equal(t, "A", model.Series[0].Name)
	assert.Equal(t, []float64{100.0, 150.0}, model.Series[0].Values)
	assert.Equal(t, palette[0], model.Series[0].Color)
}

func TestBuild_Empty(t *testing.T) {
	_, err := Builder{}.Build(extract.NewDataset())
	assert.ErrorIs(t, err, ErrNoData)

	_, err = Builder{}.Build(nil)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestBuild_SeriesOrderAndColorCycle(t *testing.T) {
	ds := extract.NewDataset()
	names := []string{"F", "E", "D", "C", "B", "A"}
	for _, name := range names {
		ds.Append(extract.Record{Implementation: name, Threads: 1, Throughput: 1})
	}

	model, err := Builder{}.Build(ds)
	require.NoError(t, err)
	require.Len(t, model.Series, 6)

	for i, s := range model.Series {
		assert.Equal(t, names[i], s.Name)
		assert.Equal(t, palette[i%len(palette)], s.Color)
	}
	// Sixth series wraps back to the first palette entry.
	assert.Equal(t, model.Series[0].Color, model.Series[5].Color)
}

func TestBuild_AxisFromFirstKey(t *testing.T) {
	ds := extract.NewDataset()
	ds.Append(extract.Record{Implementation: "A", Threads: 1, Throughput: 1000})
	ds.Append(extract.Record{Implementation: "A", Threads: 2, Throughput: 1900})
	// B has a shorter, diverging axis; it still renders with its own values.
	ds.Append(extract.Record{Implementation: "B", Threads: 1, Throughput: 950})

	model, err := Builder{}.Build(ds)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2}, model.Labels)
	require.Len(t, model.Series, 2)
	assert.Equal(t, []float64{950}, model.Series[1].Values)
}

func TestRender(t *testing.T) {
	model, err := Builder{
		Title:    "High-Performance Cache Comparison",
		Subtitle: "Workload: 90% GET, 10% PUT",
	}.Build(singleKeyDataset())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, model.Render(&buf))
	html := buf.String()

	// Externally hosted chart runtime.
	assert.Contains(t, html, "echarts.min.js")

	// Embedded literal data.
	assert.Contains(t, html, "[1,2]")
	assert.Contains(t, html, `{"value":100}`)
	assert.Contains(t, html, `{"value":150}`)
	assert.Contains(t, html, `"A"`)

	// Axis labels and hover interaction.
	assert.Contains(t, html, "Number of Threads")
	assert.Contains(t, html, "Throughput (Ops/sec)")
	assert.Contains(t, html, `"trigger":"axis"`)

	// Deterministic color from the palette.
	assert.Contains(t, html, "rgb(255, 99, 132)")

	assert.Contains(t, html, "High-Performance Cache Comparison")
}

func TestRender_Deterministic(t *testing.T) {
	ds := singleKeyDataset()

	first, err := Builder{Title: "t"}.Build(ds)
	require.NoError(t, err)
	second, err := Builder{Title: "t"}.Build(ds)
	require.NoError(t, err)

	var a, b bytes.Buffer
	require.NoError(t, first.Render(&a))
	require.NoError(t, second.Render(&b))

	assert.Equal(t, a.String(), b.String())
}

func TestWriteFile(t *testing.T) {
	model, err := Builder{Title: "t"}.Build(singleKeyDataset())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "benchmark_report.html")
	abs, err := model.WriteFile(path)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(abs))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "echarts")

	// Reruns overwrite the prior report at the same path.
	_, err = model.WriteFile(path)
	require.NoError(t, err)
}
