package telemetry

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger_Level(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	InitLogger(false, "")
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelInfo))

	InitLogger(true, "")
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}

func TestInitLogger_FileOutput(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	path := filepath.Join(t.TempDir(), "benchviz.log")
	InitLogger(true, path)

	slog.Info("report generated", "path", "/tmp/benchmark_report.html")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "report generated")
	assert.Contains(t, string(data), "/tmp/benchmark_report.html")
}

func TestMultiHandler_WithAttrs(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	path := filepath.Join(t.TempDir(), "benchviz.log")
	InitLogger(true, path)

	logger := slog.Default().With("stage", "extract")
	logger.Debug("line skipped")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"stage":"extract"`)
}
