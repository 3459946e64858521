package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLevel(slog.LevelInfo)
	})
	return &buf
}

func TestLevelFiltering(t *testing.T) {
	buf := capture(t)

	Debug("hidden")
	assert.Empty(t, buf.String())

	SetLevel(slog.LevelDebug)
	Debug("shown", "columns", []string{"zip"})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "DEBUG", entry["level"])
}

func TestWithStep(t *testing.T) {
	buf := capture(t)

	WithStep("missingness").Info("fitted")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "missingness", entry["step"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestFanout(t *testing.T) {
	var a, b bytes.Buffer
	f := &fanout{handlers: []slog.Handler{
		slog.NewJSONHandler(&a, nil),
		slog.NewJSONHandler(&b, &slog.HandlerOptions{Level: slog.LevelError}),
	}}
	assert.True(t, f.Enabled(context.Background(), slog.LevelInfo))

	slog.New(f).With("k", "v").Info("hello")
	assert.Contains(t, a.String(), `"k":"v"`)
	assert.Empty(t, b.String())
}
