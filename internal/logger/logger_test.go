package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/countdown/internal/logger"
)

func TestLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logger.Level("debug"))
	assert.Equal(t, slog.LevelDebug, logger.Level("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logger.Level("warn"))
	assert.Equal(t, slog.LevelError, logger.Level("error"))
	assert.Equal(t, slog.LevelInfo, logger.Level("info"))
	assert.Equal(t, slog.LevelInfo, logger.Level(""))
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer

	l := logger.New(&buf, "info")

	l.Debug("hidden")
	l.Info("shown", slog.Int("remaining", 3))

	var entry map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "shown", entry["msg"])
	assert.InDelta(t, 3, entry["remaining"], 0)
}

func TestInit(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prev)
	})

	path := filepath.Join(t.TempDir(), "log", "countdown.log")

	closer := logger.Init(path, "debug")

	slog.Debug("written")

	require.NoError(t, closer.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(b), `"msg":"written"`)
}
