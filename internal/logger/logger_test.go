package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn")

	log.Info("ignored")
	log.Warn("kept", "turns", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.EqualValues(t, 3, rec["turns"])
}

func TestSetup_File(t *testing.T) {
	defer slog.SetDefault(slog.Default())
	path := filepath.Join(t.TempDir(), "pairs.log")

	log, closer, err := Setup(path, "info")
	require.NoError(t, err)
	log.Info("game started", "size", 4)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"game started"`)
}

func TestSetup_NoFileDiscards(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	log, closer, err := Setup("", "debug")
	require.NoError(t, err)
	assert.False(t, log.Enabled(t.Context(), slog.LevelError))
	assert.NoError(t, closer.Close())
}

func TestSetup_BadPath(t *testing.T) {
	_, _, err := Setup(filepath.Join(t.TempDir(), "missing", "pairs.log"), "info")
	assert.Error(t, err)
}
