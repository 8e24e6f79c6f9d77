package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloudRunHandlerWritesStructuredEntry(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewCloudRunHandlerTo(&buf, slog.LevelInfo)).With("request_id", "req-1")

	log.Error("failed to persist donation record", "transaction_id", "tx-1", "error", errors.New("boom"))

	var entry struct {
		Severity string         `json:"severity"`
		Message  string         `json:"message"`
		Time     string         `json:"time"`
		Data     map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "ERROR", entry.Severity)
	assert.Equal(t, "failed to persist donation record", entry.Message)
	assert.NotEmpty(t, entry.Time)
	assert.Equal(t, "req-1", entry.Data["request_id"])
	assert.Equal(t, "tx-1", entry.Data["transaction_id"])
	assert.Equal(t, "boom", entry.Data["error"])
}

func TestCloudRunHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewCloudRunHandlerTo(&buf, slog.LevelWarn))

	log.Info("dropped")
	assert.Zero(t, buf.Len())

	log.Warn("kept")
	assert.Contains(t, buf.String(), `"severity":"WARNING"`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelWarn, ParseLevel(" Warning "))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}
