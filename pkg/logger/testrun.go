package logger

import (
	"io"
	"log/slog"
)

// NewTestHandler discards output but still honours the level, so
// IsDebugEnabled behaves as in production.
func NewTestHandler(level slog.Level) slog.Handler {
	return slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: level})
}
