package helpers

import (
	"context"

	"github.com/GregMSThompson/donations-backend/pkg/logger"
)

// TestCtx returns a context carrying a discarding test logger.
func TestCtx() context.Context {
	return logger.ToContext(context.Background(), logger.New("debug", logger.NewTestHandler))
}
