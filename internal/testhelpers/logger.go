package testhelpers

import (
	"io"
	"log/slog"

	"github.com/myrjola/detectivequest/internal/logging"
)

// NewLogger creates a new logger with the given log sink such as io.Discard. It uses the same handler chain as the
// detective-quest command so that context attributes show up in test output too.
func NewLogger(logSink io.Writer) *slog.Logger {
	handler := logging.NewContextHandler(slog.NewTextHandler(logSink, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	return slog.New(handler)
}
