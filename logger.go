package inkmesh

import (
	"log/slog"

	"github.com/osuushi/inkmesh/internal/logx"
)

// SetLogger configures the logger for inkmesh. Only debug records are
// written, for fallbacks taken on degenerate input and per call summaries.
// Pass nil to disable logging again, which is the default.
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	logx.Set(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return logx.Logger()
}
