package dbg

import (
	"log/slog"

	"github.com/osuushi/inkmesh"
)

// Tracer writes trace callbacks to a logger at debug level. Every record
// carries the tracer's run name, so interleaved runs can be told apart.
type Tracer struct {
	Run    string
	logger *slog.Logger
}

// NewTracer makes a tracer with a fresh run name. A nil logger means the
// package logger.
func NewTracer(logger *slog.Logger) *Tracer {
	if logger == nil {
		logger = inkmesh.Logger()
	}
	run := RunName()
	return &Tracer{Run: run, logger: logger.With("run", run)}
}

// Join is a StrokeOptions.Trace callback.
func (t *Tracer) Join(e inkmesh.JoinEvent) {
	t.logger.Debug("join", "sample", e.Sample, "kind", e.Kind.String(), "leftTurn", e.LeftTurn)
}

// Ear is a WithTrace callback.
func (t *Tracer) Ear(s inkmesh.TraceStep) {
	t.logger.Debug("ear", "step", s.Number, "triangle", s.Triangle, "desperate", s.Desperate)
}

// For returns a tracer for one shape of the run. Its records also carry the
// readable name of key, which stays the same every time key is used.
func (t *Tracer) For(key interface{}) *Tracer {
	return &Tracer{Run: t.Run, logger: t.logger.With("shape", Name(key))}
}
