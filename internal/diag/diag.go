// Package diag provides a structured-logging sink that callers can wire
// into heap.Options.Logger (which otherwise defaults to a no-op), so the
// allocator's advisory messages (init, split, coalesce, allocation and
// free events) land as structured fields instead of a bare fmt.Printf
// stream.
package diag

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger adapts a zerolog.Logger to heap.Logger's narrow Printf
// interface. Messages are logged at debug level under a fixed
// "component=heap" field so they can be filtered out of a noisier
// application log without touching the allocator itself.
type Logger struct {
	zl zerolog.Logger
}

// New builds a Logger writing human-readable console output to w.
// Passing os.Stderr matches where an advisory diagnostic sink belongs:
// alongside other uncaptured program output, not mixed into stdout.
func New(w io.Writer) Logger {
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	zl := zerolog.New(cw).With().Timestamp().Str("component", "heap").Logger()
	return Logger{zl: zl}
}

// NewJSON builds a Logger writing newline-delimited JSON to w, for
// callers that want to ship heap diagnostics into a log pipeline.
func NewJSON(w io.Writer) Logger {
	zl := zerolog.New(w).With().Timestamp().Str("component", "heap").Logger()
	return Logger{zl: zl}
}

// Default returns a Logger writing console-formatted output to stderr.
func Default() Logger { return New(os.Stderr) }

// Printf implements heap.Logger.
func (l Logger) Printf(format string, args ...any) {
	l.zl.Debug().Msgf(format, args...)
}
