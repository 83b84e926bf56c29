// Package xlog is the structured logging entry point shared by every
// package in the pipeline. It wraps zerolog rather than stdlib log so
// every warning and debug line carries consistent leveled, field-based
// output, matching the logging idiom of the wider Go ecosystem this
// module draws its dependency stack from.
package xlog

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/rs/zerolog"
)

var logger atomic.Pointer[zerolog.Logger]

func init() {
	l := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: false}).With().Timestamp().Logger()
	l = l.Level(zerolog.InfoLevel)
	logger.Store(&l)
}

// SetOutput redirects all subsequent logging to w, preserving the
// current level. Used by tests to capture output.
func SetOutput(w io.Writer) {
	cur := logger.Load()
	l := zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).With().Timestamp().Logger().Level(cur.GetLevel())
	logger.Store(&l)
}

// SetDebug toggles debug-level verbosity, used by the --debug CLI flag
// to surface the per-stage diagnostics (orphan slicer segment counts,
// skipped empty slices, degenerate tidy edges) logged at Debug.
func SetDebug(on bool) {
	cur := logger.Load()
	lvl := zerolog.InfoLevel
	if on {
		lvl = zerolog.DebugLevel
	}
	l := cur.Level(lvl)
	logger.Store(&l)
}

// SetQuiet raises the level above Warn, used by the --quiet CLI flag to
// suppress the numeric warnings poly/fillplan log during a run.
// A no-op if the current level is already at or below Debug, so --debug
// always wins when both flags are given.
func SetQuiet(on bool) {
	cur := logger.Load()
	if !on || cur.GetLevel() <= zerolog.DebugLevel {
		return
	}
	l := cur.Level(zerolog.ErrorLevel)
	logger.Store(&l)
}

// Debug returns a debug-level event builder.
func Debug() *zerolog.Event { return logger.Load().Debug() }

// Warn returns a warn-level event builder, used by poly and fillplan
// for numeric warnings that should not abort the run.
func Warn() *zerolog.Event { return logger.Load().Warn() }

// Fatal returns a fatal-level event builder. Only cmd/slicer should
// actually call .Msg on one of these (it terminates the process);
// geometry and planning code always returns a Go error instead and
// lets the CLI boundary decide whether to escalate it to Fatal.
func Fatal() *zerolog.Event { return logger.Load().Fatal() }

// Info returns an info-level event builder, used for the cmd/slicer
// banner and per-run summary lines.
func Info() *zerolog.Event { return logger.Load().Info() }
