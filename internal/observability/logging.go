package observability

import (
	"io"
	"log"

	"gopkg.in/natefinch/lumberjack.v2"
)

// TraceLogger is the minimal sink a host application can attach to a
// search run's trial-level trace hook. A nil *TraceLogger is valid and
// every method on it is a no-op, so the hot path carries no overhead when
// no logger is attached, matching spec.md §5's "no suspension points" for
// the synchronous core.
type TraceLogger struct {
	l *log.Logger
}

// NewTraceLogger builds a TraceLogger that writes rotating log files at
// path via lumberjack, bounded by maxSizeMB/maxBackups/maxAgeDays.
func NewTraceLogger(path string, maxSizeMB, maxBackups, maxAgeDays int) *TraceLogger {
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}
	return &TraceLogger{l: log.New(w, "", log.LstdFlags|log.Lmicroseconds)}
}

// NewTraceLoggerTo wraps an arbitrary writer (e.g. io.MultiWriter of a
// rotating file and another sink) instead of opening a file directly.
func NewTraceLoggerTo(w io.Writer) *TraceLogger {
	return &TraceLogger{l: log.New(w, "", log.LstdFlags|log.Lmicroseconds)}
}

// Trialf logs one candidate trial. Safe to call on a nil *TraceLogger.
func (t *TraceLogger) Trialf(format string, args ...any) {
	if t == nil {
		return
	}
	t.l.Printf(format, args...)
}

// Commitf logs a winning commit. Safe to call on a nil *TraceLogger.
func (t *TraceLogger) Commitf(format string, args ...any) {
	if t == nil {
		return
	}
	t.l.Printf(format, args...)
}
