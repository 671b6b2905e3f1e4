// Package logging provides the namespaced debug logger used by timers.
//
// A Logger wraps an slog.Logger with a fixed name. Log output is gated by the
// debug flag given at construction; errors are always written.
package logging

import (
	"context"
	"log/slog"
)

// Logger is a named logger with a debug switch.
type Logger struct {
	base  *slog.Logger
	name  string
	debug bool
}

// New creates a Logger writing through base (slog.Default when nil).
func New(base *slog.Logger, name string, debug bool) *Logger {
	if base == nil {
		base = slog.Default()
	}
	return &Logger{
		base:  base.With(slog.String("logger", name)),
		name:  name,
		debug: debug,
	}
}

// Name returns the logger namespace.
func (l *Logger) Name() string {
	return l.name
}

// Debug reports whether Log output is enabled.
func (l *Logger) Debug() bool {
	return l.debug
}

// Log writes an informational record when debug output is enabled.
func (l *Logger) Log(msg string, args ...any) {
	if !l.debug {
		return
	}
	l.base.Log(context.Background(), slog.LevelInfo, msg, args...)
}

// Error writes an error record.
func (l *Logger) Error(msg string, args ...any) {
	l.base.Log(context.Background(), slog.LevelError, msg, args...)
}
