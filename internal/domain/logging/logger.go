package logging

import (
	"context"
	"fmt"
	"log/slog"
)

// Logger is the diagnostics contract used by usecases. It carries no
// control-flow meaning.
type Logger interface {
	Trace(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

type slogLogger struct{ l *slog.Logger }

// NewSlog adapts a *slog.Logger. Trace maps to slog's Debug level.
func NewSlog(l *slog.Logger) Logger {
	if l == nil {
		l = slog.Default()
	}
	return &slogLogger{l: l}
}

func (s *slogLogger) Trace(format string, args ...any) {
	s.l.Log(context.Background(), slog.LevelDebug, fmt.Sprintf(format, args...))
}
func (s *slogLogger) Info(format string, args ...any)  { s.l.Info(fmt.Sprintf(format, args...)) }
func (s *slogLogger) Warn(format string, args ...any)  { s.l.Warn(fmt.Sprintf(format, args...)) }
func (s *slogLogger) Error(format string, args ...any) { s.l.Error(fmt.Sprintf(format, args...)) }

type nopLogger struct{}

// NewNop returns a logger that discards everything. For tests.
func NewNop() Logger { return nopLogger{} }

func (nopLogger) Trace(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
