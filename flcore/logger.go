package flcore

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/neilotoole/slogt"
)

type Logger interface {
	With(args ...any) Logger
	WithGroup(name string) Logger
	Debug(msg string, args ...any)
	DebugContext(ctx context.Context, msg string, args ...any)
	Info(msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	Warn(msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
	Error(msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
	Enabled(ctx context.Context, level slog.Level) bool
}

type slogLogger struct {
	*slog.Logger
}

// New adapts a *slog.Logger to Logger. A nil logger falls back to slog.Default().
func New(l *slog.Logger) Logger {
	if l == nil {
		l = slog.Default()
	}
	return &slogLogger{l}
}

// Discard returns a Logger that drops every record.
func Discard() Logger {
	return &slogLogger{slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))}
}

func NewTestLogger(t *testing.T, opt ...slogt.Option) Logger {
	return &slogLogger{slogt.New(t, opt...)}
}

func (l *slogLogger) With(args ...any) Logger { return &slogLogger{l.Logger.With(args...)} }
func (l *slogLogger) WithGroup(name string) Logger {
	return &slogLogger{l.Logger.WithGroup(name)}
}
