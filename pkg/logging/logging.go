// Package logging provides the structured logger used by the daemon client.
//
// The process-wide handler is configured by internal/observability; this
// package only scopes it with connection and subscription attributes.
package logging

import (
	"context"
	"io"
	"log/slog"
)

// Logger is a slog.Logger scoped to one part of the client.
type Logger struct {
	l *slog.Logger
}

// New wraps base. A nil base uses slog.Default at each call, so loggers built
// before the process handler is installed still follow it.
func New(base *slog.Logger) *Logger {
	return &Logger{l: base}
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return &Logger{l: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func (l *Logger) slog() *slog.Logger {
	if l == nil || l.l == nil {
		return slog.Default()
	}
	return l.l
}

func (l *Logger) with(args ...any) *Logger {
	return &Logger{l: l.slog().With(args...)}
}

// WithComponent tags records with the component name.
func (l *Logger) WithComponent(name string) *Logger { return l.with("component", name) }

// WithEndpoint tags records with the daemon endpoint path.
func (l *Logger) WithEndpoint(path string) *Logger { return l.with("endpoint", path) }

// WithSubscription tags records with a subscription handle.
func (l *Logger) WithSubscription(id uint64) *Logger { return l.with("subscription", id) }

// WithState tags records with a connection state.
func (l *Logger) WithState(state string) *Logger { return l.with("state", state) }

// WithError tags records with err. A nil err leaves the logger unchanged.
func (l *Logger) WithError(err error) *Logger {
	if err == nil {
		return l
	}
	return l.with("error", err.Error())
}

func (l *Logger) Debug(msg string, args ...any) { l.slog().Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.slog().Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.slog().Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.slog().Error(msg, args...) }

func (l *Logger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.slog().DebugContext(ctx, msg, args...)
}

func (l *Logger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.slog().ErrorContext(ctx, msg, args...)
}

// Enabled reports whether records at level would be written.
func (l *Logger) Enabled(ctx context.Context, level slog.Level) bool {
	return l.slog().Enabled(ctx, level)
}
