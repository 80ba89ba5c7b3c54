// Package logging defines the structured, context-aware logger used by the
// admin console. The default implementation wraps log/slog.
package logging

import "context"

// Logger takes variadic key/value pairs after the message:
//
//	log.Warn(ctx, "tenant list unavailable, using fallback", "status", 502)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always carries the given pairs.
	With(args ...any) Logger
}
