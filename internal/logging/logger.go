// Package logging defines the structured-logging interface used by the
// tracker's services and presentation layer, plus a log/slog implementation.
package logging

import "context"

// Logger is a context-aware, structured logger. Variadic args are key–value
// pairs:
//
//	log.Info(ctx, "item added", "item_id", id, "user_id", userID)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given pairs.
	With(args ...any) Logger
}
