package logger

import (
	"context"
	"log/slog"
)

type contextKey struct{}

// With attaches fields to the request-scoped logger. Fields accumulate across
// calls, so middleware can add request_id and handlers can add caller.
func With(ctx context.Context, fields ...any) context.Context {
	return context.WithValue(ctx, contextKey{}, From(ctx).With(fields...))
}

// From returns the request-scoped logger, or the process logger when ctx has none.
func From(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
			return l
		}
	}
	return LoggerWrapper()
}
