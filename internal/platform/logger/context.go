package logger

import (
	"context"
	"log/slog"
)

// contextKey is a private type for context keys defined in this package.
// Using a distinct type prevents collisions with keys from other packages.
type contextKey int

const (
	loggerKey contextKey = iota
	requestIDKey
)

// WithLogger returns a new context with the provided logger attached.
// A nil logger is ignored and the original context is returned unchanged.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		return ctx
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext retrieves the logger stored in the context, if any.
// The second return value reports whether a logger was found.
func FromContext(ctx context.Context) (*slog.Logger, bool) {
	logger, ok := ctx.Value(loggerKey).(*slog.Logger)
	return logger, ok
}

// FromContextOrDefault retrieves the logger from the context, falling back
// to the provided default. If the default is also nil, slog.Default() is
// returned so callers always get a usable logger.
func FromContextOrDefault(ctx context.Context, defaultLogger *slog.Logger) *slog.Logger {
	if logger, ok := FromContext(ctx); ok {
		return logger
	}
	if defaultLogger != nil {
		return defaultLogger
	}
	return slog.Default()
}

// WithRequestID returns a new context carrying the given request identifier.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext retrieves the request identifier stored in the
// context, or the empty string when none is present.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
