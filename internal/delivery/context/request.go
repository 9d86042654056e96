// Package context carries request-scoped values between the delivery layer and the usecases.
package context

import (
	"context"
	"log/slog"
)

// ContextKey is the type of every key this package stores.
type ContextKey string

const (
	KeyRequestID ContextKey = "requestID"
	KeyLogger    ContextKey = "logger"

	// HeaderXRequestID is echoed back on every response.
	HeaderXRequestID = "X-Request-Id"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFrom returns "" outside of an HTTP request.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

// WithLogger attaches a logger that already carries the request's attributes.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

func LoggerFrom(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(KeyLogger).(*slog.Logger)

	return logger
}

// LoggerOr returns the request-scoped logger, or fallback when none was attached.
func LoggerOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := LoggerFrom(ctx); logger != nil {
		return logger
	}

	return fallback
}
