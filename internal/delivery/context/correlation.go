// Package context carries request-scoped values between the HTTP layer and
// the services: the correlation id that ties log lines and problem responses
// to a single request, and the logger pre-tagged with it.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type contextKey string

const (
	keyCorrelationID contextKey = "correlation_id"
	keyLogger        contextKey = "logger"

	// HeaderXRequestID is the HTTP header the correlation id travels in.
	HeaderXRequestID = "X-Request-Id"
)

// CorrelationID returns the request's correlation id from echo.Context,
// minting a fresh one when the middleware has not set it.
func CorrelationID(c echo.Context) string {
	if id, ok := c.Get(string(keyCorrelationID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetCorrelationID stores the correlation id on echo.Context.
func SetCorrelationID(c echo.Context, id string) {
	c.Set(string(keyCorrelationID), id)
}

// WithCorrelationID returns a context carrying the correlation id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyCorrelationID, id)
}

// CorrelationIDFromContext returns the correlation id, or "" when absent.
func CorrelationIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(keyCorrelationID).(string); ok {
		return id
	}

	return ""
}

// WithLogger returns a context carrying the request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// GetLogger returns the request-scoped logger, or nil when absent.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to the
// given logger when the context carries none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}
