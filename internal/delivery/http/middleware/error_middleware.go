// Package middleware contains the HTTP middleware chain: correlation ids,
// session authentication, per-request timeouts and the error renderer.
package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "backlot/internal/delivery/context"
	"backlot/internal/delivery/http/response"
	domainerrors "backlot/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware owns the single mapping from error kind to problem
// response. Handlers and services return errors; nothing below this layer
// writes a failure body.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	correlationID := deliverycontext.CorrelationID(c)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logError(err, c, correlationID)
		}

		_ = response.AppProblem(c, appErr, correlationID)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		detail, _ := httpErr.Message.(string)
		_ = response.GenericProblem(c, httpErr.Code, detail, correlationID)

		return
	}

	// Unclassified failure: log the cause, answer with a generic 500.
	m.logError(err, c, correlationID)
	_ = response.GenericProblem(c, http.StatusInternalServerError,
		"An unexpected error occurred. Please try again later.", correlationID)
}

func (m *ErrorMiddleware) logError(err error, c echo.Context, correlationID string) {
	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("correlation_id", correlationID),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
