package middleware

import (
	"log/slog"

	deliverycontext "backlot/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CorrelationMiddleware assigns every request a correlation id and a logger
// pre-tagged with it. The id is echoed back in the response headers and in
// problem bodies.
type CorrelationMiddleware struct {
	logger *slog.Logger
}

// NewCorrelationMiddleware creates a new correlation middleware.
func NewCorrelationMiddleware(logger *slog.Logger) *CorrelationMiddleware {
	return &CorrelationMiddleware{
		logger: logger,
	}
}

// Process extracts or mints the correlation id and threads it, with a tagged
// logger, through both echo.Context and the request's context.Context.
func (m *CorrelationMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		correlationID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if correlationID == "" {
			correlationID = uuid.New().String()
		}

		deliverycontext.SetCorrelationID(c, correlationID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, correlationID)

		reqLogger := m.logger.With(slog.String("correlation_id", correlationID))

		ctx := c.Request().Context()
		ctx = deliverycontext.WithCorrelationID(ctx, correlationID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
