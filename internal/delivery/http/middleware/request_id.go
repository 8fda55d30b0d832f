package middleware

import (
	"log/slog"

	deliverycontext "stylebank/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestID assigns each request an id (honoring an incoming X-Request-Id
// header) and attaches a request-scoped logger to the context so downstream
// services log with the id attached.
func RequestID(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			deliverycontext.SetRequestID(c, requestID)
			c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

			scoped := logger.With(slog.String("request_id", requestID))
			ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
			ctx = deliverycontext.WithLogger(ctx, scoped)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
