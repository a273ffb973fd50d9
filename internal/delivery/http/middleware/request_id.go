package middleware

import (
	"log/slog"

	deliverycontext "evently/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// RequestID reuses the client's X-Request-ID or generates one, echoes it in
// the response and stores a logger tagged with it in the request context.
func RequestID(logger *slog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator:    uuid.NewString,
		TargetHeader: deliverycontext.HeaderXRequestID,
		RequestIDHandler: func(c echo.Context, requestID string) {
			deliverycontext.SetRequestID(c, requestID)

			ctx := c.Request().Context()
			ctx = deliverycontext.WithRequestID(ctx, requestID)
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("request_id", requestID)))
			c.SetRequest(c.Request().WithContext(ctx))
		},
	})
}
