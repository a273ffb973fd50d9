package middleware

import (
	"net/http"
	"time"

	"evently/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

const unmatchedRoute = "unmatched"

// Metrics records one observation per request, labelled by route template so
// that ids in the path do not create new series.
func Metrics(recorder metrics.Recorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				status = statusOf(err)
			}
			if status == 0 {
				status = http.StatusOK
			}

			route := c.Path()
			if route == "" {
				route = unmatchedRoute
			}

			recorder.RecordRequest(c.Request().Method, route, status, time.Since(start))

			return err
		}
	}
}
