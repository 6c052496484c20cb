package http

import (
	"time"

	"github.com/labstack/echo/v4"

	"feedboard/internal/logger"
)

// RequestLoggerMiddleware logs every request with its status, latency and
// request id; the level follows the status class.
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			args := []any{
				"module", "http",
				"method", req.Method,
				"path", req.URL.Path,
				"status_code", res.Status,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_ip", c.RealIP(),
				"request_id", res.Header().Get(echo.HeaderXRequestID),
			}

			switch {
			case res.Status >= 500:
				logger.Error("http request", args...)
			case res.Status >= 400:
				logger.Warn("http request", args...)
			default:
				logger.Debug("http request", args...)
			}

			return nil
		}
	}
}
