package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// EchoMiddleware creates request-logging middleware for Echo.
func EchoMiddleware(log *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			fields := []Field{
				String("method", c.Request().Method),
				String("path", path),
				Int("status", c.Response().Status),
				String("client_ip", c.RealIP()),
				Duration("latency", time.Since(start)),
			}
			if userID := c.Get("user_id"); userID != nil {
				fields = append(fields, Any("user_id", userID))
			}

			switch {
			case c.Response().Status >= 500:
				log.Error("request failed", append(fields, Err(err))...)
			case c.Response().Status >= 400:
				log.Warn("request rejected", fields...)
			default:
				log.Info("request completed", fields...)
			}
			return nil
		}
	}
}
