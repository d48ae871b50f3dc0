package logger

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// EchoMiddleware logs every HTTP request with latency and status, and tags
// the active New Relic transaction when one is present.
func EchoMiddleware(zl *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())

			start := time.Now()
			path := c.Request().URL.Path
			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			err := next(c)

			latency := time.Since(start)
			status := c.Response().Status
			requestID := c.Response().Header().Get("X-Request-ID")

			actor := "anonymous"
			if v := c.Get("user_id"); v != nil {
				actor = fmt.Sprintf("%v", v)
			}

			if txn != nil {
				txn.AddAttribute("actor_id", actor)
				txn.AddAttribute("request_id", requestID)
				txn.AddAttribute("response_time_ms", latency.Milliseconds())
				if err != nil {
					txn.NoticeError(err)
				}
			}

			fields := []Field{
				String("method", c.Request().Method),
				String("path", path),
				Int("status", status),
				String("client_ip", c.RealIP()),
				String("actor_id", actor),
				String("request_id", requestID),
				Duration("latency", latency),
			}
			if err != nil {
				fields = append(fields, Err(err))
				zl.Error("HTTP request failed", fields...)
				return err
			}

			if status >= 500 {
				zl.Error("HTTP request", fields...)
			} else if status >= 400 {
				zl.Warn("HTTP request", fields...)
			} else {
				zl.Info("HTTP request", fields...)
			}
			return nil
		}
	}
}
