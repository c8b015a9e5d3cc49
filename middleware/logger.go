package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestLogger tags every request with an id, exposes it to the error
// handler through locals and the X-Request-ID header, and emits one
// structured line when the request completes. Health probes log at debug
// so they do not drown out real traffic.
func RequestLogger(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID := uuid.New().String()

		c.Locals("requestID", requestID)
		c.Set("X-Request-ID", requestID)

		err := c.Next()

		status := c.Response().StatusCode()
		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Method()),
			slog.String("route", c.Path()),
			slog.Int("status", status),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			slog.Int("bytes", len(c.Response().Body())),
			slog.String("ip", c.IP()),
		}
		if userID := GetUserID(c); userID != "" {
			attrs = append(attrs, slog.String("user_id", userID))
		}
		if err != nil {
			attrs = append(attrs, slog.String("error", err.Error()))
		}

		switch {
		case err != nil || status >= fiber.StatusInternalServerError:
			logger.LogAttrs(c.Context(), slog.LevelError, "request failed", attrs...)
		case status >= fiber.StatusBadRequest:
			logger.LogAttrs(c.Context(), slog.LevelWarn, "request rejected", attrs...)
		case c.Path() == "/health":
			logger.LogAttrs(c.Context(), slog.LevelDebug, "health probe", attrs...)
		default:
			logger.LogAttrs(c.Context(), slog.LevelInfo, "request served", attrs...)
		}

		return err
	}
}
