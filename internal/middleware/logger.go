package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func LoggerMiddleware(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		// Health probes would drown everything else out.
		if c.Path() == "/health" {
			return err
		}

		reqID, _ := c.Locals(CtxRequestID).(string)
		fields := []zap.Field{
			zap.String("request_id", reqID),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.IP()),
		}
		if userID, ok := c.Locals(CtxClerkUserID).(string); ok && userID != "" {
			fields = append(fields, zap.String("user_id", userID))
		}
		log.Info("request", fields...)

		return err
	}
}
