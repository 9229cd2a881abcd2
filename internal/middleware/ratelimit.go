package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimitMiddleware limits requests per client IP and path using a
// counter in Redis. A Redis outage fails open: throttling is protection,
// not a dependency.
func RateLimitMiddleware(rdb *redis.Client, limit int, window time.Duration, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := fmt.Sprintf("rl:%s:%s", c.Path(), c.IP())

		count, err := rdb.Incr(c.Context(), key).Result()
		if err != nil {
			log.Debug("rate limit check skipped", zap.Error(err))
			return c.Next()
		}

		if count == 1 {
			rdb.Expire(c.Context(), key, window)
		}

		if count > int64(limit) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": fiber.Map{
					"message":     "rate limit exceeded",
					"code":        "RATE_LIMITED",
					"status_code": fiber.StatusTooManyRequests,
				},
			})
		}

		return c.Next()
	}
}
