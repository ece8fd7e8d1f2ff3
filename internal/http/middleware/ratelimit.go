package middleware

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"docshare/internal/ratelimit"
)

// RateLimit applies the limiter per caller, keyed by authenticated user id
// when present and client IP otherwise. Limiter backend failures fail open.
func RateLimit(limiter ratelimit.Limiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := UserID(c)
		if key == "" {
			key = c.IP()
		}

		allowed, err := limiter.Allow(c.UserContext(), key)
		if err != nil {
			logLimiterError(c, err)
		}
		if !allowed {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "Too many requests"})
		}
		return c.Next()
	}
}

func logLimiterError(c *fiber.Ctx, err error) {
	rid, _ := c.Locals(RequestIDLocalKey).(string)
	entry := map[string]any{
		"ts":         time.Now().UTC().Format(time.RFC3339Nano),
		"level":      "warn",
		"event":      "rate_limit_backend_error",
		"request_id": rid,
		"error":      err.Error(),
	}
	if b, merr := json.Marshal(entry); merr == nil {
		log.SetFlags(0)
		log.Println(string(b))
	}
}
