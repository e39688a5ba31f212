package middleware

import (
	"tritech-assistant/pkg/ratelimit"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RateLimitMiddleware rejects requests exceeding the per-client limit with
// 429 before any body parsing happens.
func RateLimitMiddleware(limiter *ratelimit.Limiter, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identifier := clientIdentifier(c)

		if !limiter.Allow(identifier) {
			logger.Warn("Rate limit exceeded", zap.String("client", identifier))
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Rate limit exceeded. Please try again later.",
			})
		}

		return c.Next()
	}
}

// clientIdentifier resolves the caller identity from proxy headers, falling
// back to the connection's remote address.
func clientIdentifier(c *fiber.Ctx) string {
	if ip := c.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	if ip := c.Get("X-Real-IP"); ip != "" {
		return ip
	}
	if ip := c.IP(); ip != "" {
		return ip
	}
	return "unknown"
}
