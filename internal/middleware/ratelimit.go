package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// FailPolicy defines the behavior when the rate limit store (Redis) is unavailable.
type FailPolicy int

const (
	// FailOpen allows the request to proceed if Redis is unavailable.
	FailOpen FailPolicy = iota
	// FailClosed blocks the request (503 Service Unavailable) if Redis is unavailable.
	FailClosed
)

// RateLimiter counts requests per resource and caller in Redis.
type RateLimiter struct {
	rdb     *redis.Client
	enabled bool
}

// NewRateLimiter returns a limiter backed by rdb. A disabled limiter allows
// everything; development and test environments run with it disabled.
func NewRateLimiter(rdb *redis.Client, enabled bool) *RateLimiter {
	return &RateLimiter{rdb: rdb, enabled: enabled}
}

// Check reports whether id may make another request against resource.
func (l *RateLimiter) Check(ctx context.Context, resource, id string, limit int, window time.Duration) (bool, error) {
	if l == nil || !l.enabled {
		return true, nil
	}
	if l.rdb == nil {
		return false, fmt.Errorf("redis client is nil")
	}

	key := fmt.Sprintf("rl:%s:%s", resource, id)

	cnt, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if cnt == 1 {
		l.rdb.Expire(ctx, key, window)
	}
	return cnt <= int64(limit), nil
}

// Limit returns a Fiber middleware enforcing limit requests per window under
// the given resource name. Authenticated callers are keyed by email, others by IP.
func (l *RateLimiter) Limit(resource string, limit int, window time.Duration) fiber.Handler {
	return l.LimitWithPolicy(resource, limit, window, FailOpen)
}

// LimitWithPolicy is Limit with an explicit policy for Redis failures.
func (l *RateLimiter) LimitWithPolicy(resource string, limit int, window time.Duration, policy FailPolicy) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var id string
		if email, ok := c.Locals("email").(string); ok && email != "" {
			id = "user:" + email
		} else {
			id = "ip:" + c.IP()
		}

		allowed, err := l.Check(c.UserContext(), resource, id, limit, window)
		if err != nil {
			if policy == FailClosed {
				Logger.WarnContext(c.UserContext(), "rate limit store unavailable, failing closed",
					"resource", resource, "error", err.Error())
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"error": "rate limit unavailable",
				})
			}
			return c.Next()
		}

		if !allowed {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "rate limit exceeded",
			})
		}
		return c.Next()
	}
}
