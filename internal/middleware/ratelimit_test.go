package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestRateLimiter_Check(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled limiter allows everything", func(t *testing.T) {
		l := NewRateLimiter(nil, false)
		allowed, err := l.Check(ctx, "jwt", "ip:1", 1, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("nil redis reports an error", func(t *testing.T) {
		l := NewRateLimiter(nil, true)
		_, err := l.Check(ctx, "jwt", "ip:1", 1, time.Minute)
		assert.Error(t, err)
	})

	t.Run("counts within the window", func(t *testing.T) {
		mr, rdb := newTestRedis(t)
		l := NewRateLimiter(rdb, true)

		for i := 0; i < 2; i++ {
			allowed, err := l.Check(ctx, "jwt", "ip:1", 2, time.Minute)
			require.NoError(t, err)
			assert.True(t, allowed)
		}
		allowed, err := l.Check(ctx, "jwt", "ip:1", 2, time.Minute)
		require.NoError(t, err)
		assert.False(t, allowed)

		mr.FastForward(2 * time.Minute)
		allowed, err = l.Check(ctx, "jwt", "ip:1", 2, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
	})
}

func TestRateLimiter_Limit(t *testing.T) {
	_, rdb := newTestRedis(t)
	l := NewRateLimiter(rdb, true)

	app := fiber.New()
	app.Post("/jwt", l.Limit("jwt", 1, time.Minute), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/jwt", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/jwt", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestRateLimiter_FailClosed(t *testing.T) {
	l := NewRateLimiter(nil, true)

	app := fiber.New()
	app.Post("/pay", l.LimitWithPolicy("pay", 1, time.Minute, FailClosed), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Post("/open", l.Limit("open", 1, time.Minute), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/pay", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/open", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
