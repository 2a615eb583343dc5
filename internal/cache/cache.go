package cache

import (
	"context"
	"errors"
	"time"

	"socialpod/internal/middleware"
	"socialpod/internal/observability"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// Cache is a JSON cache-aside layer over Redis. A nil *Cache, or one built
// around a nil client, behaves as a permanent miss.
type Cache struct {
	rdb *redis.Client
}

// New wraps rdb. rdb may be nil.
func New(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb}
}

func (c *Cache) enabled() bool {
	return c != nil && c.rdb != nil
}

// GetJSON attempts to get the key from Redis and unmarshal into dest.
// Returns (true, nil) if found and unmarshaled, (false, nil) if not found.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if !c.enabled() {
		return false, nil
	}
	b, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(b, dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON marshals v and sets the key with TTL.
func (c *Cache) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	if !c.enabled() {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, ttl).Err()
}

// Aside tries Redis first, on miss it calls fetch (which should populate dest),
// then stores the result in Redis with ttl. Cache failures never fail the call.
func (c *Cache) Aside(ctx context.Context, key string, dest any, ttl time.Duration, fetch func() error) error {
	family := keyFamily(key)
	found, err := c.GetJSON(ctx, key, dest)
	if err != nil {
		middleware.Logger.WarnContext(ctx, "cache read failed", "key", key, "error", err)
	}
	if found {
		observability.CacheLookups.WithLabelValues(family, "hit").Inc()
		return nil
	}
	if c.enabled() {
		observability.CacheLookups.WithLabelValues(family, "miss").Inc()
	}

	if err := fetch(); err != nil {
		return err
	}

	if err := c.SetJSON(ctx, key, dest, ttl); err != nil {
		middleware.Logger.WarnContext(ctx, "cache write failed", "key", key, "error", err)
	}
	return nil
}

// Invalidate removes keys, ignoring errors.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if !c.enabled() || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		middleware.Logger.WarnContext(ctx, "cache invalidation failed", "keys", keys, "error", err)
	}
}

// ErrDisabled is returned by Ping when the cache has no Redis client.
var ErrDisabled = errors.New("cache disabled")

// Ping reports whether Redis answers.
func (c *Cache) Ping(ctx context.Context) error {
	if !c.enabled() {
		return ErrDisabled
	}
	return c.rdb.Ping(ctx).Err()
}
