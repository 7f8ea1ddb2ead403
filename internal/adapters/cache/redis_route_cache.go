package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"warehouse-picker-service/internal/platform/obs"
	"warehouse-picker-service/internal/ports"

	redis "github.com/redis/go-redis/v9"
)

// Redis backed cache for planned pick routes.
// Keys are expected to be consistent (e.g., already digested) by the caller.
type RedisRouteCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisRouteCache(rdb *redis.Client, ttl time.Duration) *RedisRouteCache {
	return &RedisRouteCache{rdb: rdb, ttl: ttl}
}

// NewRedisRouteCacheFromURL parses a redis:// URL and verifies the connection.
func NewRedisRouteCacheFromURL(ctx context.Context, url string, ttl time.Duration) (*RedisRouteCache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("route cache: parse redis url: %w", err)
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("route cache: ping redis: %w", err)
	}

	return NewRedisRouteCache(rdb, ttl), nil
}

func (c *RedisRouteCache) Get(ctx context.Context, key string) (_ ports.CachedRoute, _ bool, err error) {
	defer obs.Time(ctx, "route.cache.Get")(&err)

	if c.rdb == nil {
		return ports.CachedRoute{}, false, errors.New("route cache: client is nil")
	}
	if strings.TrimSpace(key) == "" {
		return ports.CachedRoute{}, false, errors.New("get route cache: key must not be empty")
	}

	data, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.CachedRoute{}, false, nil
	}
	if err != nil {
		return ports.CachedRoute{}, false, fmt.Errorf("get route cache: %w", err)
	}

	var route ports.CachedRoute
	if err := json.Unmarshal(data, &route); err != nil {
		return ports.CachedRoute{}, false, fmt.Errorf("get route cache: decode %q: %w", key, err)
	}

	return route, true, nil
}

func (c *RedisRouteCache) Put(ctx context.Context, key string, route ports.CachedRoute) error {
	if c.rdb == nil {
		return errors.New("route cache: client is nil")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("insert route cache: key must not be empty")
	}

	data, err := json.Marshal(route)
	if err != nil {
		return fmt.Errorf("insert route cache: encode: %w", err)
	}

	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("insert route cache key=%q: %w", key, err)
	}

	return nil
}

func (c *RedisRouteCache) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
