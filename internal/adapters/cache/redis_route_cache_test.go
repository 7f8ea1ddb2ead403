package cache

import (
	"context"
	"testing"
	"time"
	"warehouse-picker-service/internal/ports"

	"github.com/alicebob/miniredis/v2"
	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) (*RedisRouteCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewRedisRouteCache(rdb, ttl), mr
}

func TestRedisRouteCachePutGet(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "pick-route:abc")
	require.NoError(t, err)
	assert.False(t, ok)

	want := ports.CachedRoute{
		Names:         []string{"Item A", "Item E", "Item B"},
		TotalDistance: 5.398345637668169,
	}
	require.NoError(t, c.Put(ctx, "pick-route:abc", want))

	got, ok, err := c.Get(ctx, "pick-route:abc")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestRedisRouteCacheExpires(t *testing.T) {
	c, mr := newTestCache(t, 30*time.Second)
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "k", ports.CachedRoute{Names: []string{"Item A"}}))
	assert.Equal(t, 30*time.Second, mr.TTL("k"))

	mr.FastForward(31 * time.Second)

	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisRouteCacheCorruptEntry(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	require.NoError(t, mr.Set("k", "not json"))

	_, ok, err := c.Get(context.Background(), "k")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestRedisRouteCacheRejectsEmptyKey(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	_, _, err := c.Get(ctx, " ")
	assert.Error(t, err)
	assert.Error(t, c.Put(ctx, "", ports.CachedRoute{}))
}

func TestNewRedisRouteCacheFromURL(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	c, err := NewRedisRouteCacheFromURL(ctx, "redis://"+mr.Addr(), time.Minute)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	require.NoError(t, c.Put(ctx, "k", ports.CachedRoute{Names: []string{"Item A"}}))
	assert.True(t, mr.Exists("k"))

	_, err = NewRedisRouteCacheFromURL(ctx, "not-a-url://", time.Minute)
	assert.Error(t, err)
}
