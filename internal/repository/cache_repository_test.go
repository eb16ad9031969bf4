package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopCache(t *testing.T) {
	var c CacheRepository = NopCache{}
	require.NoError(t, c.Set(context.Background(), "k", "v"))

	_, err := c.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCache_GetSet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(time.Minute)

	_, err := c.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, c.Set(ctx, "k", "v1"))
	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v1", got)

	require.NoError(t, c.Set(ctx, "k", "v2"))
	got, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", got)
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewMemoryCache(time.Minute)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "a", "1"))
	require.NoError(t, c.Set(ctx, "b", "2"))

	now = now.Add(59 * time.Second)
	_, err := c.Get(ctx, "a")
	assert.NoError(t, err)

	now = now.Add(time.Second)
	_, err = c.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.Equal(t, 1, c.Len(), "expired entry removed on read")

	assert.Equal(t, 1, c.Sweep())
	assert.Zero(t, c.Len())
}

func TestRedisCache_UnreachableServer(t *testing.T) {
	c := NewRedisCache(RedisOptions{Addr: "127.0.0.1:1", TTL: time.Minute})
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	assert.Error(t, c.Ping(ctx))

	_, err := c.Get(ctx, "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
	assert.Contains(t, err.Error(), "redis get k")

	assert.ErrorContains(t, c.Set(ctx, "k", "v"), "redis set k")
}
