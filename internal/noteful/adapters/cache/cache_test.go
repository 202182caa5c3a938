package cache_test

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noteful/internal/noteful/adapters/cache"
	"noteful/internal/noteful/config"
)

func redisConfig(t *testing.T, addr string) *config.RedisConfig {
	t.Helper()

	host, portStr, _ := strings.Cut(addr, ":")
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	return &config.RedisConfig{
		Enabled:      true,
		Host:         host,
		Port:         port,
		PoolSize:     2,
		DialTimeout:  time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
		TTL:          time.Minute,
	}
}

func TestNewRedisCache_ConnectionFailure(t *testing.T) {
	cfg := &config.RedisConfig{
		Host:         "127.0.0.1",
		Port:         1,
		DialTimeout:  100 * time.Millisecond,
		ReadTimeout:  100 * time.Millisecond,
		WriteTimeout: 100 * time.Millisecond,
	}

	c, err := cache.NewRedisCache(context.Background(), cfg)
	require.Error(t, err)
	assert.Nil(t, c)
}

func TestRedisCache(t *testing.T) {
	s := miniredis.RunT(t)
	ctx := context.Background()

	c, err := cache.NewRedisCache(ctx, redisConfig(t, s.Addr()))
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, c.Close()) })

	t.Run("missing key", func(t *testing.T) {
		value, found, err := c.Get(ctx, "note:absent")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, value)
	})

	t.Run("set uses prefix and default ttl", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "note:1", `{"id":"1"}`, 0))

		assert.True(t, s.Exists(cache.KeyPrefix+"note:1"))
		assert.Equal(t, time.Minute, s.TTL(cache.KeyPrefix+"note:1"))

		value, found, err := c.Get(ctx, "note:1")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, `{"id":"1"}`, value)
	})

	t.Run("entry expires", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "tag:1", "v", 5*time.Second))
		s.FastForward(6 * time.Second)

		_, found, err := c.Get(ctx, "tag:1")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("setnx keeps an existing value", func(t *testing.T) {
		stored, err := c.SetNX(ctx, "folder:1", "first", 0)
		require.NoError(t, err)
		assert.True(t, stored)
		assert.Equal(t, time.Minute, s.TTL(cache.KeyPrefix+"folder:1"))

		stored, err = c.SetNX(ctx, "folder:1", "second", 0)
		require.NoError(t, err)
		assert.False(t, stored)

		value, _, err := c.Get(ctx, "folder:1")
		require.NoError(t, err)
		assert.Equal(t, "first", value)
	})

	t.Run("delete several keys", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "note:a", "a", 0))
		require.NoError(t, c.Set(ctx, "note:b", "b", 0))

		require.NoError(t, c.Delete(ctx, "note:a", "note:b", "note:none"))
		assert.False(t, s.Exists(cache.KeyPrefix+"note:a"))
		assert.False(t, s.Exists(cache.KeyPrefix+"note:b"))

		require.NoError(t, c.Delete(ctx))
	})

	t.Run("server errors are returned", func(t *testing.T) {
		s.SetError("ERR injected failure")
		defer s.SetError("")

		_, _, err := c.Get(ctx, "note:1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), cache.ErrorFailedToGet)

		_, err = c.SetNX(ctx, "note:1", "v", 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), cache.ErrorFailedToSet)
	})
}

func TestNop(t *testing.T) {
	ctx := context.Background()
	c := cache.NewNop()

	require.NoError(t, c.Set(ctx, "note:1", "v", time.Minute))
	stored, err := c.SetNX(ctx, "note:1", "v", time.Minute)
	require.NoError(t, err)
	assert.False(t, stored)
	_, found, err := c.Get(ctx, "note:1")
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, c.Delete(ctx, "note:1"))
	assert.NoError(t, c.Close())
}
