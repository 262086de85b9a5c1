package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authform/pkg/cache"
)

func TestMemoryStorage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("set get delete", func(t *testing.T) {
		t.Parallel()
		s := cache.NewMemoryStorage(10)

		require.NoError(t, s.Set(ctx, "accessToken", "token-1"))
		v, err := s.Get(ctx, "accessToken")
		require.NoError(t, err)
		assert.Equal(t, "token-1", v)

		require.NoError(t, s.Set(ctx, "accessToken", "token-2"))
		v, err = s.Get(ctx, "accessToken")
		require.NoError(t, err)
		assert.Equal(t, "token-2", v)

		require.NoError(t, s.Delete(ctx, "accessToken"))
		_, err = s.Get(ctx, "accessToken")
		assert.ErrorIs(t, err, cache.ErrNotFound)
		assert.NoError(t, s.Healthcheck(ctx))
	})

	t.Run("rejects empty key", func(t *testing.T) {
		t.Parallel()
		s := cache.NewMemoryStorage(10)
		assert.ErrorIs(t, s.Set(ctx, "", "v"), cache.ErrEmptyKey)
	})

	t.Run("honours cancelled context", func(t *testing.T) {
		t.Parallel()
		s := cache.NewMemoryStorage(10)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		assert.ErrorIs(t, s.Set(cctx, "k", "v"), context.Canceled)
		_, err := s.Get(cctx, "k")
		assert.ErrorIs(t, err, context.Canceled)
		assert.ErrorIs(t, s.Delete(cctx, "k"), context.Canceled)
	})

	t.Run("expires values", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		s := cache.NewMemoryStorage(10, cache.WithMemoryTTL(time.Hour), cache.WithMemoryClock(clock.Now))

		require.NoError(t, s.Set(ctx, "accessToken", "token"))
		clock.Advance(time.Hour)

		_, err := s.Get(ctx, "accessToken")
		assert.ErrorIs(t, err, cache.ErrNotFound)
	})
}

func TestOpen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	s, closeFn, err := cache.Open(ctx, cache.Config{})
	require.NoError(t, err)
	require.NotNil(t, closeFn)
	assert.IsType(t, &cache.MemoryStorage{}, s)
	assert.NoError(t, closeFn())

	_, closeFn, err = cache.Open(ctx, cache.Config{Driver: "etcd"})
	assert.ErrorIs(t, err, cache.ErrUnknownStorageDriver)
	assert.NotNil(t, closeFn)

	_, _, err = cache.Open(ctx, cache.Config{
		Driver: cache.DriverRedis,
		Redis:  cache.RedisConfig{ConnectionURL: "not a url", RetryAttempts: 1},
	})
	assert.ErrorIs(t, err, cache.ErrFailedToParseRedisURL)
}
