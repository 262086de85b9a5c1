package ratelimit_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authform/pkg/ratelimit"
)

func TestRedisStore(t *testing.T) {
	t.Parallel()

	srv, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(srv.Close)

	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	clock := newFakeClock()
	store := ratelimit.NewRedisStore(client, "rl:", ratelimit.WithRedisClock(clock.Now))
	b, err := ratelimit.NewBucket(store, testConfig)
	require.NoError(t, err)

	for want := 2; want >= 0; want-- {
		res, err := b.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.Equal(t, want, res.Remaining)
	}
	assert.True(t, srv.Exists("rl:1.2.3.4"), "keys are namespaced by prefix")

	res, err := b.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, res.Allowed())
	assert.Equal(t, clock.Now().Add(time.Minute).UnixMilli(), res.ResetAt.UnixMilli())

	clock.Advance(time.Minute)
	res, err = b.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, res.Allowed())

	require.NoError(t, b.Reset(ctx, "1.2.3.4"))
	assert.False(t, srv.Exists("rl:1.2.3.4"))

	srv.Close()
	_, err = b.Allow(ctx, "1.2.3.4")
	assert.ErrorIs(t, err, ratelimit.ErrStoreUnavailable)
}
