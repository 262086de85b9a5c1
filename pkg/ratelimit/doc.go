// Package ratelimit implements token bucket rate limiting with in-memory and
// Redis stores plus HTTP middleware.
//
// A bucket holds up to Capacity tokens and regains RefillRate tokens every
// RefillInterval. Each request takes one token; a request that finds the
// bucket empty is denied without consuming anything.
//
//	store := ratelimit.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimit.NewBucket(store, ratelimit.Config{
//		Capacity:       10,
//		RefillRate:     1,
//		RefillInterval: 30 * time.Second,
//	})
//	if err != nil {
//		return err
//	}
//	r.With(ratelimit.Middleware(limiter, ratelimit.ByIP)).Post("/login", login)
//
// RedisStore runs the same algorithm in a Lua script so several instances
// share buckets.
package ratelimit
