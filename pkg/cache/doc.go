// Package cache provides the key/value storages used to keep client-side
// session data, most notably the access token saved after a successful login
// or signup.
//
// Two backends implement the Storage interface:
//
//   - MemoryStorage keeps values in a bounded, thread-safe LRUCache with an
//     optional TTL. It is the default and needs no infrastructure.
//   - RedisStorage keeps values in Redis (github.com/redis/go-redis/v9) under
//     a key prefix, so several service instances share the same tokens.
//
// Open picks a backend from Config, which is normally loaded from the
// environment:
//
//	var cfg cache.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//	storage, closeFn, err := cache.Open(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer closeFn()
//
//	_ = storage.Set(ctx, "accessToken", token)
//
// Get returns ErrNotFound for missing or expired keys.
//
// The generic LRUCache is exported on its own as well; it evicts the least
// recently used entry once capacity is exceeded and reclaims expired entries
// lazily on access.
package cache
