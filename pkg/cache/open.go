package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

// Config selects and configures the storage backend.
type Config struct {
	Driver         string        `env:"STORAGE_DRIVER" envDefault:"memory"`
	MemoryCapacity int           `env:"STORAGE_MEMORY_CAPACITY" envDefault:"10000"`
	MemoryTTL      time.Duration `env:"STORAGE_MEMORY_TTL" envDefault:"0s"`
	Redis          RedisConfig
}

// Backend is a Storage that can report its own health.
type Backend interface {
	Storage
	Healthcheck(ctx context.Context) error
}

// Open builds the backend named by cfg.Driver. The returned close function
// releases any connection and is never nil.
func Open(ctx context.Context, cfg Config) (Backend, func() error, error) {
	switch cfg.Driver {
	case "", DriverMemory:
		capacity := cfg.MemoryCapacity
		if capacity <= 0 {
			capacity = 10000
		}
		return NewMemoryStorage(capacity, WithMemoryTTL(cfg.MemoryTTL)), func() error { return nil }, nil
	case DriverRedis:
		client, err := ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, func() error { return nil }, err
		}
		return NewRedisStorage(client, cfg.Redis.KeyPrefix, cfg.Redis.TTL), client.Close, nil
	default:
		return nil, func() error { return nil }, fmt.Errorf("%w: %q", ErrUnknownStorageDriver, cfg.Driver)
	}
}
