package cache

import (
	"context"
	"time"
)

// MemoryStorage keeps values in a process-local LRU cache. It is the default
// storage for single-instance deployments and tests.
type MemoryStorage struct {
	lru *LRUCache[string, string]
	ttl time.Duration
}

// MemoryOption configures MemoryStorage.
type MemoryOption func(*MemoryStorage)

// WithMemoryTTL expires values after ttl. Zero keeps them until evicted.
func WithMemoryTTL(ttl time.Duration) MemoryOption {
	return func(s *MemoryStorage) {
		if ttl >= 0 {
			s.ttl = ttl
		}
	}
}

// WithMemoryClock overrides the time source, for tests.
func WithMemoryClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStorage) {
		s.lru.SetClock(now)
	}
}

// NewMemoryStorage holds at most capacity keys.
func NewMemoryStorage(capacity int, opts ...MemoryOption) *MemoryStorage {
	s := &MemoryStorage{lru: NewLRUCache[string, string](capacity)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStorage) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if key == "" {
		return ErrEmptyKey
	}
	s.lru.PutWithTTL(key, value, s.ttl)
	return nil
}

func (s *MemoryStorage) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	v, ok := s.lru.Get(key)
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *MemoryStorage) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.lru.Remove(key)
	return nil
}

// Healthcheck always succeeds; it exists so both storages share a signature.
func (s *MemoryStorage) Healthcheck(ctx context.Context) error {
	return ctx.Err()
}
