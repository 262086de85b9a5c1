package cache

import "context"

// Storage is a string key/value store for client-side session data such as
// the access token returned by the authentication API.
type Storage interface {
	Set(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}
