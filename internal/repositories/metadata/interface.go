// Package metadata persists small client-side key/value state, most
// importantly the bearer token that keeps a session alive across runs.
package metadata

import (
	"context"
)

// Repository is a durable key/value store. Get returns (nil, nil) when the
// key is absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
