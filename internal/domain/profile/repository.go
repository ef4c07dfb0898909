package profile

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Store implementations when a key is absent.
// Malformed values are also reported as absent by callers, never as failures.
var ErrKeyNotFound = errors.New("store: key not found")

// Store is the minimal durable-map contract the profile store persists
// through. Implementations live in infrastructure/persistence and may be
// backed by a file, Redis, Postgres, or an in-memory map for tests.
type Store interface {
	// Get returns the value for key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set writes the value for key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes the key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
