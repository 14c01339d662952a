// Package store provides the key-value capability backing the OAuth
// authorization subsystem. Records are opaque byte values with an
// optional store-enforced TTL; the typed repositories in internal/oauth
// layer entity semantics on top of this interface.
package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates the key is absent or its TTL has elapsed.
var ErrNotFound = errors.New("key not found")

// KV is the minimal key-value capability the gateway requires: get,
// put with optional TTL, and delete. No transactions and no
// compare-and-swap are offered; callers must not assume atomicity
// across operations.
type KV interface {
	// Get returns the value for key, or ErrNotFound if the key is
	// absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key. A zero ttl stores the value without
	// expiry; a positive ttl lets the store drop the key after the
	// duration elapses.
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}
