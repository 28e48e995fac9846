// Package repository defines the persistence ports of the domain.
package repository

import (
	"context"

	"mydrip/internal/errors"
)

// ErrKeyNotFound is returned when a key is absent from the store.
var ErrKeyNotFound = errors.New("key not found")

// KV is the minimal key-value contract every storage backend satisfies.
// Values are opaque byte slices; repositories layer a JSON codec on top.
type KV interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// KVStore is a KV backend that additionally supports atomic multi-key
// updates. Execute runs fn against a transactional view; if fn returns an
// error none of its writes are visible.
type KVStore interface {
	KV

	Execute(ctx context.Context, fn func(tx KV) error) error
}
