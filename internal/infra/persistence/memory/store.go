// Package memory contains an in-process key-value store. It backs tests and
// dry runs; the durable backend is the sqlite store.
package memory

import (
	"context"
	"maps"
	"sync"

	"mydrip/internal/domain/repository"
)

// Store is a mutex-guarded in-memory implementation of repository.KVStore.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{data: make(map[string][]byte)}
}

// Get returns the value stored under key, or repository.ErrKeyNotFound.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, repository.ErrKeyNotFound
	}

	out := make([]byte, len(value))
	copy(out, value)

	return out, nil
}

// Set stores value under key, overwriting any previous value.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.data[key] = stored

	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)

	return nil
}

// Execute runs fn against a staged copy of the data under the write lock.
// Writes become visible only when fn returns nil.
func (s *Store) Execute(ctx context.Context, fn func(tx repository.KV) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := maps.Clone(s.data)
	if err := fn(&txKV{data: staged}); err != nil {
		return err
	}
	s.data = staged

	return nil
}

// txKV is the staged view handed to Execute callbacks. It is only touched
// by the one goroutine running fn, under the store's write lock.
type txKV struct {
	data map[string][]byte
}

func (t *txKV) Get(_ context.Context, key string) ([]byte, error) {
	value, ok := t.data[key]
	if !ok {
		return nil, repository.ErrKeyNotFound
	}

	return value, nil
}

func (t *txKV) Set(_ context.Context, key string, value []byte) error {
	t.data[key] = value

	return nil
}

func (t *txKV) Delete(_ context.Context, key string) error {
	delete(t.data, key)

	return nil
}
