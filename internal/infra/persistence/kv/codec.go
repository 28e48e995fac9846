package kv

import (
	"context"
	"encoding/json"

	"mydrip/internal/domain/repository"
	"mydrip/internal/errors"
)

// getJSON loads and decodes the document stored under key.
// The repository.ErrKeyNotFound sentinel passes through unwrapped so
// callers can translate it to their own not-found error.
func getJSON[T any](ctx context.Context, store repository.KV, key string) (*T, error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return nil, err
		}

		return nil, errors.Wrapf(err, "failed to read key %s", key)
	}

	out := new(T)
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, errors.Wrapf(err, "failed to decode key %s", key)
	}

	return out, nil
}

// setJSON encodes value and stores it under key.
func setJSON(ctx context.Context, store repository.KV, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode key %s", key)
	}

	return errors.Wrapf(store.Set(ctx, key, raw), "failed to write key %s", key)
}
