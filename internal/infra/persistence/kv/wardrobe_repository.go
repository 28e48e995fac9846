package kv

import (
	"context"

	"mydrip/internal/domain/entity"
	"mydrip/internal/domain/repository"
	"mydrip/internal/errors"
)

type wardrobeRepository struct {
	store repository.KV
}

// NewWardrobeRepository creates a wardrobe repository over the storage port.
func NewWardrobeRepository(store repository.KVStore) repository.WardrobeRepository {
	return &wardrobeRepository{store: store}
}

func newWardrobeRepositoryWithKV(store repository.KV) repository.WardrobeRepository {
	return &wardrobeRepository{store: store}
}

// ListItems returns all items in insertion order.
func (r *wardrobeRepository) ListItems(ctx context.Context) ([]entity.ClothingItem, error) {
	items, err := getJSON[[]entity.ClothingItem](ctx, r.store, keyItems)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return []entity.ClothingItem{}, nil
		}

		return nil, err
	}

	return *items, nil
}

// SaveItems replaces the stored collection.
func (r *wardrobeRepository) SaveItems(ctx context.Context, items []entity.ClothingItem) error {
	if items == nil {
		items = []entity.ClothingItem{}
	}

	return setJSON(ctx, r.store, keyItems, items)
}

// ClearItems removes the stored collection.
func (r *wardrobeRepository) ClearItems(ctx context.Context) error {
	return errors.Wrap(r.store.Delete(ctx, keyItems), "failed to clear items")
}
