package repository

import (
	"context"

	"mydrip/internal/domain/entity"
)

// WardrobeRepository persists the ordered clothing item collection.
// The collection is stored and replaced as a whole; insertion order is
// the persisted order.
type WardrobeRepository interface {
	// ListItems returns all items in insertion order. An empty wardrobe
	// yields an empty slice, not an error.
	ListItems(ctx context.Context) ([]entity.ClothingItem, error)

	// SaveItems replaces the stored collection.
	SaveItems(ctx context.Context, items []entity.ClothingItem) error

	// ClearItems removes the stored collection.
	ClearItems(ctx context.Context) error
}
