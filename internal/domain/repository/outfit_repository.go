package repository

import (
	"context"

	"mydrip/internal/domain/entity"
)

// OutfitRepository persists the ordered outfit collection.
type OutfitRepository interface {
	// ListOutfits returns all outfits in insertion order. An empty
	// collection yields an empty slice, not an error.
	ListOutfits(ctx context.Context) ([]entity.Outfit, error)

	// SaveOutfits replaces the stored collection.
	SaveOutfits(ctx context.Context, outfits []entity.Outfit) error

	// ClearOutfits removes the stored collection.
	ClearOutfits(ctx context.Context) error
}
