package kv

import (
	"context"

	"mydrip/internal/domain/entity"
	"mydrip/internal/domain/repository"
	"mydrip/internal/errors"
)

type outfitRepository struct {
	store repository.KV
}

// NewOutfitRepository creates an outfit repository over the storage port.
func NewOutfitRepository(store repository.KVStore) repository.OutfitRepository {
	return &outfitRepository{store: store}
}

func newOutfitRepositoryWithKV(store repository.KV) repository.OutfitRepository {
	return &outfitRepository{store: store}
}

// ListOutfits returns all outfits in insertion order.
func (r *outfitRepository) ListOutfits(ctx context.Context) ([]entity.Outfit, error) {
	outfits, err := getJSON[[]entity.Outfit](ctx, r.store, keyOutfits)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return []entity.Outfit{}, nil
		}

		return nil, err
	}

	return *outfits, nil
}

// SaveOutfits replaces the stored collection.
func (r *outfitRepository) SaveOutfits(ctx context.Context, outfits []entity.Outfit) error {
	if outfits == nil {
		outfits = []entity.Outfit{}
	}

	return setJSON(ctx, r.store, keyOutfits, outfits)
}

// ClearOutfits removes the stored collection.
func (r *outfitRepository) ClearOutfits(ctx context.Context) error {
	return errors.Wrap(r.store.Delete(ctx, keyOutfits), "failed to clear outfits")
}
