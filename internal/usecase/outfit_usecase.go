package usecase

import (
	"context"

	"mydrip/internal/domain/entity"

	"github.com/google/uuid"
)

// SortByRating orders outfits by rating, highest first. Unrated outfits
// carry rating 0 and sort last.
const SortByRating = "rating"

// CreateOutfitInput defines the data required to create an outfit.
type CreateOutfitInput struct {
	Name    string
	ItemIDs []uuid.UUID
	Rating  int
	Notes   string
}

// OutfitFilter narrows and orders the outfit listing.
type OutfitFilter struct {
	Season string
	Sort   string
}

// OutfitUsecase defines the interface for outfit operations. Creation is
// gated by the account's plan and increments the lifetime counter in the
// same transaction.
type OutfitUsecase interface {
	CreateOutfit(ctx context.Context, input *CreateOutfitInput) (*entity.Outfit, error)
	RemoveOutfit(ctx context.Context, id uuid.UUID) error
	ListOutfits(ctx context.Context, filter *OutfitFilter) ([]entity.Outfit, error)

	// RandomOutfit assembles one random item per represented category.
	// It does not persist the result.
	RandomOutfit(ctx context.Context) (*entity.Outfit, error)

	// ShareQR renders a QR code PNG that encodes the outfit share payload.
	ShareQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}
