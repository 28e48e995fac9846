package usecase

import (
	"context"

	"mydrip/internal/domain/entity"

	"github.com/google/uuid"
)

// Item sort orders accepted by ListItems.
const (
	SortNewest = "newest"
	SortOldest = "oldest"
	SortByName = "name"
)

// AddItemInput defines the data required to add a wardrobe item.
type AddItemInput struct {
	Name     string
	Category string
	Color    string
	Seasons  []string
	ImageURL string
	Tags     []string
}

// ItemFilter narrows and orders the item listing. Zero values mean no
// filtering; Category "all" is treated the same as empty.
type ItemFilter struct {
	Category string
	Season   string
	Search   string
	Sort     string
}

// WardrobeUsecase defines the interface for wardrobe item operations.
type WardrobeUsecase interface {
	AddItem(ctx context.Context, input *AddItemInput) (*entity.ClothingItem, error)
	RemoveItem(ctx context.Context, id uuid.UUID) error
	ListItems(ctx context.Context, filter *ItemFilter) ([]entity.ClothingItem, error)

	// AddFromCatalog snapshots a catalog product as a wardrobe item.
	AddFromCatalog(ctx context.Context, product *entity.CatalogProduct) (*entity.ClothingItem, error)
}
