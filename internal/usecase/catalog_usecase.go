package usecase

import (
	"context"

	"mydrip/internal/domain/entity"
)

// CatalogSearchInput defines the catalog search parameters. Category "all"
// or empty means every category.
type CatalogSearchInput struct {
	Query    string
	Category string
}

// CatalogUsecase defines the interface for external catalog searches.
type CatalogUsecase interface {
	Search(ctx context.Context, input *CatalogSearchInput) ([]entity.CatalogProduct, error)
}
