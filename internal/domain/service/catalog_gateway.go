package service

import (
	"context"

	"mydrip/internal/domain/entity"
)

// CatalogGateway is the port to the external clothing catalog.
// The shipped implementation serves a fixed demo set with simulated
// upstream latency; a real storefront client would satisfy the same
// contract.
type CatalogGateway interface {
	// Search returns products matching the query, optionally restricted to
	// one category. A zero-value category means no restriction.
	Search(ctx context.Context, query string, category entity.Category) ([]entity.CatalogProduct, error)
}
