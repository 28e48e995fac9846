// Package catalog contains the demo implementation of the external
// clothing catalog gateway.
package catalog

import (
	"context"
	"strings"
	"time"

	"mydrip/config"
	"mydrip/internal/domain/entity"
	"mydrip/internal/domain/service"

	"github.com/pkg/errors"
)

type sheinGateway struct {
	delay time.Duration
}

// NewSheinGateway creates the fixture-backed catalog gateway. The delay
// simulates upstream latency and can be zeroed in tests.
func NewSheinGateway(cfg *config.Config) service.CatalogGateway {
	var delay time.Duration
	if cfg.Catalog != nil {
		delay = cfg.Catalog.SearchDelay
	}

	return &sheinGateway{delay: delay}
}

// Search filters the demo product set by name and category. The simulated
// latency honors context cancellation.
func (g *sheinGateway) Search(ctx context.Context, query string, category entity.Category) ([]entity.CatalogProduct, error) {
	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), "catalog search canceled")
		case <-timer.C:
		}
	}

	query = strings.ToLower(strings.TrimSpace(query))

	results := make([]entity.CatalogProduct, 0, len(demoProducts))
	for _, product := range demoProducts {
		if category != "" && product.Category != category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(product.Name), query) {
			continue
		}
		results = append(results, product)
	}

	return results, nil
}

// demoProducts is the fixed result set served to every search.
var demoProducts = []entity.CatalogProduct{
	{
		ID:       "1",
		Name:     "Camiseta Básica Oversized",
		Price:    49.90,
		Currency: "BRL",
		ImageURL: "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400&h=500&fit=crop",
		Category: entity.CategoryTop,
		Rating:   4.5,
		Orders:   1200,
		StoreURL: "https://br.shein.com",
		Store:    "SHEIN",
	},
	{
		ID:       "2",
		Name:     "Calça Jeans Skinny",
		Price:    89.90,
		Currency: "BRL",
		ImageURL: "https://images.unsplash.com/photo-1542272604-787c3835535d?w=400&h=500&fit=crop",
		Category: entity.CategoryBottom,
		Rating:   4.2,
		Orders:   860,
		StoreURL: "https://br.shein.com",
		Store:    "SHEIN",
	},
	{
		ID:       "3",
		Name:     "Tênis Casual Branco",
		Price:    129.90,
		Currency: "BRL",
		ImageURL: "https://images.unsplash.com/photo-1549298916-b41d501d3772?w=400&h=400&fit=crop",
		Category: entity.CategoryShoes,
		Rating:   4.7,
		Orders:   2300,
		StoreURL: "https://br.shein.com",
		Store:    "SHEIN",
	},
	{
		ID:       "4",
		Name:     "Bolsa Transversal Preta",
		Price:    69.90,
		Currency: "BRL",
		ImageURL: "https://images.unsplash.com/photo-1590874103328-eac38a683ce7?w=400&h=400&fit=crop",
		Category: entity.CategoryAccessories,
		Rating:   4.3,
		Orders:   540,
		StoreURL: "https://br.shein.com",
		Store:    "SHEIN",
	},
	{
		ID:       "5",
		Name:     "Blusa Cropped Listrada",
		Price:    59.90,
		Currency: "BRL",
		ImageURL: "https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?w=400&h=500&fit=crop",
		Category: entity.CategoryTop,
		Rating:   4.1,
		Orders:   390,
		StoreURL: "https://br.shein.com",
		Store:    "SHEIN",
	},
	{
		ID:       "6",
		Name:     "Shorts Jeans Destroyed",
		Price:    79.90,
		Currency: "BRL",
		ImageURL: "https://images.unsplash.com/photo-1591195853828-11db59a44f6b?w=400&h=500&fit=crop",
		Category: entity.CategoryBottom,
		Rating:   4.4,
		Orders:   710,
		StoreURL: "https://br.shein.com",
		Store:    "SHEIN",
	},
	{
		ID:       "7",
		Name:     "Óculos de Sol Aviador",
		Price:    39.90,
		Currency: "BRL",
		ImageURL: "https://images.unsplash.com/photo-1511499767150-a48a237f0083?w=400&h=400&fit=crop",
		Category: entity.CategoryAccessories,
		Rating:   4.0,
		Orders:   280,
		StoreURL: "https://br.shein.com",
		Store:    "SHEIN",
	},
	{
		ID:       "8",
		Name:     "Sandália Plataforma",
		Price:    99.90,
		Currency: "BRL",
		ImageURL: "https://images.unsplash.com/photo-1543163521-1bf539c55dd2?w=400&h=400&fit=crop",
		Category: entity.CategoryShoes,
		Rating:   4.6,
		Orders:   950,
		StoreURL: "https://br.shein.com",
		Store:    "SHEIN",
	},
}
