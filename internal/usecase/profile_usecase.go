package usecase

import (
	"context"

	"mydrip/internal/domain/entity"
)

// ProfileUsecase defines the interface for wardrobe-wide operations:
// statistics, the portable export/import document, and full reset.
type ProfileUsecase interface {
	Stats(ctx context.Context) (*entity.WardrobeStats, error)

	// Export snapshots measurements, items and outfits into one document.
	Export(ctx context.Context) (*entity.ExportDocument, error)

	// Import replaces measurements, items and outfits wholesale, atomically.
	Import(ctx context.Context, doc *entity.ExportDocument) error

	// ClearAll deletes items, outfits and measurements. The account record
	// and credentials are untouched.
	ClearAll(ctx context.Context) error
}
