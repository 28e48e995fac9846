package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	deliverycontext "mydrip/internal/delivery/context"
	"mydrip/internal/domain/entity"
	domainerrors "mydrip/internal/domain/errors"
	"mydrip/internal/domain/repository"
	"mydrip/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// wardrobeService implements the WardrobeUsecase interface.
type wardrobeService struct {
	txManager    repository.TransactionManager
	wardrobeRepo repository.WardrobeRepository
	collator     *collate.Collator
	logger       *slog.Logger
}

// WardrobeServiceParams holds dependencies for wardrobeService, injected by Fx.
type WardrobeServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	WardrobeRepo repository.WardrobeRepository
	Logger       *slog.Logger
}

// NewWardrobeService is the constructor for wardrobeService.
func NewWardrobeService(params WardrobeServiceParams) usecase.WardrobeUsecase {
	return &wardrobeService{
		txManager:    params.TxManager,
		wardrobeRepo: params.WardrobeRepo,
		// Portuguese collation so accented item names sort as users expect.
		collator: collate.New(language.Portuguese, collate.IgnoreCase),
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *wardrobeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddItem validates the input, assigns an id and appends the item at the
// tail of the wardrobe.
func (srv *wardrobeService) AddItem(ctx context.Context, input *usecase.AddItemInput) (*entity.ClothingItem, error) {
	if input.Name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "item name is required")
	}

	category, ok := entity.ParseCategory(input.Category)
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown category %q", input.Category)
	}

	seasons := make(entity.Seasons, 0, len(input.Seasons))
	for _, raw := range input.Seasons {
		season, ok := entity.ParseSeason(raw)
		if !ok {
			return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown season %q", raw)
		}
		seasons = append(seasons, season)
	}

	item := entity.ClothingItem{
		ID:       uuid.New(),
		Name:     input.Name,
		Category: category,
		Color:    input.Color,
		Seasons:  seasons,
		ImageURL: input.ImageURL,
		Tags:     input.Tags,
		AddedAt:  time.Now().UTC(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		wardrobeRepo := repoFactory.NewWardrobeRepository()

		items, err := wardrobeRepo.ListItems(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to load items before append")
		}

		return errors.Wrap(wardrobeRepo.SaveItems(ctx, append(items, item)), "failed to persist items after append")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to add wardrobe item", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute add item transaction")
	}

	srv.log(ctx).Debug("Wardrobe item added", slog.Any("itemID", item.ID), slog.String("category", category.String()))

	return &item, nil
}

// RemoveItem deletes the item with the given id, preserving the relative
// order of the remaining items. Outfits referencing the item keep their
// snapshots.
func (srv *wardrobeService) RemoveItem(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		wardrobeRepo := repoFactory.NewWardrobeRepository()

		items, err := wardrobeRepo.ListItems(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to load items before removal")
		}

		remaining := make([]entity.ClothingItem, 0, len(items))
		found := false
		for _, item := range items {
			if item.ID == id {
				found = true

				continue
			}
			remaining = append(remaining, item)
		}
		if !found {
			return errors.Wrapf(domainerrors.ErrItemNotFound, "item %s not found", id)
		}

		return errors.Wrap(wardrobeRepo.SaveItems(ctx, remaining), "failed to persist items after removal")
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to remove wardrobe item", slog.Any("itemID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute remove item transaction")
	}

	srv.log(ctx).Debug("Wardrobe item removed", slog.Any("itemID", id))

	return nil
}

// ListItems returns the wardrobe filtered and ordered per the filter. A nil
// filter lists everything in insertion order.
func (srv *wardrobeService) ListItems(ctx context.Context, filter *usecase.ItemFilter) ([]entity.ClothingItem, error) {
	items, err := srv.wardrobeRepo.ListItems(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load wardrobe items")
	}
	if filter == nil {
		return items, nil
	}

	filtered := make([]entity.ClothingItem, 0, len(items))
	for _, item := range items {
		if filter.Category != "" && filter.Category != "all" && item.Category.String() != filter.Category {
			continue
		}
		if filter.Season != "" && filter.Season != "all" {
			season, ok := entity.ParseSeason(filter.Season)
			if !ok || !item.WornIn(season) {
				continue
			}
		}
		if !item.Matches(filter.Search) {
			continue
		}
		filtered = append(filtered, item)
	}

	srv.sortItems(filtered, filter.Sort)

	return filtered, nil
}

// sortItems orders items in place. The zero sort keeps insertion order.
func (srv *wardrobeService) sortItems(items []entity.ClothingItem, order string) {
	switch order {
	case usecase.SortNewest:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].AddedAt.After(items[j].AddedAt)
		})
	case usecase.SortOldest:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].AddedAt.Before(items[j].AddedAt)
		})
	case usecase.SortByName:
		sort.SliceStable(items, func(i, j int) bool {
			return srv.collator.CompareString(items[i].Name, items[j].Name) < 0
		})
	}
}

// AddFromCatalog snapshots a catalog product as a wardrobe item: varied
// color, all seasons, tagged with the store and the category.
func (srv *wardrobeService) AddFromCatalog(ctx context.Context, product *entity.CatalogProduct) (*entity.ClothingItem, error) {
	if !product.Category.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown category %q", product.Category)
	}

	seasons := make([]string, 0, len(entity.AllSeasons()))
	for _, season := range entity.AllSeasons() {
		seasons = append(seasons, season.String())
	}

	return srv.AddItem(ctx, &usecase.AddItemInput{
		Name:     product.Name,
		Category: product.Category.String(),
		Color:    "Variado",
		Seasons:  seasons,
		ImageURL: product.ImageURL,
		Tags:     []string{product.Store, product.Category.String()},
	})
}
