package impl

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sort"
	"time"

	deliverycontext "mydrip/internal/delivery/context"
	"mydrip/internal/domain/entity"
	domainerrors "mydrip/internal/domain/errors"
	"mydrip/internal/domain/repository"
	"mydrip/internal/domain/service"
	"mydrip/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// outfitService implements the OutfitUsecase interface.
type outfitService struct {
	txManager    repository.TransactionManager
	outfitRepo   repository.OutfitRepository
	wardrobeRepo repository.WardrobeRepository
	qrService    service.QRCodeService
	collator     *collate.Collator
	logger       *slog.Logger
}

// OutfitServiceParams holds dependencies for outfitService, injected by Fx.
type OutfitServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	OutfitRepo   repository.OutfitRepository
	WardrobeRepo repository.WardrobeRepository
	QRService    service.QRCodeService
	Logger       *slog.Logger
}

// NewOutfitService is the constructor for outfitService.
func NewOutfitService(params OutfitServiceParams) usecase.OutfitUsecase {
	return &outfitService{
		txManager:    params.TxManager,
		outfitRepo:   params.OutfitRepo,
		wardrobeRepo: params.WardrobeRepo,
		qrService:    params.QRService,
		// Portuguese collation so accented outfit names sort as users expect.
		collator: collate.New(language.Portuguese, collate.IgnoreCase),
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *outfitService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOutfit creates an outfit from current wardrobe items. The plan gate,
// the outfit append and the lifetime counter increment run in one
// transaction so a failure leaves both the list and the counter untouched.
func (srv *outfitService) CreateOutfit(ctx context.Context, input *usecase.CreateOutfitInput) (*entity.Outfit, error) {
	if input.Name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "outfit name is required")
	}
	if len(input.ItemIDs) == 0 {
		return nil, errors.Wrap(domainerrors.ErrOutfitEmpty, "outfit needs at least one item")
	}

	var created *entity.Outfit
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.NewSessionRepository()
		outfitRepo := repoFactory.NewOutfitRepository()
		wardrobeRepo := repoFactory.NewWardrobeRepository()

		user, err := sessionRepo.FindUser(ctx)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "no active account")
			}

			return errors.Wrap(err, "failed to load account for outfit gate")
		}

		if permission := user.CanCreateOutfit(); !permission.Allowed {
			return errors.Wrap(domainerrors.ErrOutfitLimitReached, permission.Reason)
		}

		snapshots, err := srv.resolveItems(ctx, wardrobeRepo, input.ItemIDs)
		if err != nil {
			return err
		}

		outfit := entity.Outfit{
			ID:        uuid.New(),
			Name:      input.Name,
			Items:     snapshots,
			CreatedAt: time.Now().UTC(),
			Rating:    input.Rating,
			Notes:     input.Notes,
		}

		outfits, err := outfitRepo.ListOutfits(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to load outfits before append")
		}
		if err := outfitRepo.SaveOutfits(ctx, append(outfits, outfit)); err != nil {
			return errors.Wrap(err, "failed to persist outfits after append")
		}

		user.OutfitsCreated++
		if err := sessionRepo.SaveUser(ctx, user); err != nil {
			return errors.Wrap(err, "failed to persist outfit counter")
		}
		created = &outfit

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create outfit", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute create outfit transaction")
	}

	srv.log(ctx).Debug("Outfit created", slog.Any("outfitID", created.ID), slog.Int("items", len(created.Items)))

	return created, nil
}

// resolveItems maps item ids to value snapshots of the current wardrobe.
func (srv *outfitService) resolveItems(ctx context.Context, wardrobeRepo repository.WardrobeRepository, ids []uuid.UUID) ([]entity.ClothingItem, error) {
	items, err := wardrobeRepo.ListItems(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load wardrobe for outfit")
	}

	byID := make(map[uuid.UUID]entity.ClothingItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	snapshots := make([]entity.ClothingItem, 0, len(ids))
	for _, id := range ids {
		item, ok := byID[id]
		if !ok {
			return nil, errors.Wrapf(domainerrors.ErrItemNotFound, "item %s not found", id)
		}
		snapshots = append(snapshots, item)
	}

	return snapshots, nil
}

// RemoveOutfit deletes the outfit. The lifetime counter stays as it is, the
// free plan limit counts creations, not current outfits.
func (srv *outfitService) RemoveOutfit(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		outfitRepo := repoFactory.NewOutfitRepository()

		outfits, err := outfitRepo.ListOutfits(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to load outfits before removal")
		}

		remaining := make([]entity.Outfit, 0, len(outfits))
		found := false
		for _, outfit := range outfits {
			if outfit.ID == id {
				found = true

				continue
			}
			remaining = append(remaining, outfit)
		}
		if !found {
			return errors.Wrapf(domainerrors.ErrOutfitNotFound, "outfit %s not found", id)
		}

		return errors.Wrap(outfitRepo.SaveOutfits(ctx, remaining), "failed to persist outfits after removal")
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to remove outfit", slog.Any("outfitID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute remove outfit transaction")
	}

	srv.log(ctx).Debug("Outfit removed", slog.Any("outfitID", id))

	return nil
}

// ListOutfits returns outfits filtered by season and ordered per the filter.
func (srv *outfitService) ListOutfits(ctx context.Context, filter *usecase.OutfitFilter) ([]entity.Outfit, error) {
	outfits, err := srv.outfitRepo.ListOutfits(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load outfits")
	}
	if filter == nil {
		return outfits, nil
	}

	filtered := make([]entity.Outfit, 0, len(outfits))
	for _, outfit := range outfits {
		if filter.Season != "" && filter.Season != "all" {
			season, ok := entity.ParseSeason(filter.Season)
			if !ok || !outfit.WornIn(season) {
				continue
			}
		}
		filtered = append(filtered, outfit)
	}

	switch filter.Sort {
	case usecase.SortNewest:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		})
	case usecase.SortOldest:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
		})
	case usecase.SortByRating:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rating > filtered[j].Rating
		})
	case usecase.SortByName:
		sort.SliceStable(filtered, func(i, j int) bool {
			return srv.collator.CompareString(filtered[i].Name, filtered[j].Name) < 0
		})
	}

	return filtered, nil
}

// RandomOutfit assembles an ephemeral outfit with one random item from each
// category present in the wardrobe. Nothing is persisted and no counter
// moves.
func (srv *outfitService) RandomOutfit(ctx context.Context) (*entity.Outfit, error) {
	items, err := srv.wardrobeRepo.ListItems(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load wardrobe for random outfit")
	}
	if len(items) == 0 {
		return nil, errors.Wrap(domainerrors.ErrItemNotFound, "wardrobe is empty")
	}

	byCategory := make(map[entity.Category][]entity.ClothingItem)
	for _, item := range items {
		byCategory[item.Category] = append(byCategory[item.Category], item)
	}

	picked := make([]entity.ClothingItem, 0, len(byCategory))
	for _, category := range entity.AllCategories() {
		candidates := byCategory[category]
		if len(candidates) == 0 {
			continue
		}
		picked = append(picked, candidates[rand.IntN(len(candidates))])
	}

	outfit := &entity.Outfit{
		ID:        uuid.New(),
		Name:      "Look Aleatório",
		Items:     picked,
		CreatedAt: time.Now().UTC(),
	}

	srv.log(ctx).Debug("Random outfit assembled", slog.Int("items", len(picked)))

	return outfit, nil
}

// ShareQR renders the share QR code for an existing outfit.
func (srv *outfitService) ShareQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	outfits, err := srv.outfitRepo.ListOutfits(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load outfits for sharing")
	}

	found := false
	for _, outfit := range outfits {
		if outfit.ID == id {
			found = true

			break
		}
	}
	if !found {
		return nil, errors.Wrapf(domainerrors.ErrOutfitNotFound, "outfit %s not found", id)
	}

	png, err := srv.qrService.GenerateOutfitQR(id)
	if err != nil {
		srv.log(ctx).Error("Failed to generate outfit QR code", slog.Any("outfitID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate outfit QR code")
	}

	return png, nil
}
