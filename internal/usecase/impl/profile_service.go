package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "mydrip/internal/delivery/context"
	"mydrip/internal/domain/entity"
	domainerrors "mydrip/internal/domain/errors"
	"mydrip/internal/domain/repository"
	"mydrip/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager       repository.TransactionManager
	wardrobeRepo    repository.WardrobeRepository
	outfitRepo      repository.OutfitRepository
	measurementRepo repository.MeasurementRepository
	now             func() time.Time
	logger          *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	WardrobeRepo    repository.WardrobeRepository
	OutfitRepo      repository.OutfitRepository
	MeasurementRepo repository.MeasurementRepository
	Logger          *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:       params.TxManager,
		wardrobeRepo:    params.WardrobeRepo,
		outfitRepo:      params.OutfitRepo,
		measurementRepo: params.MeasurementRepo,
		now:             time.Now,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Stats summarizes the wardrobe. Every category appears in the map, zero
// when empty.
func (srv *profileService) Stats(ctx context.Context) (*entity.WardrobeStats, error) {
	items, err := srv.wardrobeRepo.ListItems(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load items for stats")
	}

	outfits, err := srv.outfitRepo.ListOutfits(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load outfits for stats")
	}

	categories := make(map[entity.Category]int, len(entity.AllCategories()))
	for _, category := range entity.AllCategories() {
		categories[category] = 0
	}
	for _, item := range items {
		categories[item.Category]++
	}

	return &entity.WardrobeStats{
		TotalItems:   len(items),
		TotalOutfits: len(outfits),
		Categories:   categories,
	}, nil
}

// Export snapshots the full wardrobe state into one portable document.
func (srv *profileService) Export(ctx context.Context) (*entity.ExportDocument, error) {
	srv.log(ctx).Info("Exporting wardrobe")

	var doc *entity.ExportDocument
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		wardrobeRepo := repoFactory.NewWardrobeRepository()
		outfitRepo := repoFactory.NewOutfitRepository()
		measurementRepo := repoFactory.NewMeasurementRepository()

		items, err := wardrobeRepo.ListItems(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to load items for export")
		}

		outfits, err := outfitRepo.ListOutfits(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to load outfits for export")
		}

		measurements, err := measurementRepo.Find(ctx)
		if err != nil {
			if !errors.Is(err, repository.ErrMeasurementsNotFound) {
				return errors.Wrap(err, "failed to load measurements for export")
			}
			defaults := entity.DefaultMeasurements()
			measurements = &defaults
		}

		categories := make(map[entity.Category]int, len(entity.AllCategories()))
		for _, category := range entity.AllCategories() {
			categories[category] = 0
		}
		for _, item := range items {
			categories[item.Category]++
		}

		doc = &entity.ExportDocument{
			Measurements: *measurements,
			Stats: entity.WardrobeStats{
				TotalItems:   len(items),
				TotalOutfits: len(outfits),
				Categories:   categories,
			},
			ExportDate: srv.now().UTC(),
			Items:      items,
			Outfits:    outfits,
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to export wardrobe", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute export transaction")
	}

	srv.log(ctx).Debug("Wardrobe exported", slog.Int("items", len(doc.Items)), slog.Int("outfits", len(doc.Outfits)))

	return doc, nil
}

// Import replaces measurements, items and outfits wholesale in one
// transaction. The account record and credentials are untouched.
func (srv *profileService) Import(ctx context.Context, doc *entity.ExportDocument) error {
	if doc == nil {
		return errors.Wrap(domainerrors.ErrImportInvalid, "import document is empty")
	}
	if field := doc.Measurements.Validate(); field != "" {
		return errors.Wrapf(domainerrors.ErrImportInvalid, "import measurement %s out of range", field)
	}

	srv.log(ctx).Info("Importing wardrobe", slog.Int("items", len(doc.Items)), slog.Int("outfits", len(doc.Outfits)))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewMeasurementRepository().Save(ctx, doc.Measurements); err != nil {
			return errors.Wrap(err, "failed to import measurements")
		}
		if err := repoFactory.NewWardrobeRepository().SaveItems(ctx, doc.Items); err != nil {
			return errors.Wrap(err, "failed to import items")
		}

		return errors.Wrap(repoFactory.NewOutfitRepository().SaveOutfits(ctx, doc.Outfits), "failed to import outfits")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to import wardrobe", slog.Any("error", err))

		return errors.Wrap(err, "failed to execute import transaction")
	}

	return nil
}

// ClearAll wipes items, outfits and measurements in one transaction.
func (srv *profileService) ClearAll(ctx context.Context) error {
	srv.log(ctx).Info("Clearing wardrobe data")

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewWardrobeRepository().ClearItems(ctx); err != nil {
			return errors.Wrap(err, "failed to clear items")
		}
		if err := repoFactory.NewOutfitRepository().ClearOutfits(ctx); err != nil {
			return errors.Wrap(err, "failed to clear outfits")
		}

		return errors.Wrap(repoFactory.NewMeasurementRepository().Clear(ctx), "failed to clear measurements")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to clear wardrobe data", slog.Any("error", err))

		return errors.Wrap(err, "failed to execute clear transaction")
	}

	return nil
}
