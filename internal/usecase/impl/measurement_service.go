package impl

import (
	"context"
	"log/slog"

	deliverycontext "mydrip/internal/delivery/context"
	"mydrip/internal/domain/entity"
	domainerrors "mydrip/internal/domain/errors"
	"mydrip/internal/domain/repository"
	"mydrip/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// measurementService implements the MeasurementUsecase interface.
type measurementService struct {
	measurementRepo repository.MeasurementRepository
	logger          *slog.Logger
}

// MeasurementServiceParams holds dependencies for measurementService, injected by Fx.
type MeasurementServiceParams struct {
	fx.In

	MeasurementRepo repository.MeasurementRepository
	Logger          *slog.Logger
}

// NewMeasurementService is the constructor for measurementService.
func NewMeasurementService(params MeasurementServiceParams) usecase.MeasurementUsecase {
	return &measurementService{
		measurementRepo: params.MeasurementRepo,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *measurementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get returns the stored measurements, or the defaults when none were saved.
func (srv *measurementService) Get(ctx context.Context) (*entity.Measurements, error) {
	m, err := srv.measurementRepo.Find(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrMeasurementsNotFound) {
			defaults := entity.DefaultMeasurements()

			return &defaults, nil
		}

		return nil, errors.Wrap(err, "failed to load measurements")
	}

	return m, nil
}

// Update validates and commits the whole measurement set at once.
func (srv *measurementService) Update(ctx context.Context, m entity.Measurements) (*entity.Measurements, error) {
	if field := m.Validate(); field != "" {
		srv.log(ctx).Warn("Measurement out of range", slog.String("field", field))

		return nil, errors.Wrapf(domainerrors.ErrMeasurementOutOfRange, "measurement %s out of range", field)
	}

	if err := srv.measurementRepo.Save(ctx, m); err != nil {
		srv.log(ctx).Error("Failed to persist measurements", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to persist measurements")
	}

	return &m, nil
}

// ApplyPreset overwrites the measurements with a standard size, keeping the
// current shoe size.
func (srv *measurementService) ApplyPreset(ctx context.Context, preset string) (*entity.Measurements, error) {
	size, ok := entity.ParseSizePreset(preset)
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrUnknownSizePreset, "unknown size preset %q", preset)
	}

	current, err := srv.Get(ctx)
	if err != nil {
		return nil, err
	}

	applied := size.Apply(*current)
	if err := srv.measurementRepo.Save(ctx, applied); err != nil {
		srv.log(ctx).Error("Failed to persist preset measurements", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to persist preset measurements")
	}

	srv.log(ctx).Debug("Size preset applied", slog.String("preset", size.String()))

	return &applied, nil
}

// Figure derives the mannequin proportions from the current measurements.
func (srv *measurementService) Figure(ctx context.Context) (*entity.Figure, error) {
	m, err := srv.Get(ctx)
	if err != nil {
		return nil, err
	}

	figure := entity.FigureFrom(*m)

	return &figure, nil
}
