package usecase

import (
	"context"

	"mydrip/internal/domain/entity"
)

// MeasurementUsecase defines the interface for body measurement operations.
// Updates commit the whole measurement set at once; partial edits are a
// client concern.
type MeasurementUsecase interface {
	Get(ctx context.Context) (*entity.Measurements, error)
	Update(ctx context.Context, m entity.Measurements) (*entity.Measurements, error)
	ApplyPreset(ctx context.Context, preset string) (*entity.Measurements, error)

	// Figure derives the mannequin proportions from the current measurements.
	Figure(ctx context.Context) (*entity.Figure, error)
}
