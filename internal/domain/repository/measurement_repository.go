package repository

import (
	"context"

	"mydrip/internal/domain/entity"
	"mydrip/internal/errors"
)

// ErrMeasurementsNotFound is returned when no measurements have been saved.
var ErrMeasurementsNotFound = errors.New("measurements not found")

// MeasurementRepository persists the body measurements.
type MeasurementRepository interface {
	// Find returns the saved measurements, or ErrMeasurementsNotFound when
	// the user never saved any.
	Find(ctx context.Context) (*entity.Measurements, error)

	// Save stores the measurements, replacing any existing set.
	Save(ctx context.Context, m entity.Measurements) error

	// Clear removes the saved measurements.
	Clear(ctx context.Context) error
}
