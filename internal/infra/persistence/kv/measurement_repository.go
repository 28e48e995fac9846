package kv

import (
	"context"

	"mydrip/internal/domain/entity"
	"mydrip/internal/domain/repository"
	"mydrip/internal/errors"
)

type measurementRepository struct {
	store repository.KV
}

// NewMeasurementRepository creates a measurement repository over the storage port.
func NewMeasurementRepository(store repository.KVStore) repository.MeasurementRepository {
	return &measurementRepository{store: store}
}

func newMeasurementRepositoryWithKV(store repository.KV) repository.MeasurementRepository {
	return &measurementRepository{store: store}
}

// Find returns the saved measurements, or repository.ErrMeasurementsNotFound.
func (r *measurementRepository) Find(ctx context.Context) (*entity.Measurements, error) {
	m, err := getJSON[entity.Measurements](ctx, r.store, keyMeasurements)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return nil, repository.ErrMeasurementsNotFound
		}

		return nil, err
	}

	return m, nil
}

// Save stores the measurements, replacing any existing set.
func (r *measurementRepository) Save(ctx context.Context, m entity.Measurements) error {
	return setJSON(ctx, r.store, keyMeasurements, m)
}

// Clear removes the saved measurements.
func (r *measurementRepository) Clear(ctx context.Context) error {
	return errors.Wrap(r.store.Delete(ctx, keyMeasurements), "failed to clear measurements")
}
