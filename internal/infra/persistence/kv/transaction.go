package kv

import (
	"context"

	"mydrip/internal/domain/repository"
	"mydrip/internal/errors"
)

// transactionManager implements the domain's TransactionManager interface
// over the storage port's Execute primitive.
type transactionManager struct {
	store repository.KVStore
}

// repositoryFactory hands out repositories bound to one transactional view.
type repositoryFactory struct {
	tx repository.KV
}

// NewTransactionManager is the constructor for transactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(store repository.KVStore) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute runs the given function within a single storage transaction.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	err := tm.store.Execute(ctx, func(tx repository.KV) error {
		return fn(&repositoryFactory{tx: tx})
	})
	if err != nil {
		// Wrapping keeps the business error visible to errors.Is while
		// flagging the transaction boundary.
		return errors.Wrap(err, "storage transaction failed")
	}

	return nil
}

// NewSessionRepository returns a SessionRepository bound to the current transaction.
func (f *repositoryFactory) NewSessionRepository() repository.SessionRepository {
	return newSessionRepositoryWithKV(f.tx)
}

// NewWardrobeRepository returns a WardrobeRepository bound to the current transaction.
func (f *repositoryFactory) NewWardrobeRepository() repository.WardrobeRepository {
	return newWardrobeRepositoryWithKV(f.tx)
}

// NewOutfitRepository returns an OutfitRepository bound to the current transaction.
func (f *repositoryFactory) NewOutfitRepository() repository.OutfitRepository {
	return newOutfitRepositoryWithKV(f.tx)
}

// NewMeasurementRepository returns a MeasurementRepository bound to the current transaction.
func (f *repositoryFactory) NewMeasurementRepository() repository.MeasurementRepository {
	return newMeasurementRepositoryWithKV(f.tx)
}
