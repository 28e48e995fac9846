package repository

import "context"

// TransactionManager defines the interface for managing storage transactions.
// This allows the use case layer to handle transactions without depending on
// a specific storage backend.
type TransactionManager interface {
	// Execute runs a function within a storage transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise, it's committed. All repository operations within the
	// function use the same transactional view.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction.
type RepositoryFactory interface {
	// NewSessionRepository returns a SessionRepository bound to the current transaction.
	NewSessionRepository() SessionRepository

	// NewWardrobeRepository returns a WardrobeRepository bound to the current transaction.
	NewWardrobeRepository() WardrobeRepository

	// NewOutfitRepository returns an OutfitRepository bound to the current transaction.
	NewOutfitRepository() OutfitRepository

	// NewMeasurementRepository returns a MeasurementRepository bound to the current transaction.
	NewMeasurementRepository() MeasurementRepository
}
