package repository

import "context"

// RepositoryFactory creates repositories bound to a single transaction.
type RepositoryFactory interface {
	NewFreightRepository() FreightRepository
	NewTripRepository() TripRepository
	NewMatchRequestRepository() MatchRequestRepository
}

// TransactionManager executes a function within a database transaction.
// The function receives a factory for transaction-bound repositories;
// returning an error rolls the transaction back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
