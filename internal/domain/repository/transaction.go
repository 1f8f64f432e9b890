package repository

import "context"

// TransactionManager runs a unit of work against the store.
// Backends with multi-statement transactions make the unit atomic;
// the others run it sequentially against the same database.
type TransactionManager interface {
	// Execute runs fn. If fn returns an error the unit is rolled back where supported.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory vends repositories bound to the current unit of work.
type RepositoryFactory interface {
	UserRepo() UserRepository
	IdeaRepo() IdeaRepository
}
