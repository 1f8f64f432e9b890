package mongo

import (
	"context"

	"ideabank/internal/domain/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

// sequentialTransactionManager runs a unit of work directly against the
// database. Standalone MongoDB deployments have no multi-document
// transactions, so a failure part way leaves earlier writes in place; the
// orphan sweeper reconciles what an account deletion left behind.
type sequentialTransactionManager struct {
	factory *repositoryFactory
}

type repositoryFactory struct {
	users repository.UserRepository
	ideas repository.IdeaRepository
}

func (f *repositoryFactory) UserRepo() repository.UserRepository {
	return f.users
}

func (f *repositoryFactory) IdeaRepo() repository.IdeaRepository {
	return f.ideas
}

// NewTransactionManager is the constructor for the MongoDB transaction manager.
func NewTransactionManager(db *mongo.Database) repository.TransactionManager {
	return &sequentialTransactionManager{
		factory: &repositoryFactory{
			users: NewUserRepository(db),
			ideas: NewIdeaRepository(db),
		},
	}
}

func (tm *sequentialTransactionManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(tm.factory)
}
