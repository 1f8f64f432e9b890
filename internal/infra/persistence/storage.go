// Package persistence selects the storage backend configured for the service.
package persistence

import (
	"log/slog"

	"ideabank/config"
	"ideabank/internal/domain/repository"
	"ideabank/internal/errors"
	"ideabank/internal/infra/persistence/mongo"
	"ideabank/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Result exposes the repositories of the selected backend to Fx.
type Result struct {
	fx.Out

	UserRepo  repository.UserRepository
	IdeaRepo  repository.IdeaRepository
	TxManager repository.TransactionManager
}

// New opens the backend named by storage.driver and builds its repositories.
func New(params Params) (Result, error) {
	driver := params.Config.Storage.Driver
	if driver == "" {
		driver = config.StorageDriverPostgres
	}

	params.Logger.Info("Using storage backend", slog.String("driver", driver))

	switch driver {
	case config.StorageDriverPostgres:
		if params.Config.Postgres == nil {
			return Result{}, errors.New("postgres config is required when storage driver is postgres")
		}

		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Result{}, err
		}

		return Result{
			UserRepo:  postgres.NewUserRepository(db),
			IdeaRepo:  postgres.NewIdeaRepository(db),
			TxManager: postgres.NewTransactionManager(db),
		}, nil

	case config.StorageDriverMongo:
		db, err := mongo.New(mongo.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Result{}, err
		}

		return Result{
			UserRepo:  mongo.NewUserRepository(db),
			IdeaRepo:  mongo.NewIdeaRepository(db),
			TxManager: mongo.NewTransactionManager(db),
		}, nil

	default:
		return Result{}, errors.Errorf("unknown storage driver: %s", driver)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
