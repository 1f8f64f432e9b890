package persistence

import (
	"io"
	"log/slog"
	"testing"

	"ideabank/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx/fxtest"
)

func newParams(t *testing.T, cfg *config.Config) Params {
	t.Helper()

	return Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNew_UnknownDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = "sqlite"

	_, err := New(newParams(t, cfg))
	assert.ErrorContains(t, err, "unknown storage driver: sqlite")
}

func TestNew_PostgresRequiresConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = config.StorageDriverPostgres

	_, err := New(newParams(t, cfg))
	assert.ErrorContains(t, err, "postgres config is required")
}

func TestNew_MongoRequiresURI(t *testing.T) {
	cfg := &config.Config{Mongo: &config.MongoConfig{}}
	cfg.Storage.Driver = config.StorageDriverMongo

	_, err := New(newParams(t, cfg))
	assert.ErrorContains(t, err, "mongo uri is required")
}

func TestNew_MongoBuildsRepositoriesWithoutDialing(t *testing.T) {
	cfg := &config.Config{Mongo: &config.MongoConfig{URI: "mongodb://localhost:27017", Database: "ideabank_test"}}
	cfg.Storage.Driver = config.StorageDriverMongo

	result, err := New(newParams(t, cfg))
	assert.NoError(t, err)
	assert.NotNil(t, result.UserRepo)
	assert.NotNil(t, result.IdeaRepo)
	assert.NotNil(t, result.TxManager)
}
