// Package mongo contains the MongoDB implementation of the persistence layer.
package mongo

import (
	"context"
	"log/slog"
	"time"

	"ideabank/config"
	"ideabank/internal/domain/lifecycle"
	"ideabank/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

const (
	usersCollection = "users"
	ideasCollection = "ideas"

	defaultDatabase = "ideabank"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB database handle. The driver connects lazily, so the
// ping and index creation happen on start.
func New(params Params) (*mongo.Database, error) {
	cfg := params.Config.Mongo
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo uri is required when storage driver is mongo")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = lifecycle.DefaultTimeout
	}

	clientOpts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(context.Background(), clientOpts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	dbName := cfg.Database
	if dbName == "" {
		dbName = defaultDatabase
	}
	db := client.Database(dbName)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, timeout)
			defer cancel()

			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := ensureIndexes(ctx, db); err != nil {
				return err
			}

			params.Logger.Info("MongoDB connected", slog.String("database", dbName))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return client.Disconnect(ctx)
		},
	})

	return db, nil
}

// ensureIndexes creates the unique email index and the owner listing index.
// CreateOne is idempotent for identical index definitions.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("idx_users_email").SetUnique(true),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create users email index")
	}

	_, err = db.Collection(ideasCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
		Options: options.Index().SetName("idx_ideas_user_id_created_at"),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create ideas owner index")
	}

	return nil
}

// toUTC strips the monotonic reading and location BSON cannot keep.
func toUTC(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}
