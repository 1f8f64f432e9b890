package mongo

import (
	"context"

	"ideabank/internal/domain/entity"
	"ideabank/internal/domain/repository"
	"ideabank/internal/errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository is the constructor for the MongoDB user repository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{coll: db.Collection(usersCollection)}
}

func (repo *userRepository) findOne(ctx context.Context, filter bson.D) (*entity.User, error) {
	var doc userDocument
	if err := repo.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, err
	}

	user, err := doc.toDomain()
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode user document")
	}

	return user, nil
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := repo.findOne(ctx, bson.D{{Key: "_id", Value: id.String()}})
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, err
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := repo.findOne(ctx, bson.D{{Key: "email", Value: email}})
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return user, err
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if _, err := repo.coll.InsertOne(ctx, fromUserDomain(user)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrUserEmailTaken
		}

		return errors.Wrap(err, "failed to create user")
	}

	return nil
}

func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id.String()}})
	if err != nil {
		return errors.Wrap(err, "failed to delete user")
	}
	if result.DeletedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}
