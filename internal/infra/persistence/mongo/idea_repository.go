package mongo

import (
	"context"

	"ideabank/internal/domain/entity"
	"ideabank/internal/domain/repository"
	"ideabank/internal/errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ideaRepository struct {
	coll *mongo.Collection
}

// NewIdeaRepository is the constructor for the MongoDB idea repository.
func NewIdeaRepository(db *mongo.Database) repository.IdeaRepository {
	return &ideaRepository{coll: db.Collection(ideasCollection)}
}

func (repo *ideaRepository) Create(ctx context.Context, idea *entity.Idea) error {
	if _, err := repo.coll.InsertOne(ctx, fromIdeaDomain(idea)); err != nil {
		return errors.Wrap(err, "failed to create idea")
	}

	return nil
}

func (repo *ideaRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Idea, error) {
	var doc ideaDocument
	if err := repo.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id.String()}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrIdeaNotFound
		}

		return nil, errors.Wrap(err, "failed to find idea by id")
	}

	idea, err := doc.toDomain()
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode idea document")
	}

	return idea, nil
}

// FindByOwner lists the owner's ideas, newest first.
func (repo *ideaRepository) FindByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Idea, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := repo.coll.Find(ctx, bson.D{{Key: "user_id", Value: userID.String()}}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find ideas by owner")
	}

	var docs []ideaDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to read ideas cursor")
	}

	ideas := make([]*entity.Idea, 0, len(docs))
	for i := range docs {
		idea, err := docs[i].toDomain()
		if err != nil {
			return nil, errors.Wrap(err, "failed to decode idea document")
		}
		ideas = append(ideas, idea)
	}

	return ideas, nil
}

func (repo *ideaRepository) Update(ctx context.Context, idea *entity.Idea) error {
	set := bson.D{
		{Key: "name", Value: idea.Name},
		{Key: "description", Value: idea.Description},
		{Key: "realised", Value: idea.Realised},
	}
	var update bson.D
	if idea.Points != nil {
		set = append(set, bson.E{Key: "points", Value: *idea.Points})
		update = bson.D{{Key: "$set", Value: set}}
	} else {
		update = bson.D{
			{Key: "$set", Value: set},
			{Key: "$unset", Value: bson.D{{Key: "points", Value: ""}}},
		}
	}

	result, err := repo.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: idea.ID.String()}}, update)
	if err != nil {
		return errors.Wrap(err, "failed to update idea")
	}
	if result.MatchedCount == 0 {
		return repository.ErrIdeaNotFound
	}

	return nil
}

func (repo *ideaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id.String()}})
	if err != nil {
		return errors.Wrap(err, "failed to delete idea")
	}
	if result.DeletedCount == 0 {
		return repository.ErrIdeaNotFound
	}

	return nil
}

func (repo *ideaRepository) DeleteByOwner(ctx context.Context, userID uuid.UUID) (int64, error) {
	result, err := repo.coll.DeleteMany(ctx, bson.D{{Key: "user_id", Value: userID.String()}})
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete ideas by owner")
	}

	return result.DeletedCount, nil
}
