package mongo

import (
	"context"
	"testing"
	"time"

	"ideabank/internal/domain/entity"
	"ideabank/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newMockMT(t *testing.T) *mtest.T {
	t.Helper()

	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

// sentUpdate returns the update document of the first statement in the
// last update command.
func sentUpdate(mt *mtest.T) bson.Raw {
	mt.Helper()

	evt := mt.GetStartedEvent()
	require.NotNil(mt, evt)
	require.Equal(mt, "update", evt.CommandName)

	return evt.Command.Lookup("updates", "0", "u").Document()
}

func TestIdeaRepository_FindByOwner(t *testing.T) {
	mt := newMockMT(t)

	mt.Run("sorts newest first", func(mt *mtest.T) {
		repo := NewIdeaRepository(mt.DB)
		owner := uuid.New()
		newer := uuid.New()
		older := uuid.New()
		now := time.Now().UTC().Truncate(time.Millisecond)

		ns := mt.DB.Name() + "." + ideasCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: newer.String()},
				{Key: "user_id", Value: owner.String()},
				{Key: "name", Value: "Newer"},
				{Key: "realised", Value: false},
				{Key: "created_at", Value: now},
			},
			bson.D{
				{Key: "_id", Value: older.String()},
				{Key: "user_id", Value: owner.String()},
				{Key: "name", Value: "Older"},
				{Key: "points", Value: 3.0},
				{Key: "realised", Value: true},
				{Key: "created_at", Value: now.Add(-time.Hour)},
			},
		))

		ideas, err := repo.FindByOwner(context.Background(), owner)
		require.NoError(mt, err)
		require.Len(mt, ideas, 2)
		assert.Equal(mt, newer, ideas[0].ID)
		assert.Equal(mt, older, ideas[1].ID)
		require.NotNil(mt, ideas[1].Points)
		assert.Equal(mt, 3.0, *ideas[1].Points)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "find", evt.CommandName)
		assert.Equal(mt, owner.String(), evt.Command.Lookup("filter", "user_id").StringValue())

		var sort bson.D
		require.NoError(mt, bson.Unmarshal(evt.Command.Lookup("sort").Document(), &sort))
		require.Len(mt, sort, 2)
		assert.Equal(mt, "created_at", sort[0].Key)
		assert.EqualValues(mt, -1, sort[0].Value)
		assert.Equal(mt, "_id", sort[1].Key)
		assert.EqualValues(mt, -1, sort[1].Value)
	})
}

func TestIdeaRepository_Update(t *testing.T) {
	mt := newMockMT(t)

	mt.Run("writes zero values", func(mt *mtest.T) {
		repo := NewIdeaRepository(mt.DB)
		points := 0.0
		idea := &entity.Idea{ID: uuid.New(), UserID: uuid.New(), Name: "Solar kettle", Points: &points, Realised: false}

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		require.NoError(mt, repo.Update(context.Background(), idea))

		update := sentUpdate(mt)
		assert.False(mt, update.Lookup("$set", "realised").Boolean())
		assert.Equal(mt, 0.0, update.Lookup("$set", "points").Double())
		assert.Equal(mt, "Solar kettle", update.Lookup("$set", "name").StringValue())
		_, err := update.LookupErr("$unset")
		assert.Error(mt, err)
	})

	mt.Run("unsets missing points", func(mt *mtest.T) {
		repo := NewIdeaRepository(mt.DB)
		idea := &entity.Idea{ID: uuid.New(), UserID: uuid.New(), Name: "Rain barrel", Realised: true}

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		require.NoError(mt, repo.Update(context.Background(), idea))

		update := sentUpdate(mt)
		assert.True(mt, update.Lookup("$set", "realised").Boolean())
		_, err := update.LookupErr("$set", "points")
		assert.Error(mt, err)
		_, err = update.LookupErr("$unset", "points")
		assert.NoError(mt, err)
	})

	mt.Run("no match is not found", func(mt *mtest.T) {
		repo := NewIdeaRepository(mt.DB)

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		err := repo.Update(context.Background(), &entity.Idea{ID: uuid.New(), Name: "Gone"})
		assert.ErrorIs(mt, err, repository.ErrIdeaNotFound)
	})
}

func TestIdeaRepository_DeleteByOwner(t *testing.T) {
	mt := newMockMT(t)

	mt.Run("removes every owned idea", func(mt *mtest.T) {
		repo := NewIdeaRepository(mt.DB)
		owner := uuid.New()

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 3}))

		deleted, err := repo.DeleteByOwner(context.Background(), owner)
		require.NoError(mt, err)
		assert.Equal(mt, int64(3), deleted)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "delete", evt.CommandName)
		assert.Equal(mt, owner.String(), evt.Command.Lookup("deletes", "0", "q", "user_id").StringValue())
		assert.Equal(mt, int32(0), evt.Command.Lookup("deletes", "0", "limit").Int32())
	})

	mt.Run("reports store failure", func(mt *mtest.T) {
		repo := NewIdeaRepository(mt.DB)

		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Name: "BadValue", Message: "bad filter"}))

		_, err := repo.DeleteByOwner(context.Background(), uuid.New())
		assert.Error(mt, err)
	})
}
