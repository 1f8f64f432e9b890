package postgres

import (
	"context"
	"testing"

	"ideabank/internal/domain/entity"
	"ideabank/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newDryRunDB builds statements without a server and records each one with
// its bound values inlined.
func newDryRunDB(t *testing.T) (*gorm.DB, *[]string) {
	t.Helper()

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DSN: "host=localhost user=ideabank dbname=ideabank sslmode=disable",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	var statements []string
	capture := func(tx *gorm.DB) {
		statements = append(statements, tx.Dialector.Explain(tx.Statement.SQL.String(), tx.Statement.Vars...))
	}
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:capture_query", capture))
	require.NoError(t, db.Callback().Update().After("gorm:update").Register("test:capture_update", capture))
	require.NoError(t, db.Callback().Delete().After("gorm:delete").Register("test:capture_delete", capture))

	return db, &statements
}

func TestIdeaRepository_FindByOwnerOrdersNewestFirst(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewIdeaRepository(db)
	owner := uuid.New()

	ideas, err := repo.FindByOwner(context.Background(), owner)
	require.NoError(t, err)
	assert.Empty(t, ideas)

	require.Len(t, *statements, 1)
	sql := (*statements)[0]
	assert.Contains(t, sql, `FROM "ideas"`)
	assert.Contains(t, sql, "user_id = '"+owner.String()+"'")
	assert.Regexp(t, `ORDER BY created_at DESC,\s*id DESC`, sql)
}

func TestIdeaRepository_UpdateWritesZeroValues(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewIdeaRepository(db)
	points := 0.0
	idea := &entity.Idea{ID: uuid.New(), UserID: uuid.New(), Name: "Solar kettle", Points: &points, Realised: false}

	// A dry run matches no rows.
	err := repo.Update(context.Background(), idea)
	assert.ErrorIs(t, err, repository.ErrIdeaNotFound)

	require.Len(t, *statements, 1)
	sql := (*statements)[0]
	assert.Contains(t, sql, `UPDATE "ideas" SET`)
	assert.Contains(t, sql, `"name"='Solar kettle'`)
	assert.Contains(t, sql, `"description"=''`)
	assert.Contains(t, sql, `"points"=0`)
	assert.Contains(t, sql, `"realised"=false`)
	assert.Contains(t, sql, "id = '"+idea.ID.String()+"'")
	assert.NotContains(t, sql, `"user_id"=`)
	assert.NotContains(t, sql, `"created_at"=`)
}

func TestIdeaRepository_UpdateClearsPoints(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewIdeaRepository(db)
	idea := &entity.Idea{ID: uuid.New(), UserID: uuid.New(), Name: "Rain barrel", Realised: true}

	_ = repo.Update(context.Background(), idea)

	require.Len(t, *statements, 1)
	assert.Contains(t, (*statements)[0], `"points"=NULL`)
	assert.Contains(t, (*statements)[0], `"realised"=true`)
}

func TestIdeaRepository_DeleteByOwner(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewIdeaRepository(db)
	owner := uuid.New()

	deleted, err := repo.DeleteByOwner(context.Background(), owner)
	require.NoError(t, err)
	assert.Zero(t, deleted)

	require.Len(t, *statements, 1)
	sql := (*statements)[0]
	assert.Contains(t, sql, `DELETE FROM "ideas"`)
	assert.Contains(t, sql, "user_id = '"+owner.String()+"'")
}

func TestIdeaRepository_DeleteScopesToID(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewIdeaRepository(db)
	ideaID := uuid.New()

	err := repo.Delete(context.Background(), ideaID)
	assert.ErrorIs(t, err, repository.ErrIdeaNotFound)

	require.Len(t, *statements, 1)
	assert.Contains(t, (*statements)[0], "id = '"+ideaID.String()+"'")
}
