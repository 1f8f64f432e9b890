package model

import (
	"testing"
	"time"

	"ideabank/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIdeaMapper_CopiesPoints(t *testing.T) {
	points := 3.5
	idea := &entity.Idea{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Name:        "Bike shelter",
		Description: "covered",
		Points:      &points,
		Realised:    true,
		CreatedAt:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	m := FromIdeaDomain(idea)
	points = 9

	assert.Equal(t, 3.5, *m.Points)
	assert.Equal(t, idea.ID, m.ID)
	assert.Equal(t, idea.UserID, m.UserID)

	back := m.ToDomain()
	assert.Equal(t, 3.5, *back.Points)
	assert.Equal(t, "covered", back.Description)
	assert.True(t, back.Realised)
}

func TestIdeaMapper_NilPoints(t *testing.T) {
	m := FromIdeaDomain(&entity.Idea{ID: uuid.New(), Name: "x"})
	assert.Nil(t, m.Points)
	assert.Nil(t, m.ToDomain().Points)
}

func TestUserMapper_NormalizesTimeToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*60*60)
	m := &UserModel{ID: uuid.New(), Email: "a@b.co", CreatedAt: time.Date(2024, 5, 1, 20, 0, 0, 0, loc)}

	user := m.ToDomain()
	assert.Equal(t, time.UTC, user.CreatedAt.Location())
	assert.Equal(t, 12, user.CreatedAt.Hour())
}
