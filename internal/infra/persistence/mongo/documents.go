package mongo

import (
	"time"

	"ideabank/internal/domain/entity"

	"github.com/google/uuid"
)

// userDocument is the 'users' collection shape. IDs are stored as their
// canonical UUID strings.
type userDocument struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	CreatedAt    time.Time `bson:"created_at"`
}

type ideaDocument struct {
	ID          string    `bson:"_id"`
	UserID      string    `bson:"user_id"`
	Name        string    `bson:"name"`
	Description string    `bson:"description,omitempty"`
	Points      *float64  `bson:"points,omitempty"`
	Realised    bool      `bson:"realised"`
	CreatedAt   time.Time `bson:"created_at"`
}

func fromUserDomain(user *entity.User) *userDocument {
	return &userDocument{
		ID:           user.ID.String(),
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    toUTC(user.CreatedAt),
	}
}

func (d *userDocument) toDomain() (*entity.User, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}

	return &entity.User{
		ID:           id,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt.UTC(),
	}, nil
}

func fromIdeaDomain(idea *entity.Idea) *ideaDocument {
	doc := &ideaDocument{
		ID:          idea.ID.String(),
		UserID:      idea.UserID.String(),
		Name:        idea.Name,
		Description: idea.Description,
		Realised:    idea.Realised,
		CreatedAt:   toUTC(idea.CreatedAt),
	}
	if idea.Points != nil {
		points := *idea.Points
		doc.Points = &points
	}

	return doc
}

func (d *ideaDocument) toDomain() (*entity.Idea, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	userID, err := uuid.Parse(d.UserID)
	if err != nil {
		return nil, err
	}

	idea := &entity.Idea{
		ID:          id,
		UserID:      userID,
		Name:        d.Name,
		Description: d.Description,
		Realised:    d.Realised,
		CreatedAt:   d.CreatedAt.UTC(),
	}
	if d.Points != nil {
		points := *d.Points
		idea.Points = &points
	}

	return idea, nil
}
