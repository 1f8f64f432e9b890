package repository

import (
	"context"
	"errors"

	"ideabank/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrIdeaNotFound is returned when an idea is not found.
var ErrIdeaNotFound = errors.New("idea not found")

// IdeaRepository defines persistence operations for ideas.
type IdeaRepository interface {
	// Create persists a new idea.
	Create(ctx context.Context, idea *entity.Idea) error

	// FindByID retrieves a single idea.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Idea, error)

	// FindByOwner lists the owner's ideas, newest first.
	FindByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Idea, error)

	// Update overwrites the mutable fields of an existing idea.
	Update(ctx context.Context, idea *entity.Idea) error

	// Delete removes one idea. Returns ErrIdeaNotFound when nothing was removed.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByOwner removes every idea of the owner and returns how many were removed.
	DeleteByOwner(ctx context.Context, userID uuid.UUID) (int64, error)
}
