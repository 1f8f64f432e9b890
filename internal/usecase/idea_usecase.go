package usecase

import (
	"context"

	"ideabank/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateIdeaInput is the payload for creating an idea.
type CreateIdeaInput struct {
	Name        string   `json:"name" validate:"required" msg:"Please enter your idea name"`
	Description *string  `json:"description,omitempty"`
	Points      *float64 `json:"points,omitempty"`
	Realised    *bool    `json:"realised,omitempty"`
}

// UpdateIdeaInput is a partial update. Nil fields were absent from the payload.
type UpdateIdeaInput struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Points      *float64 `json:"points,omitempty"`
	Realised    *bool    `json:"realised,omitempty"`
}

// IdeaUsecase defines ownership-scoped idea management.
type IdeaUsecase interface {
	ListIdeas(ctx context.Context, userID uuid.UUID) ([]*entity.Idea, error)
	CreateIdea(ctx context.Context, userID uuid.UUID, input *CreateIdeaInput) (*entity.Idea, error)
	UpdateIdea(ctx context.Context, userID, ideaID uuid.UUID, input *UpdateIdeaInput) (*entity.Idea, error)
	DeleteIdea(ctx context.Context, userID, ideaID uuid.UUID) error
}
