package usecase

import (
	"context"

	"github.com/google/uuid"
)

// SweepUsecase reconciles ideas left behind by deleted accounts.
type SweepUsecase interface {
	// SweepOrphanedIdeas deletes the ideas of userID if that user no longer exists
	// and returns how many were removed.
	SweepOrphanedIdeas(ctx context.Context, userID uuid.UUID) (int64, error)
}
