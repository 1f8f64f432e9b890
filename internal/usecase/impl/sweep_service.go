package impl

import (
	"context"
	"log/slog"

	deliverycontext "ideabank/internal/delivery/context"
	"ideabank/internal/domain/repository"
	"ideabank/internal/errors"
	"ideabank/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type sweepService struct {
	userRepo repository.UserRepository
	ideaRepo repository.IdeaRepository
	logger   *slog.Logger
}

// SweepServiceParams holds dependencies for SweepService, injected by Fx.
type SweepServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	IdeaRepo repository.IdeaRepository
	Logger   *slog.Logger
}

// NewSweepService creates the orphaned-idea reconciler
func NewSweepService(params SweepServiceParams) usecase.SweepUsecase {
	return &sweepService{
		userRepo: params.UserRepo,
		ideaRepo: params.IdeaRepo,
		logger:   params.Logger,
	}
}

// SweepOrphanedIdeas deletes the ideas of a user that no longer exists.
// A live user is left untouched.
func (s *sweepService) SweepOrphanedIdeas(ctx context.Context, userID uuid.UUID) (int64, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	_, err := s.userRepo.FindByID(ctx, userID)
	if err == nil {
		logger.Info("User still exists, nothing to sweep", slog.String("user_id", userID.String()))

		return 0, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return 0, errors.Wrap(err, "failed to find user by id")
	}

	deleted, err := s.ideaRepo.DeleteByOwner(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete orphaned ideas")
	}

	logger.Info("Swept orphaned ideas",
		slog.String("user_id", userID.String()),
		slog.Int64("deleted_ideas", deleted),
	)

	return deleted, nil
}
