package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"ideabank/config"
	deliverycontext "ideabank/internal/delivery/context"
	"ideabank/internal/domain/entity"
	domainerrors "ideabank/internal/domain/errors"
	"ideabank/internal/domain/repository"
	"ideabank/internal/errors"
	"ideabank/internal/usecase"
	"ideabank/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const ideaNameMessage = "Please enter your idea name"

type ideaService struct {
	ideaRepo   repository.IdeaRepository
	validator  *validation.Validator
	updateMode string
	logger     *slog.Logger
}

// IdeaServiceParams holds dependencies for IdeaService, injected by Fx.
type IdeaServiceParams struct {
	fx.In

	IdeaRepo  repository.IdeaRepository
	Validator *validation.Validator
	Config    *config.Config
	Logger    *slog.Logger
}

// NewIdeaService creates a new idea service instance
func NewIdeaService(params IdeaServiceParams) usecase.IdeaUsecase {
	updateMode := config.UpdateModeTruthy
	if params.Config != nil && params.Config.Ideas != nil && params.Config.Ideas.UpdateMode != "" {
		updateMode = params.Config.Ideas.UpdateMode
	}

	return &ideaService{
		ideaRepo:   params.IdeaRepo,
		validator:  params.Validator,
		updateMode: updateMode,
		logger:     params.Logger,
	}
}

func (s *ideaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListIdeas returns the caller's ideas, newest first
func (s *ideaService) ListIdeas(ctx context.Context, userID uuid.UUID) ([]*entity.Idea, error) {
	ideas, err := s.ideaRepo.FindByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find ideas by owner")
	}

	if ideas == nil {
		ideas = []*entity.Idea{}
	}

	return ideas, nil
}

// CreateIdea stores a new idea owned by the caller
func (s *ideaService) CreateIdea(ctx context.Context, userID uuid.UUID, input *usecase.CreateIdeaInput) (*entity.Idea, error) {
	normalized := *input
	normalized.Name = strings.TrimSpace(input.Name)
	if err := s.validator.Struct(&normalized); err != nil {
		return nil, err
	}

	idea := &entity.Idea{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      normalized.Name,
		Points:    normalized.Points,
		CreatedAt: time.Now().UTC(),
	}
	if normalized.Description != nil {
		idea.Description = *normalized.Description
	}
	if normalized.Realised != nil {
		idea.Realised = *normalized.Realised
	}

	if err := s.ideaRepo.Create(ctx, idea); err != nil {
		return nil, errors.Wrap(err, "failed to create idea")
	}

	s.log(ctx).Debug("Idea created", slog.String("idea_id", idea.ID.String()))

	return idea, nil
}

// UpdateIdea applies a partial update to an idea the caller owns
func (s *ideaService) UpdateIdea(ctx context.Context, userID, ideaID uuid.UUID, input *usecase.UpdateIdeaInput) (*entity.Idea, error) {
	if s.updateMode == config.UpdateModePresent && input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails([]validation.FieldError{
			{Param: "name", Msg: ideaNameMessage, Location: validation.LocationBody},
		})
	}

	idea, err := s.findOwnedIdea(ctx, userID, ideaID)
	if err != nil {
		return nil, err
	}

	if s.updateMode == config.UpdateModePresent {
		applyPresentUpdates(idea, input)
	} else {
		applyTruthyUpdates(idea, input)
	}

	if err := s.ideaRepo.Update(ctx, idea); err != nil {
		if errors.Is(err, repository.ErrIdeaNotFound) {
			return nil, domainerrors.ErrIdeaNotFound
		}

		return nil, errors.Wrap(err, "failed to update idea")
	}

	return idea, nil
}

// DeleteIdea removes an idea the caller owns
func (s *ideaService) DeleteIdea(ctx context.Context, userID, ideaID uuid.UUID) error {
	if _, err := s.findOwnedIdea(ctx, userID, ideaID); err != nil {
		return err
	}

	if err := s.ideaRepo.Delete(ctx, ideaID); err != nil {
		if errors.Is(err, repository.ErrIdeaNotFound) {
			return domainerrors.ErrIdeaNotFound
		}

		return errors.Wrap(err, "failed to delete idea")
	}

	s.log(ctx).Debug("Idea deleted", slog.String("idea_id", ideaID.String()))

	return nil
}

// findOwnedIdea loads an idea and checks the caller owns it
func (s *ideaService) findOwnedIdea(ctx context.Context, userID, ideaID uuid.UUID) (*entity.Idea, error) {
	idea, err := s.ideaRepo.FindByID(ctx, ideaID)
	if err != nil {
		if errors.Is(err, repository.ErrIdeaNotFound) {
			return nil, domainerrors.ErrIdeaNotFound
		}

		return nil, errors.Wrap(err, "failed to find idea by ID")
	}

	if !entity.IsOwner(idea, userID) {
		s.log(ctx).Warn("Idea ownership check failed",
			slog.String("idea_id", ideaID.String()),
			slog.String("user_id", userID.String()),
		)

		return nil, domainerrors.ErrIdeaForbidden
	}

	return idea, nil
}

// applyTruthyUpdates only overwrites fields whose new value is truthy,
// so realised=false, points=0 and empty strings are ignored. Any other
// string, whitespace included, is stored as sent.
func applyTruthyUpdates(idea *entity.Idea, input *usecase.UpdateIdeaInput) {
	if input.Name != nil && *input.Name != "" {
		idea.Name = *input.Name
	}
	if input.Description != nil && *input.Description != "" {
		idea.Description = *input.Description
	}
	if input.Points != nil && *input.Points != 0 {
		points := *input.Points
		idea.Points = &points
	}
	if input.Realised != nil && *input.Realised {
		idea.Realised = true
	}
}

// applyPresentUpdates overwrites every field present in the payload.
func applyPresentUpdates(idea *entity.Idea, input *usecase.UpdateIdeaInput) {
	if input.Name != nil {
		idea.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		idea.Description = *input.Description
	}
	if input.Points != nil {
		points := *input.Points
		idea.Points = &points
	}
	if input.Realised != nil {
		idea.Realised = *input.Realised
	}
}
