package impl

import (
	"context"
	"errors"
	"testing"

	"ideabank/internal/domain/entity"
	"ideabank/internal/domain/repository"
	mockRepo "ideabank/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSweepService_DeletesOrphans(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	ideaRepo := mockRepo.NewMockIdeaRepository(t)
	svc := NewSweepService(SweepServiceParams{UserRepo: userRepo, IdeaRepo: ideaRepo, Logger: newDiscardLogger()})

	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	ideaRepo.EXPECT().DeleteByOwner(ctx, userID).Return(int64(2), nil)

	deleted, err := svc.SweepOrphanedIdeas(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
}

func TestSweepService_LiveUserUntouched(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	ideaRepo := mockRepo.NewMockIdeaRepository(t)
	svc := NewSweepService(SweepServiceParams{UserRepo: userRepo, IdeaRepo: ideaRepo, Logger: newDiscardLogger()})

	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)

	deleted, err := svc.SweepOrphanedIdeas(ctx, userID)
	assert.NoError(t, err)
	assert.Zero(t, deleted)
	ideaRepo.AssertNotCalled(t, "DeleteByOwner", mock.Anything, mock.Anything)
}

func TestSweepService_LookupFailure(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	ideaRepo := mockRepo.NewMockIdeaRepository(t)
	svc := NewSweepService(SweepServiceParams{UserRepo: userRepo, IdeaRepo: ideaRepo, Logger: newDiscardLogger()})

	ctx := context.Background()
	userID := uuid.New()
	lookupErr := errors.New("db down")

	userRepo.EXPECT().FindByID(ctx, userID).Return(nil, lookupErr)

	_, err := svc.SweepOrphanedIdeas(ctx, userID)
	assert.ErrorIs(t, err, lookupErr)
}
