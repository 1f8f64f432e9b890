package postgres

import (
	"context"

	"ideabank/internal/domain/entity"
	"ideabank/internal/domain/repository"
	"ideabank/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type ideaRepository struct {
	db *gorm.DB
}

// NewIdeaRepository is the constructor for ideaRepository.
func NewIdeaRepository(db *gorm.DB) repository.IdeaRepository {
	return &ideaRepository{db: db}
}

func (repo *ideaRepository) Create(ctx context.Context, idea *entity.Idea) error {
	if err := repo.db.WithContext(ctx).Create(model.FromIdeaDomain(idea)).Error; err != nil {
		return errors.Wrap(err, "failed to create idea")
	}

	return nil
}

func (repo *ideaRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Idea, error) {
	var ideaM model.IdeaModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&ideaM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdeaNotFound
		}

		return nil, errors.Wrap(err, "failed to find idea by id")
	}

	return ideaM.ToDomain(), nil
}

// FindByOwner lists the owner's ideas, newest first. Ties on created_at
// fall back to id so the order is stable.
func (repo *ideaRepository) FindByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Idea, error) {
	var ideaMs []model.IdeaModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&ideaMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find ideas by owner")
	}

	ideas := make([]*entity.Idea, 0, len(ideaMs))
	for i := range ideaMs {
		ideas = append(ideas, ideaMs[i].ToDomain())
	}

	return ideas, nil
}

// Update overwrites the mutable columns. Selecting them explicitly makes GORM
// write zero values such as realised=false and points=0.
func (repo *ideaRepository) Update(ctx context.Context, idea *entity.Idea) error {
	ideaM := model.FromIdeaDomain(idea)
	result := repo.db.WithContext(ctx).
		Model(&model.IdeaModel{}).
		Where("id = ?", idea.ID).
		Select("name", "description", "points", "realised").
		Updates(ideaM)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update idea")
	}
	if result.RowsAffected == 0 {
		return repository.ErrIdeaNotFound
	}

	return nil
}

func (repo *ideaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.IdeaModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete idea")
	}
	if result.RowsAffected == 0 {
		return repository.ErrIdeaNotFound
	}

	return nil
}

func (repo *ideaRepository) DeleteByOwner(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.IdeaModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete ideas by owner")
	}

	return result.RowsAffected, nil
}
