package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/presentwallah/engine/internal/models"
	appErr "github.com/presentwallah/engine/pkg/errors"
	"gorm.io/gorm"
)

// ProjectRepository filters every lookup on the owning user, so a project
// belonging to someone else is indistinguishable from a missing one.
type ProjectRepository interface {
	BaseRepository[models.Project]
	GetForUser(ctx context.Context, projectID, userID uuid.UUID, dest *models.Project) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Project, error)
}

type projectRepository struct {
	BaseRepository[models.Project]
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{BaseRepository: NewBaseRepository[models.Project](db), db: db}
}

func (r *projectRepository) GetForUser(ctx context.Context, projectID, userID uuid.UUID, dest *models.Project) error {
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", projectID, userID).
		First(dest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErr.New(appErr.CodeNotFound, "project not found")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "get project failed")
	}
	return nil
}

func (r *projectRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Project, error) {
	var out []models.Project
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list projects by user failed")
	}
	return out, nil
}
