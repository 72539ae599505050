package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/presentwallah/engine/internal/models"
	appErr "github.com/presentwallah/engine/pkg/errors"
	"gorm.io/gorm"
)

type SectionRepository interface {
	BaseRepository[models.Section]
	// GetForUser resolves a section through its project so ownership is
	// checked in the same query.
	GetForUser(ctx context.Context, sectionID, userID uuid.UUID, dest *models.Section) error
	// ListByProject returns sections in ascending order-index order.
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]models.Section, error)
}

type sectionRepository struct {
	BaseRepository[models.Section]
	db *gorm.DB
}

func NewSectionRepository(db *gorm.DB) SectionRepository {
	return &sectionRepository{BaseRepository: NewBaseRepository[models.Section](db), db: db}
}

func (r *sectionRepository) GetForUser(ctx context.Context, sectionID, userID uuid.UUID, dest *models.Section) error {
	err := r.db.WithContext(ctx).
		Joins("JOIN projects ON projects.id = sections.project_id").
		Where("sections.id = ? AND projects.user_id = ?", sectionID, userID).
		First(dest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErr.New(appErr.CodeNotFound, "section not found")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "get section failed")
	}
	return nil
}

func (r *sectionRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]models.Section, error) {
	var out []models.Section
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("order_index ASC").
		Find(&out).Error
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list sections by project failed")
	}
	return out, nil
}
