package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/presentwallah/engine/internal/models"
	appErr "github.com/presentwallah/engine/pkg/errors"
	"gorm.io/gorm"
)

type RevisionRepository interface {
	BaseRepository[models.Revision]
	// Record persists the revision row and the section content update as a
	// single transaction, keeping the audit trail gap-free.
	Record(ctx context.Context, rev *models.Revision, section *models.Section) error
	// ListBySection returns revisions in creation order, oldest first.
	ListBySection(ctx context.Context, sectionID uuid.UUID) ([]models.Revision, error)
}

type revisionRepository struct {
	BaseRepository[models.Revision]
	db *gorm.DB
}

func NewRevisionRepository(db *gorm.DB) RevisionRepository {
	return &revisionRepository{BaseRepository: NewBaseRepository[models.Revision](db), db: db}
}

func (r *revisionRepository) Record(ctx context.Context, rev *models.Revision, section *models.Section) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rev).Error; err != nil {
			return err
		}
		return tx.Save(section).Error
	})
	if err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "record revision failed")
	}
	return nil
}

func (r *revisionRepository) ListBySection(ctx context.Context, sectionID uuid.UUID) ([]models.Revision, error) {
	var out []models.Revision
	err := r.db.WithContext(ctx).
		Where("section_id = ?", sectionID).
		Order("created_at ASC").
		Find(&out).Error
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list revisions by section failed")
	}
	return out, nil
}
