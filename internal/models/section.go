package models

import (
	"time"

	"github.com/google/uuid"
)

// Section is one titled, ordered content unit within a project: a document
// section or a single slide. Content may be empty until generated. Liked is
// tri-state feedback: nil (unset), true, or false.
type Section struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProjectID  uuid.UUID `gorm:"type:uuid;index;not null" json:"project_id"`
	Title      string    `gorm:"not null" json:"title" validate:"required"`
	Content    string    `gorm:"type:text;not null;default:''" json:"content"`
	OrderIndex int       `gorm:"column:order_index;not null;index" json:"order_index"`
	Liked      *bool     `json:"liked"`
	Comment    string    `gorm:"type:text;not null;default:''" json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Revisions []Revision `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
