package models

import (
	"time"

	"github.com/google/uuid"
)

// Revision is an immutable audit record of one content refinement event.
// PreviousContent must equal the section content immediately before the
// refinement that produced this row. Rows are append-only and form a linear
// history per section when ordered by CreatedAt.
type Revision struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SectionID       uuid.UUID `gorm:"type:uuid;index;not null" json:"section_id"`
	Prompt          string    `gorm:"type:text;not null" json:"prompt"`
	PreviousContent string    `gorm:"type:text;not null" json:"previous_content"`
	NewContent      string    `gorm:"type:text;not null" json:"new_content"`
	CreatedAt       time.Time `json:"created_at"`
}
