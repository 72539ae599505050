package models

import (
	"time"

	"github.com/google/uuid"
)

// Document types a project can render to.
const (
	DocumentTypeDocx = "docx"
	DocumentTypePptx = "pptx"
)

// Project represents a document or slide-deck project owned by a user.
// Sections are rendered in ascending OrderIndex order regardless of
// creation order.
type Project struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id" validate:"required"`
	Title        string    `gorm:"not null" json:"title" validate:"required"`
	DocumentType string    `gorm:"type:varchar(8);not null" json:"document_type" validate:"required,oneof=docx pptx"`
	MainTopic    string    `gorm:"type:text;not null" json:"main_topic" validate:"required"`
	Template     string    `gorm:"type:varchar(32);not null;default:modern" json:"template"`
	FontSize     int       `gorm:"not null;default:20" json:"font_size"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Sections []Section `gorm:"constraint:OnDelete:CASCADE" json:"sections,omitempty"`
}

// Filename returns the export filename derived from the project title.
func (p *Project) Filename() string {
	return p.Title + "." + p.DocumentType
}

// ContentType returns the MIME type for the rendered export.
func (p *Project) ContentType() string {
	if p.DocumentType == DocumentTypePptx {
		return "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	}
	return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
}
