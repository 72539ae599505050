package types

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ProjectCreateRequest struct {
	Title        string                 `json:"title" validate:"required,max=255"`
	DocumentType string                 `json:"document_type" validate:"required,oneof=docx pptx"`
	MainTopic    string                 `json:"main_topic" validate:"required"`
	Template     string                 `json:"template"`
	FontSize     int                    `json:"font_size" validate:"omitempty,gte=8,lte=60"`
	Sections     []SectionCreateRequest `json:"sections" validate:"dive"`
}

// SectionCreateRequest carries one initial section. Order is optional; when
// omitted the section's position in the array is used.
type SectionCreateRequest struct {
	Title string `json:"title" validate:"required,max=255"`
	Order *int   `json:"order" validate:"omitempty,gte=0"`
}

type ProjectUpdateRequest struct {
	Template *string `json:"template"`
	FontSize *int    `json:"font_size" validate:"omitempty,gte=8,lte=60"`
}

type SectionUpdateRequest struct {
	Content *string `json:"content"`
	Liked   *bool   `json:"liked"`
	Comment *string `json:"comment"`
}

type RefineRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

type OutlineRequest struct {
	MainTopic    string `json:"main_topic" validate:"required"`
	DocumentType string `json:"document_type" validate:"required,oneof=docx pptx"`
	NumSlides    int    `json:"num_slides" validate:"omitempty,gte=1,lte=30"`
}
