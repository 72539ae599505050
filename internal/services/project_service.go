package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/presentwallah/engine/internal/models"
	"github.com/presentwallah/engine/internal/repository"
	"github.com/presentwallah/engine/pkg/logger"
)

// ProjectService covers project CRUD. Every lookup is filtered on the
// requesting user, so foreign projects surface as not_found.
type ProjectService interface {
	CreateProject(ctx context.Context, userID uuid.UUID, input *CreateProjectInput) (*models.Project, error)
	GetProject(ctx context.Context, projectID, userID uuid.UUID) (*models.Project, error)
	ListProjects(ctx context.Context, userID uuid.UUID) ([]models.Project, error)
	UpdateProject(ctx context.Context, projectID, userID uuid.UUID, updates *UpdateProjectInput) (*models.Project, error)
	DeleteProject(ctx context.Context, projectID, userID uuid.UUID) error
}

type CreateProjectInput struct {
	Title        string
	DocumentType string
	MainTopic    string
	Template     string
	FontSize     int
	Sections     []SectionInput
}

type SectionInput struct {
	Title      string
	OrderIndex int
}

// UpdateProjectInput mutates render settings only; nil fields are left
// untouched.
type UpdateProjectInput struct {
	Template *string
	FontSize *int
}

type projectService struct {
	projectRepo repository.ProjectRepository
	sectionRepo repository.SectionRepository
}

func NewProjectService(projectRepo repository.ProjectRepository, sectionRepo repository.SectionRepository) ProjectService {
	return &projectService{projectRepo: projectRepo, sectionRepo: sectionRepo}
}

var _ ProjectService = (*projectService)(nil)

// CreateProject creates the project together with its initial empty
// sections in one insert.
func (s *projectService) CreateProject(ctx context.Context, userID uuid.UUID, input *CreateProjectInput) (*models.Project, error) {
	logger.L().Info("create project", zap.String("user_id", userID.String()), zap.String("title", input.Title))

	template := input.Template
	if template == "" {
		template = "modern"
	}
	fontSize := input.FontSize
	if fontSize <= 0 {
		fontSize = 20
	}

	p := &models.Project{
		UserID:       userID,
		Title:        input.Title,
		DocumentType: input.DocumentType,
		MainTopic:    input.MainTopic,
		Template:     template,
		FontSize:     fontSize,
	}
	for _, sec := range input.Sections {
		p.Sections = append(p.Sections, models.Section{
			Title:      sec.Title,
			OrderIndex: sec.OrderIndex,
		})
	}

	if err := s.projectRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	logger.L().Info("project created", zap.String("project_id", p.ID.String()), zap.Int("sections", len(p.Sections)))
	return p, nil
}

func (s *projectService) GetProject(ctx context.Context, projectID, userID uuid.UUID) (*models.Project, error) {
	var p models.Project
	if err := s.projectRepo.GetForUser(ctx, projectID, userID, &p); err != nil {
		return nil, err
	}
	sections, err := s.sectionRepo.ListByProject(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Sections = sections
	return &p, nil
}

func (s *projectService) ListProjects(ctx context.Context, userID uuid.UUID) ([]models.Project, error) {
	return s.projectRepo.ListByUser(ctx, userID)
}

func (s *projectService) UpdateProject(ctx context.Context, projectID, userID uuid.UUID, updates *UpdateProjectInput) (*models.Project, error) {
	var p models.Project
	if err := s.projectRepo.GetForUser(ctx, projectID, userID, &p); err != nil {
		return nil, err
	}

	if updates.Template != nil {
		p.Template = *updates.Template
	}
	if updates.FontSize != nil {
		p.FontSize = *updates.FontSize
	}

	if err := s.projectRepo.Update(ctx, &p); err != nil {
		return nil, err
	}
	logger.L().Info("project settings updated", zap.String("project_id", projectID.String()))
	return &p, nil
}

// DeleteProject removes the project; sections and revisions go with it via
// the database cascade.
func (s *projectService) DeleteProject(ctx context.Context, projectID, userID uuid.UUID) error {
	var p models.Project
	if err := s.projectRepo.GetForUser(ctx, projectID, userID, &p); err != nil {
		return err
	}
	if err := s.projectRepo.Delete(ctx, projectID); err != nil {
		return err
	}
	logger.L().Info("project deleted", zap.String("project_id", projectID.String()), zap.String("user_id", userID.String()))
	return nil
}
