package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/presentwallah/engine/internal/models"
	"github.com/presentwallah/engine/internal/render"
	"github.com/presentwallah/engine/internal/repository"
	appErr "github.com/presentwallah/engine/pkg/errors"
	"github.com/presentwallah/engine/pkg/logger"
)

// ExportService assembles a project into a downloadable office file.
type ExportService interface {
	Export(ctx context.Context, projectID, userID uuid.UUID, includeImages bool) (*ExportResult, error)
}

type ExportResult struct {
	Data        []byte
	Filename    string
	ContentType string
}

type exportService struct {
	projectRepo repository.ProjectRepository
	sectionRepo repository.SectionRepository
	images      render.ImageSource
}

// NewExportService builds the export service. images may be nil, in which
// case decks render without photos.
func NewExportService(projectRepo repository.ProjectRepository, sectionRepo repository.SectionRepository, images render.ImageSource) ExportService {
	return &exportService{projectRepo: projectRepo, sectionRepo: sectionRepo, images: images}
}

var _ ExportService = (*exportService)(nil)

func (s *exportService) Export(ctx context.Context, projectID, userID uuid.UUID, includeImages bool) (*ExportResult, error) {
	var project models.Project
	if err := s.projectRepo.GetForUser(ctx, projectID, userID, &project); err != nil {
		return nil, err
	}
	sections, err := s.sectionRepo.ListByProject(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	var data []byte
	switch project.DocumentType {
	case models.DocumentTypeDocx:
		data, err = render.RenderDocx(&project, sections)
	case models.DocumentTypePptx:
		data, err = render.RenderPptx(ctx, &project, sections, s.images, includeImages)
	default:
		return nil, appErr.New(appErr.CodeInvalid, "unsupported document type").
			WithMeta("document_type", project.DocumentType)
	}
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "render document failed")
	}

	logger.L().Info("project exported",
		zap.String("project_id", project.ID.String()),
		zap.String("document_type", project.DocumentType),
		zap.Int("bytes", len(data)))

	return &ExportResult{
		Data:        data,
		Filename:    project.Filename(),
		ContentType: project.ContentType(),
	}, nil
}
