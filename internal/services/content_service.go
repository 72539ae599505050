package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/presentwallah/engine/internal/llm"
	"github.com/presentwallah/engine/internal/models"
	"github.com/presentwallah/engine/internal/repository"
	appErr "github.com/presentwallah/engine/pkg/errors"
	"github.com/presentwallah/engine/pkg/logger"
)

// ContentService drives AI content generation and refinement for sections.
type ContentService interface {
	// GenerateAll fills every empty section of the project in order. Sections
	// that already hold content are left alone. On a provider failure the
	// sections generated so far stay persisted.
	GenerateAll(ctx context.Context, projectID, userID uuid.UUID) (*GenerateResult, error)
	// EnqueueGenerateAll schedules GenerateAll on the background queue. When
	// no queue client is configured it runs inline.
	EnqueueGenerateAll(ctx context.Context, projectID, userID uuid.UUID) error
	RefineSection(ctx context.Context, sectionID, userID uuid.UUID, instruction string) (*models.Section, error)
	UpdateSection(ctx context.Context, sectionID, userID uuid.UUID, input *UpdateSectionInput) (*models.Section, error)
	ListRevisions(ctx context.Context, sectionID, userID uuid.UUID) ([]models.Revision, error)
	SuggestOutline(ctx context.Context, mainTopic, documentType string, numItems int) ([]string, error)
}

type GenerateResult struct {
	Generated int
	Skipped   int
	Total     int
}

// UpdateSectionInput carries manual edits; nil fields are left untouched.
type UpdateSectionInput struct {
	Content *string
	Liked   *bool
	Comment *string
}

type contentService struct {
	projectRepo  repository.ProjectRepository
	sectionRepo  repository.SectionRepository
	revisionRepo repository.RevisionRepository
	completer    llm.Completer
	asynqClient  *asynq.Client
}

func NewContentService(
	projectRepo repository.ProjectRepository,
	sectionRepo repository.SectionRepository,
	revisionRepo repository.RevisionRepository,
	completer llm.Completer,
	asynqClient *asynq.Client,
) ContentService {
	return &contentService{
		projectRepo:  projectRepo,
		sectionRepo:  sectionRepo,
		revisionRepo: revisionRepo,
		completer:    completer,
		asynqClient:  asynqClient,
	}
}

var _ ContentService = (*contentService)(nil)

func (s *contentService) GenerateAll(ctx context.Context, projectID, userID uuid.UUID) (*GenerateResult, error) {
	var project models.Project
	if err := s.projectRepo.GetForUser(ctx, projectID, userID, &project); err != nil {
		return nil, err
	}
	sections, err := s.sectionRepo.ListByProject(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	result := &GenerateResult{Total: len(sections)}
	for i := range sections {
		sec := &sections[i]
		if sec.Content != "" {
			result.Skipped++
			continue
		}

		prompt := llm.ContentPrompt(sec.Title, project.MainTopic, project.DocumentType)
		out, err := s.completer.Complete(ctx, prompt, llm.ContentTemperature, llm.ContentMaxTokens)
		if err != nil {
			logger.L().Error("content generation failed",
				zap.String("project_id", project.ID.String()),
				zap.String("section_id", sec.ID.String()),
				zap.Int("generated", result.Generated),
				zap.Error(err))
			return result, appErr.Wrap(err, appErr.CodeUnavailable, "content provider unavailable").
				WithMeta("generated", result.Generated).
				WithMeta("total", result.Total)
		}

		sec.Content = out
		if err := s.sectionRepo.Update(ctx, sec); err != nil {
			return result, err
		}
		result.Generated++
	}

	logger.L().Info("content generation complete",
		zap.String("project_id", project.ID.String()),
		zap.Int("generated", result.Generated),
		zap.Int("skipped", result.Skipped))
	return result, nil
}

func (s *contentService) EnqueueGenerateAll(ctx context.Context, projectID, userID uuid.UUID) error {
	if s.asynqClient == nil {
		logger.L().Warn("queue client not configured, generating inline",
			zap.String("project_id", projectID.String()))
		_, err := s.GenerateAll(ctx, projectID, userID)
		return err
	}

	payload, err := json.Marshal(map[string]string{
		"project_id": projectID.String(),
		"user_id":    userID.String(),
	})
	if err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "marshal generate payload failed")
	}

	task := asynq.NewTask("content:generate", payload)
	info, err := s.asynqClient.EnqueueContext(ctx, task)
	if err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "enqueue generate task failed")
	}
	logger.L().Info("generate task enqueued",
		zap.String("project_id", projectID.String()),
		zap.String("task_id", info.ID))
	return nil
}

// RefineSection rewrites a section via the provider and records the change
// in the revision history. On provider failure the stored content is left
// exactly as it was and no revision is written.
func (s *contentService) RefineSection(ctx context.Context, sectionID, userID uuid.UUID, instruction string) (*models.Section, error) {
	var section models.Section
	if err := s.sectionRepo.GetForUser(ctx, sectionID, userID, &section); err != nil {
		return nil, err
	}
	var project models.Project
	if err := s.projectRepo.GetForUser(ctx, section.ProjectID, userID, &project); err != nil {
		return nil, err
	}

	previous := section.Content
	prompt := llm.RefinePrompt(previous, instruction, section.Title, project.DocumentType)
	out, err := s.completer.Complete(ctx, prompt, llm.ContentTemperature, llm.ContentMaxTokens)
	if err != nil {
		logger.L().Error("refinement failed",
			zap.String("section_id", section.ID.String()),
			zap.Error(err))
		return nil, appErr.Wrap(err, appErr.CodeUnavailable, "content provider unavailable")
	}

	rev := &models.Revision{
		SectionID:       section.ID,
		Prompt:          instruction,
		PreviousContent: previous,
		NewContent:      out,
	}
	section.Content = out
	if err := s.revisionRepo.Record(ctx, rev, &section); err != nil {
		return nil, err
	}

	logger.L().Info("section refined",
		zap.String("section_id", section.ID.String()),
		zap.String("revision_id", rev.ID.String()))
	return &section, nil
}

func (s *contentService) UpdateSection(ctx context.Context, sectionID, userID uuid.UUID, input *UpdateSectionInput) (*models.Section, error) {
	var section models.Section
	if err := s.sectionRepo.GetForUser(ctx, sectionID, userID, &section); err != nil {
		return nil, err
	}

	if input.Content != nil {
		section.Content = *input.Content
	}
	if input.Liked != nil {
		section.Liked = input.Liked
	}
	if input.Comment != nil {
		section.Comment = *input.Comment
	}

	if err := s.sectionRepo.Update(ctx, &section); err != nil {
		return nil, err
	}
	return &section, nil
}

func (s *contentService) ListRevisions(ctx context.Context, sectionID, userID uuid.UUID) ([]models.Revision, error) {
	var section models.Section
	if err := s.sectionRepo.GetForUser(ctx, sectionID, userID, &section); err != nil {
		return nil, err
	}
	return s.revisionRepo.ListBySection(ctx, section.ID)
}

func (s *contentService) SuggestOutline(ctx context.Context, mainTopic, documentType string, numItems int) ([]string, error) {
	prompt := llm.OutlinePrompt(mainTopic, documentType, numItems)
	out, err := s.completer.Complete(ctx, prompt, llm.OutlineTemperature, llm.OutlineMaxTokens)
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeUnavailable, "content provider unavailable")
	}
	titles := llm.ParseOutline(out)
	if len(titles) == 0 {
		return nil, appErr.New(appErr.CodeUnavailable, "provider returned an empty outline")
	}
	return titles, nil
}
