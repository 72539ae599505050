package services

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/presentwallah/engine/internal/llm"
	"github.com/presentwallah/engine/internal/models"
	appErr "github.com/presentwallah/engine/pkg/errors"
	"github.com/presentwallah/engine/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests (required by services)
	_, err := logger.Init("error", "json")
	if err != nil {
		panic("failed to init logger: " + err.Error())
	}
	os.Exit(m.Run())
}

// Mock implementations

type mockProjectRepository struct {
	mock.Mock
}

func (m *mockProjectRepository) Create(ctx context.Context, obj *models.Project) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *mockProjectRepository) GetByID(ctx context.Context, id any, dest *models.Project) error {
	args := m.Called(ctx, id, dest)
	if args.Error(0) == nil && args.Get(1) != nil {
		*dest = *args.Get(1).(*models.Project)
	}
	return args.Error(0)
}

func (m *mockProjectRepository) Update(ctx context.Context, obj *models.Project) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *mockProjectRepository) Delete(ctx context.Context, id any) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockProjectRepository) GetForUser(ctx context.Context, projectID, userID uuid.UUID, dest *models.Project) error {
	args := m.Called(ctx, projectID, userID, dest)
	if args.Error(0) == nil && args.Get(1) != nil {
		*dest = *args.Get(1).(*models.Project)
	}
	return args.Error(0)
}

func (m *mockProjectRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Project, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]models.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockSectionRepository struct {
	mock.Mock
}

func (m *mockSectionRepository) Create(ctx context.Context, obj *models.Section) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *mockSectionRepository) GetByID(ctx context.Context, id any, dest *models.Section) error {
	args := m.Called(ctx, id, dest)
	if args.Error(0) == nil && args.Get(1) != nil {
		*dest = *args.Get(1).(*models.Section)
	}
	return args.Error(0)
}

func (m *mockSectionRepository) Update(ctx context.Context, obj *models.Section) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *mockSectionRepository) Delete(ctx context.Context, id any) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockSectionRepository) GetForUser(ctx context.Context, sectionID, userID uuid.UUID, dest *models.Section) error {
	args := m.Called(ctx, sectionID, userID, dest)
	if args.Error(0) == nil && args.Get(1) != nil {
		*dest = *args.Get(1).(*models.Section)
	}
	return args.Error(0)
}

func (m *mockSectionRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]models.Section, error) {
	args := m.Called(ctx, projectID)
	if v := args.Get(0); v != nil {
		return v.([]models.Section), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockRevisionRepository struct {
	mock.Mock
}

func (m *mockRevisionRepository) Create(ctx context.Context, obj *models.Revision) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *mockRevisionRepository) GetByID(ctx context.Context, id any, dest *models.Revision) error {
	args := m.Called(ctx, id, dest)
	if args.Error(0) == nil && args.Get(1) != nil {
		*dest = *args.Get(1).(*models.Revision)
	}
	return args.Error(0)
}

func (m *mockRevisionRepository) Update(ctx context.Context, obj *models.Revision) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *mockRevisionRepository) Delete(ctx context.Context, id any) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRevisionRepository) Record(ctx context.Context, rev *models.Revision, section *models.Section) error {
	args := m.Called(ctx, rev, section)
	return args.Error(0)
}

func (m *mockRevisionRepository) ListBySection(ctx context.Context, sectionID uuid.UUID) ([]models.Revision, error) {
	args := m.Called(ctx, sectionID)
	if v := args.Get(0); v != nil {
		return v.([]models.Revision), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCompleter struct {
	mock.Mock
}

func (m *mockCompleter) Complete(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	args := m.Called(ctx, prompt, temperature, maxTokens)
	return args.String(0), args.Error(1)
}

func TestContentService_GenerateAll(t *testing.T) {
	projectID := uuid.New()
	userID := uuid.New()
	project := &models.Project{ID: projectID, UserID: userID, MainTopic: "AI adoption", DocumentType: models.DocumentTypePptx}

	t.Run("fills only empty sections", func(t *testing.T) {
		projectRepo := &mockProjectRepository{}
		sectionRepo := &mockSectionRepository{}
		completer := &mockCompleter{}
		svc := NewContentService(projectRepo, sectionRepo, &mockRevisionRepository{}, completer, nil)

		sections := []models.Section{
			{ID: uuid.New(), Title: "Hook", Content: "already written", OrderIndex: 0},
			{ID: uuid.New(), Title: "Analysis", Content: "", OrderIndex: 1},
		}

		projectRepo.On("GetForUser", mock.Anything, projectID, userID, mock.Anything).Return(nil, project).Once()
		sectionRepo.On("ListByProject", mock.Anything, projectID).Return(sections, nil).Once()
		completer.On("Complete", mock.Anything, mock.Anything, llm.ContentTemperature, llm.ContentMaxTokens).
			Return("• Point one\n• Point two", nil).Once()
		sectionRepo.On("Update", mock.Anything, mock.MatchedBy(func(s *models.Section) bool {
			return s.Title == "Analysis" && s.Content == "• Point one\n• Point two"
		})).Return(nil).Once()

		res, err := svc.GenerateAll(context.Background(), projectID, userID)
		require.NoError(t, err)
		require.Equal(t, 1, res.Generated)
		require.Equal(t, 1, res.Skipped)
		require.Equal(t, 2, res.Total)
		mock.AssertExpectationsForObjects(t, projectRepo, sectionRepo, completer)
	})

	t.Run("provider failure keeps earlier sections", func(t *testing.T) {
		projectRepo := &mockProjectRepository{}
		sectionRepo := &mockSectionRepository{}
		completer := &mockCompleter{}
		svc := NewContentService(projectRepo, sectionRepo, &mockRevisionRepository{}, completer, nil)

		sections := []models.Section{
			{ID: uuid.New(), Title: "First", Content: "", OrderIndex: 0},
			{ID: uuid.New(), Title: "Second", Content: "", OrderIndex: 1},
		}

		projectRepo.On("GetForUser", mock.Anything, projectID, userID, mock.Anything).Return(nil, project).Once()
		sectionRepo.On("ListByProject", mock.Anything, projectID).Return(sections, nil).Once()
		completer.On("Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("generated body", nil).Once()
		sectionRepo.On("Update", mock.Anything, mock.MatchedBy(func(s *models.Section) bool {
			return s.Title == "First"
		})).Return(nil).Once()
		completer.On("Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("", errors.New("upstream timeout")).Once()

		res, err := svc.GenerateAll(context.Background(), projectID, userID)
		require.Error(t, err)
		require.True(t, appErr.IsCode(err, appErr.CodeUnavailable))
		require.Equal(t, 1, res.Generated)
		mock.AssertExpectationsForObjects(t, projectRepo, sectionRepo, completer)
	})

	t.Run("foreign project is not found", func(t *testing.T) {
		projectRepo := &mockProjectRepository{}
		svc := NewContentService(projectRepo, &mockSectionRepository{}, &mockRevisionRepository{}, &mockCompleter{}, nil)

		projectRepo.On("GetForUser", mock.Anything, projectID, userID, mock.Anything).
			Return(appErr.New(appErr.CodeNotFound, "project not found"), nil).Once()

		_, err := svc.GenerateAll(context.Background(), projectID, userID)
		require.True(t, appErr.IsCode(err, appErr.CodeNotFound))
	})
}

func TestContentService_RefineSection(t *testing.T) {
	sectionID := uuid.New()
	projectID := uuid.New()
	userID := uuid.New()
	project := &models.Project{ID: projectID, UserID: userID, DocumentType: models.DocumentTypeDocx}
	section := &models.Section{ID: sectionID, ProjectID: projectID, Title: "Strategy", Content: "old content"}

	t.Run("records revision and swaps content", func(t *testing.T) {
		projectRepo := &mockProjectRepository{}
		sectionRepo := &mockSectionRepository{}
		revisionRepo := &mockRevisionRepository{}
		completer := &mockCompleter{}
		svc := NewContentService(projectRepo, sectionRepo, revisionRepo, completer, nil)

		sectionRepo.On("GetForUser", mock.Anything, sectionID, userID, mock.Anything).Return(nil, section).Once()
		projectRepo.On("GetForUser", mock.Anything, projectID, userID, mock.Anything).Return(nil, project).Once()
		completer.On("Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("refined content", nil).Once()
		revisionRepo.On("Record", mock.Anything, mock.MatchedBy(func(rev *models.Revision) bool {
			return rev.SectionID == sectionID &&
				rev.Prompt == "make it sharper" &&
				rev.PreviousContent == "old content" &&
				rev.NewContent == "refined content"
		}), mock.MatchedBy(func(s *models.Section) bool {
			return s.Content == "refined content"
		})).Return(nil).Once()

		got, err := svc.RefineSection(context.Background(), sectionID, userID, "make it sharper")
		require.NoError(t, err)
		require.Equal(t, "refined content", got.Content)
		mock.AssertExpectationsForObjects(t, projectRepo, sectionRepo, revisionRepo, completer)
	})

	t.Run("provider failure leaves content and history untouched", func(t *testing.T) {
		projectRepo := &mockProjectRepository{}
		sectionRepo := &mockSectionRepository{}
		revisionRepo := &mockRevisionRepository{}
		completer := &mockCompleter{}
		svc := NewContentService(projectRepo, sectionRepo, revisionRepo, completer, nil)

		sectionRepo.On("GetForUser", mock.Anything, sectionID, userID, mock.Anything).Return(nil, section).Once()
		projectRepo.On("GetForUser", mock.Anything, projectID, userID, mock.Anything).Return(nil, project).Once()
		completer.On("Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("", errors.New("rate limited")).Once()

		_, err := svc.RefineSection(context.Background(), sectionID, userID, "make it sharper")
		require.True(t, appErr.IsCode(err, appErr.CodeUnavailable))
		revisionRepo.AssertNotCalled(t, "Record")
		sectionRepo.AssertNotCalled(t, "Update")
	})
}

func TestContentService_SuggestOutline(t *testing.T) {
	completer := &mockCompleter{}
	svc := NewContentService(&mockProjectRepository{}, &mockSectionRepository{}, &mockRevisionRepository{}, completer, nil)

	completer.On("Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("The Hook\n\nThe Gap\nThe Ask\n", nil).Once()

	titles, err := svc.SuggestOutline(context.Background(), "AI adoption", models.DocumentTypePptx, 3)
	require.NoError(t, err)
	require.Equal(t, []string{"The Hook", "The Gap", "The Ask"}, titles)
}
