package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/presentwallah/engine/internal/api/middleware"
	"github.com/presentwallah/engine/internal/models"
	"github.com/presentwallah/engine/internal/services"
)

type mockProjectService struct {
	mock.Mock
}

func (m *mockProjectService) CreateProject(ctx context.Context, userID uuid.UUID, input *services.CreateProjectInput) (*models.Project, error) {
	args := m.Called(ctx, userID, input)
	if v := args.Get(0); v != nil {
		return v.(*models.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProjectService) GetProject(ctx context.Context, projectID, userID uuid.UUID) (*models.Project, error) {
	args := m.Called(ctx, projectID, userID)
	if v := args.Get(0); v != nil {
		return v.(*models.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProjectService) ListProjects(ctx context.Context, userID uuid.UUID) ([]models.Project, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]models.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProjectService) UpdateProject(ctx context.Context, projectID, userID uuid.UUID, updates *services.UpdateProjectInput) (*models.Project, error) {
	args := m.Called(ctx, projectID, userID, updates)
	if v := args.Get(0); v != nil {
		return v.(*models.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProjectService) DeleteProject(ctx context.Context, projectID, userID uuid.UUID) error {
	args := m.Called(ctx, projectID, userID)
	return args.Error(0)
}

func authedRequest(method, target, body string, userID uuid.UUID) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	return req.WithContext(context.WithValue(req.Context(), middleware.UserIDKey, userID))
}

func TestProjectsHandlerCreateSectionOrder(t *testing.T) {
	userID := uuid.New()
	svc := &mockProjectService{}
	h := NewProjectsHandler(svc, nil, nil, validator.New())

	var captured *services.CreateProjectInput
	svc.On("CreateProject", mock.Anything, userID, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(*services.CreateProjectInput)
		}).
		Return(&models.Project{Title: "AI Deck"}, nil).Once()

	body := `{
		"title": "AI Deck",
		"document_type": "pptx",
		"main_topic": "AI adoption",
		"sections": [
			{"title": "Hook"},
			{"title": "Detour", "order": 5},
			{"title": "Ask"}
		]
	}`
	rr := httptest.NewRecorder()
	h.Create(rr, authedRequest(http.MethodPost, "/api/v1/projects", body, userID))

	require.Equal(t, http.StatusCreated, rr.Code)
	require.NotNil(t, captured)
	// explicit order wins, omitted order falls back to array position
	require.Equal(t, []services.SectionInput{
		{Title: "Hook", OrderIndex: 0},
		{Title: "Detour", OrderIndex: 5},
		{Title: "Ask", OrderIndex: 2},
	}, captured.Sections)
	mock.AssertExpectationsForObjects(t, svc)
}

func TestProjectsHandlerCreateRejectsBadDocumentType(t *testing.T) {
	svc := &mockProjectService{}
	h := NewProjectsHandler(svc, nil, nil, validator.New())

	body := `{"title": "x", "document_type": "pdf", "main_topic": "y"}`
	rr := httptest.NewRecorder()
	h.Create(rr, authedRequest(http.MethodPost, "/api/v1/projects", body, uuid.New()))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "CreateProject")
}
