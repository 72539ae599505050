package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/presentwallah/engine/internal/models"
	appErr "github.com/presentwallah/engine/pkg/errors"
)

func TestExportService_Export(t *testing.T) {
	projectID := uuid.New()
	userID := uuid.New()

	t.Run("docx export", func(t *testing.T) {
		projectRepo := &mockProjectRepository{}
		sectionRepo := &mockSectionRepository{}
		svc := NewExportService(projectRepo, sectionRepo, nil)

		project := &models.Project{
			ID:           projectID,
			UserID:       userID,
			Title:        "Quarterly Plan",
			DocumentType: models.DocumentTypeDocx,
			MainTopic:    "FY27 strategy",
			Template:     "modern",
			FontSize:     20,
		}
		sections := []models.Section{
			{Title: "Opening", Content: "hello", OrderIndex: 0},
		}

		projectRepo.On("GetForUser", mock.Anything, projectID, userID, mock.Anything).Return(nil, project).Once()
		sectionRepo.On("ListByProject", mock.Anything, projectID).Return(sections, nil).Once()

		res, err := svc.Export(context.Background(), projectID, userID, true)
		require.NoError(t, err)
		require.NotEmpty(t, res.Data)
		require.Equal(t, "Quarterly Plan.docx", res.Filename)
		require.Equal(t, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", res.ContentType)
	})

	t.Run("pptx export without image source", func(t *testing.T) {
		projectRepo := &mockProjectRepository{}
		sectionRepo := &mockSectionRepository{}
		svc := NewExportService(projectRepo, sectionRepo, nil)

		project := &models.Project{
			ID:           projectID,
			UserID:       userID,
			Title:        "AI Deck",
			DocumentType: models.DocumentTypePptx,
			MainTopic:    "AI adoption",
			Template:     "corporate",
			FontSize:     20,
		}
		sections := []models.Section{
			{Title: "Hook", Content: "• one\n• two", OrderIndex: 0},
		}

		projectRepo.On("GetForUser", mock.Anything, projectID, userID, mock.Anything).Return(nil, project).Once()
		sectionRepo.On("ListByProject", mock.Anything, projectID).Return(sections, nil).Once()

		res, err := svc.Export(context.Background(), projectID, userID, false)
		require.NoError(t, err)
		require.NotEmpty(t, res.Data)
		require.Equal(t, "AI Deck.pptx", res.Filename)
		require.Equal(t, "application/vnd.openxmlformats-officedocument.presentationml.presentation", res.ContentType)
	})

	t.Run("foreign project is not found", func(t *testing.T) {
		projectRepo := &mockProjectRepository{}
		svc := NewExportService(projectRepo, &mockSectionRepository{}, nil)

		projectRepo.On("GetForUser", mock.Anything, projectID, userID, mock.Anything).
			Return(appErr.New(appErr.CodeNotFound, "project not found"), nil).Once()

		_, err := svc.Export(context.Background(), projectID, userID, true)
		require.True(t, appErr.IsCode(err, appErr.CodeNotFound))
	})
}
