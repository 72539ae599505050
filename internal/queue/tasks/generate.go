package tasks

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/presentwallah/engine/internal/services"
	appErr "github.com/presentwallah/engine/pkg/errors"
	"github.com/presentwallah/engine/pkg/logger"
)

// TypeGenerateContent is the queue task type for project-wide generation.
const TypeGenerateContent = "content:generate"

// GeneratePayload is the task payload for content generation tasks.
type GeneratePayload struct {
	ProjectID string `json:"project_id"`
	UserID    string `json:"user_id"`
}

// GenerateTaskHandler runs project-wide content generation off the queue.
type GenerateTaskHandler struct {
	contentSvc services.ContentService
}

func NewGenerateTaskHandler(contentSvc services.ContentService) *GenerateTaskHandler {
	return &GenerateTaskHandler{contentSvc: contentSvc}
}

func (h *GenerateTaskHandler) HandleGenerate(ctx context.Context, t *asynq.Task) error {
	var p GeneratePayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		logger.L().Error("invalid generate task payload", zap.Error(err))
		return err
	}
	projectID, err := uuid.Parse(p.ProjectID)
	if err != nil {
		logger.L().Error("invalid project id in task", zap.Error(err))
		return err
	}
	userID, err := uuid.Parse(p.UserID)
	if err != nil {
		logger.L().Error("invalid user id in task", zap.Error(err))
		return err
	}

	logger.L().Info("handling generate task", zap.String("project_id", projectID.String()))

	res, err := h.contentSvc.GenerateAll(ctx, projectID, userID)
	if err != nil {
		// provider outages are retried by the queue; anything already
		// generated survived, so the retry only fills the remainder
		if appErr.IsCode(err, appErr.CodeUnavailable) {
			logger.L().Warn("generate task will retry",
				zap.String("project_id", projectID.String()),
				zap.Int("generated", res.Generated),
				zap.Error(err))
			return err
		}
		logger.L().Error("generate task failed",
			zap.String("project_id", projectID.String()),
			zap.Error(err))
		return err
	}

	logger.L().Info("generate task complete",
		zap.String("project_id", projectID.String()),
		zap.Int("generated", res.Generated),
		zap.Int("skipped", res.Skipped))
	return nil
}
