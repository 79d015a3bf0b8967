package usecase

import (
	"context"
	"fmt"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/contextkeys"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/port"
	"github.com/google/uuid"
)

type CreateDrillUseCase struct {
	drillRepo port.DrillRepositoryPort
	notifier  port.NotifierPort
}

func NewCreateDrillUseCase(drillRepo port.DrillRepositoryPort, notifier port.NotifierPort) *CreateDrillUseCase {
	return &CreateDrillUseCase{
		drillRepo: drillRepo,
		notifier:  notifier,
	}
}

func (uc *CreateDrillUseCase) Execute(ctx context.Context, createdBy uuid.UUID, title, category, description, videoURL string) (*domain.Drill, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreateDrill",
		"title":    title,
	})

	if title == "" || category == "" {
		ucLogger.Warn("Validation failed: title and category are required", nil)
		return nil, fmt.Errorf("%w: title and category are required", domain.ErrValidation)
	}

	drill := domain.NewDrill(createdBy, title, category, description, videoURL)

	if err := uc.drillRepo.Create(ctx, drill); err != nil {
		ucLogger.Error("Repository failed to create drill", err, nil)
		return nil, err
	}

	uc.notifier.Notify(ctx, domain.EventDrillCreated, domain.NotificationPayload{
		Body: map[string]interface{}{
			"title":     drill.Title,
			"category":  drill.Category,
			"video_url": drill.VideoURL,
		},
	})

	ucLogger.Info("Use case finished: drill created successfully", port.Fields{"drill_id": drill.ID.String()})
	return drill, nil
}
