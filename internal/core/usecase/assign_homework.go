package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/contextkeys"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/port"
	"github.com/google/uuid"
)

type AssignHomeworkUseCase struct {
	homeworkRepo port.HomeworkRepositoryPort
	playerRepo   port.PlayerRepositoryPort
	notifier     port.NotifierPort
}

func NewAssignHomeworkUseCase(homeworkRepo port.HomeworkRepositoryPort, playerRepo port.PlayerRepositoryPort, notifier port.NotifierPort) *AssignHomeworkUseCase {
	return &AssignHomeworkUseCase{
		homeworkRepo: homeworkRepo,
		playerRepo:   playerRepo,
		notifier:     notifier,
	}
}

func (uc *AssignHomeworkUseCase) Execute(ctx context.Context, playerID, coachID uuid.UUID, title, description string, drills []string, dueDate *time.Time) (*domain.Homework, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "AssignHomework",
		"player_id": playerID.String(),
	})

	if title == "" {
		ucLogger.Warn("Validation failed: title is required", nil)
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}

	player, err := uc.playerRepo.FindByID(ctx, playerID)
	if err != nil {
		ucLogger.Error("Repository failed while loading player", err, nil)
		return nil, err
	}
	if player == nil {
		ucLogger.Warn("Player not found for homework", nil)
		return nil, domain.ErrNotFound
	}

	homework := domain.NewHomework(playerID, coachID, title, description, drills, dueDate)

	if err := uc.homeworkRepo.Create(ctx, homework); err != nil {
		ucLogger.Error("Repository failed to create homework", err, nil)
		return nil, err
	}

	body := map[string]interface{}{
		"player": player.FullName(),
		"title":  homework.Title,
		"drills": homework.Drills,
	}
	if dueDate != nil {
		body["due_date"] = dueDate.UTC().Format(time.RFC3339)
	}
	uc.notifier.Notify(ctx, domain.EventHomeworkAssigned, domain.NotificationPayload{Body: body})

	ucLogger.Info("Use case finished: homework assigned successfully", port.Fields{"homework_id": homework.ID.String()})
	return homework, nil
}
