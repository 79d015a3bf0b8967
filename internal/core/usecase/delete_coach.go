package usecase

import (
	"context"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/contextkeys"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/port"
	"github.com/google/uuid"
)

type DeleteCoachUseCase struct {
	coachRepo port.CoachRepositoryPort
	notifier  port.NotifierPort
}

func NewDeleteCoachUseCase(coachRepo port.CoachRepositoryPort, notifier port.NotifierPort) *DeleteCoachUseCase {
	return &DeleteCoachUseCase{
		coachRepo: coachRepo,
		notifier:  notifier,
	}
}

func (uc *DeleteCoachUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "DeleteCoach",
		"coach_id": id.String(),
	})

	// Снимок профиля до удаления: в уведомлении должно быть имя,
	// а не голый идентификатор.
	coach, err := uc.coachRepo.FindByID(ctx, id)
	if err != nil {
		ucLogger.Error("Repository failed while loading coach", err, nil)
		return err
	}
	if coach == nil {
		ucLogger.Warn("Coach not found", nil)
		return domain.ErrNotFound
	}

	if err := uc.coachRepo.Delete(ctx, id); err != nil {
		ucLogger.Error("Repository failed to delete coach", err, nil)
		return err
	}

	uc.notifier.Notify(ctx, domain.EventCoachDeleted, domain.NotificationPayload{
		Body: map[string]interface{}{
			"name":          coach.FullName(),
			"qualification": coach.Qualification,
		},
	})

	ucLogger.Info("Use case finished: coach deleted successfully", nil)
	return nil
}
