package usecase

import (
	"context"
	"fmt"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/contextkeys"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/port"
	"github.com/google/uuid"
)

type UpdateCoachUseCase struct {
	coachRepo port.CoachRepositoryPort
	notifier  port.NotifierPort
}

func NewUpdateCoachUseCase(coachRepo port.CoachRepositoryPort, notifier port.NotifierPort) *UpdateCoachUseCase {
	return &UpdateCoachUseCase{
		coachRepo: coachRepo,
		notifier:  notifier,
	}
}

func (uc *UpdateCoachUseCase) Execute(ctx context.Context, id uuid.UUID, firstName, lastName, phone, qualification string) (*domain.Coach, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "UpdateCoach",
		"coach_id": id.String(),
	})

	if firstName == "" || lastName == "" {
		ucLogger.Warn("Validation failed: first_name and last_name are required", nil)
		return nil, fmt.Errorf("%w: first_name and last_name are required", domain.ErrValidation)
	}

	coach, err := uc.coachRepo.FindByID(ctx, id)
	if err != nil {
		ucLogger.Error("Repository failed while loading coach", err, nil)
		return nil, err
	}
	if coach == nil {
		ucLogger.Warn("Coach not found", nil)
		return nil, domain.ErrNotFound
	}

	coach.FirstName = firstName
	coach.LastName = lastName
	coach.Phone = phone
	coach.Qualification = qualification

	if err := uc.coachRepo.Update(ctx, coach); err != nil {
		ucLogger.Error("Repository failed to update coach", err, nil)
		return nil, err
	}

	uc.notifier.Notify(ctx, domain.EventCoachUpdated, domain.NotificationPayload{
		Body: map[string]interface{}{
			"name":          coach.FullName(),
			"phone":         coach.Phone,
			"qualification": coach.Qualification,
		},
	})

	ucLogger.Info("Use case finished: coach updated successfully", nil)
	return coach, nil
}
