package usecase

import (
	"context"
	"fmt"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/contextkeys"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/port"
	"github.com/google/uuid"
)

type CreateTeamUseCase struct {
	teamRepo  port.TeamRepositoryPort
	coachRepo port.CoachRepositoryPort
	notifier  port.NotifierPort
}

func NewCreateTeamUseCase(teamRepo port.TeamRepositoryPort, coachRepo port.CoachRepositoryPort, notifier port.NotifierPort) *CreateTeamUseCase {
	return &CreateTeamUseCase{
		teamRepo:  teamRepo,
		coachRepo: coachRepo,
		notifier:  notifier,
	}
}

func (uc *CreateTeamUseCase) Execute(ctx context.Context, name, season string, coachID *uuid.UUID) (*domain.Team, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "CreateTeam",
		"team_name": name,
	})

	if name == "" {
		ucLogger.Warn("Validation failed: team name is required", nil)
		return nil, fmt.Errorf("%w: team name is required", domain.ErrValidation)
	}

	var coachName string
	if coachID != nil {
		coach, err := uc.coachRepo.FindByID(ctx, *coachID)
		if err != nil {
			ucLogger.Error("Repository failed while loading coach", err, nil)
			return nil, err
		}
		if coach == nil {
			ucLogger.Warn("Coach not found for new team", port.Fields{"coach_id": coachID.String()})
			return nil, fmt.Errorf("%w: coach does not exist", domain.ErrValidation)
		}
		coachName = coach.FullName()
	}

	team := domain.NewTeam(name, season, coachID)

	if err := uc.teamRepo.Create(ctx, team); err != nil {
		ucLogger.Error("Repository failed to create team", err, nil)
		return nil, err
	}

	body := map[string]interface{}{
		"name":   team.Name,
		"season": team.Season,
	}
	if coachName != "" {
		body["coach"] = coachName
	}
	uc.notifier.Notify(ctx, domain.EventTeamCreated, domain.NotificationPayload{Body: body})

	ucLogger.Info("Use case finished: team created successfully", port.Fields{"team_id": team.ID.String()})
	return team, nil
}
