package usecase

import (
	"context"
	"fmt"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/contextkeys"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/port"
	"github.com/google/uuid"
)

type UpdatePlayerUseCase struct {
	playerRepo port.PlayerRepositoryPort
	teamRepo   port.TeamRepositoryPort
	notifier   port.NotifierPort
}

func NewUpdatePlayerUseCase(playerRepo port.PlayerRepositoryPort, teamRepo port.TeamRepositoryPort, notifier port.NotifierPort) *UpdatePlayerUseCase {
	return &UpdatePlayerUseCase{
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
		notifier:   notifier,
	}
}

func (uc *UpdatePlayerUseCase) Execute(ctx context.Context, id uuid.UUID, firstName, lastName, position string, teamID *uuid.UUID) (*domain.Player, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "UpdatePlayer",
		"player_id": id.String(),
	})

	if firstName == "" || lastName == "" {
		ucLogger.Warn("Validation failed: first_name and last_name are required", nil)
		return nil, fmt.Errorf("%w: first_name and last_name are required", domain.ErrValidation)
	}

	player, err := uc.playerRepo.FindByID(ctx, id)
	if err != nil {
		ucLogger.Error("Repository failed while loading player", err, nil)
		return nil, err
	}
	if player == nil {
		ucLogger.Warn("Player not found", nil)
		return nil, domain.ErrNotFound
	}

	var teamName string
	if teamID != nil {
		team, err := uc.teamRepo.FindByID(ctx, *teamID)
		if err != nil {
			ucLogger.Error("Repository failed while loading team", err, nil)
			return nil, err
		}
		if team == nil {
			ucLogger.Warn("Team not found for player update", port.Fields{"team_id": teamID.String()})
			return nil, fmt.Errorf("%w: team does not exist", domain.ErrValidation)
		}
		teamName = team.Name
	}

	player.FirstName = firstName
	player.LastName = lastName
	player.Position = position
	player.TeamID = teamID

	if err := uc.playerRepo.Update(ctx, player); err != nil {
		ucLogger.Error("Repository failed to update player", err, nil)
		return nil, err
	}

	body := map[string]interface{}{
		"name":     player.FullName(),
		"position": player.Position,
	}
	if teamName != "" {
		body["team"] = teamName
	}
	uc.notifier.Notify(ctx, domain.EventPlayerUpdated, domain.NotificationPayload{Body: body})

	ucLogger.Info("Use case finished: player updated successfully", nil)
	return player, nil
}
