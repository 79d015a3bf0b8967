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

// CreatePlayerUseCase создает игрока с учетной записью. Если указана команда,
// ее название попадает в уведомление.
type CreatePlayerUseCase struct {
	playerRepo port.PlayerRepositoryPort
	teamRepo   port.TeamRepositoryPort
	notifier   port.NotifierPort
}

func NewCreatePlayerUseCase(playerRepo port.PlayerRepositoryPort, teamRepo port.TeamRepositoryPort, notifier port.NotifierPort) *CreatePlayerUseCase {
	return &CreatePlayerUseCase{
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
		notifier:   notifier,
	}
}

func (uc *CreatePlayerUseCase) Execute(ctx context.Context, firstName, lastName, email, position string, teamID *uuid.UUID, birthDate *time.Time) (*domain.PlayerAccount, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreatePlayer",
		"email":    email,
	})

	if firstName == "" || lastName == "" || email == "" {
		ucLogger.Warn("Validation failed: first_name, last_name and email are required", nil)
		return nil, fmt.Errorf("%w: first_name, last_name and email are required", domain.ErrValidation)
	}

	// Команду проверяем до создания учетной записи: несуществующий teamID -
	// это ошибка запроса, а не повод плодить игроков без команды.
	var teamName string
	if teamID != nil {
		team, err := uc.teamRepo.FindByID(ctx, *teamID)
		if err != nil {
			ucLogger.Error("Repository failed while loading team", err, nil)
			return nil, err
		}
		if team == nil {
			ucLogger.Warn("Team not found for new player", port.Fields{"team_id": teamID.String()})
			return nil, fmt.Errorf("%w: team does not exist", domain.ErrValidation)
		}
		teamName = team.Name
	}

	ucLogger.Info("Use case started: attempting to create player", nil)

	username := domain.GenerateUsername(firstName, lastName)
	tempPassword := domain.NewTempPassword()

	user, err := domain.NewUser(username, email, tempPassword, domain.RolePlayer)
	if err != nil {
		ucLogger.Error("Failed to create user domain object", err, nil)
		return nil, err
	}
	player := domain.NewPlayer(user.ID, teamID, firstName, lastName, position, birthDate)

	if err := uc.playerRepo.CreateWithUser(ctx, user, player); err != nil {
		ucLogger.Error("Repository failed to create player", err, nil)
		return nil, err
	}

	body := map[string]interface{}{
		"name":          player.FullName(),
		"email":         user.Email,
		"username":      user.Username,
		"temp_password": tempPassword,
		"position":      player.Position,
	}
	if teamName != "" {
		body["team"] = teamName
	}
	uc.notifier.Notify(ctx, domain.EventPlayerCreated, domain.NotificationPayload{Body: body})

	ucLogger.Info("Use case finished: player created successfully", port.Fields{"player_id": player.ID.String()})
	return &domain.PlayerAccount{User: user, Player: player, TempPassword: tempPassword}, nil
}
