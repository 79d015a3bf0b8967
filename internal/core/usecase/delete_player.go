package usecase

import (
	"context"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/contextkeys"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/port"
	"github.com/google/uuid"
)

type DeletePlayerUseCase struct {
	playerRepo port.PlayerRepositoryPort
	notifier   port.NotifierPort
}

func NewDeletePlayerUseCase(playerRepo port.PlayerRepositoryPort, notifier port.NotifierPort) *DeletePlayerUseCase {
	return &DeletePlayerUseCase{
		playerRepo: playerRepo,
		notifier:   notifier,
	}
}

func (uc *DeletePlayerUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "DeletePlayer",
		"player_id": id.String(),
	})

	// Снимок до удаления, чтобы в уведомлении осталось имя.
	player, err := uc.playerRepo.FindByID(ctx, id)
	if err != nil {
		ucLogger.Error("Repository failed while loading player", err, nil)
		return err
	}
	if player == nil {
		ucLogger.Warn("Player not found", nil)
		return domain.ErrNotFound
	}

	if err := uc.playerRepo.Delete(ctx, id); err != nil {
		ucLogger.Error("Repository failed to delete player", err, nil)
		return err
	}

	uc.notifier.Notify(ctx, domain.EventPlayerDeleted, domain.NotificationPayload{
		Body: map[string]interface{}{
			"name":     player.FullName(),
			"position": player.Position,
		},
	})

	ucLogger.Info("Use case finished: player deleted successfully", nil)
	return nil
}
