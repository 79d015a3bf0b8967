package usecase

import (
	"context"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/contextkeys"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/port"
	"github.com/google/uuid"
)

type ListPlayersUseCase struct {
	playerRepo port.PlayerRepositoryPort
}

func NewListPlayersUseCase(playerRepo port.PlayerRepositoryPort) *ListPlayersUseCase {
	return &ListPlayersUseCase{playerRepo: playerRepo}
}

func (uc *ListPlayersUseCase) Execute(ctx context.Context, teamID *uuid.UUID) ([]domain.Player, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	players, err := uc.playerRepo.List(ctx, teamID)
	if err != nil {
		logger.Error("Failed to list players", err, port.Fields{"use_case": "ListPlayers"})
		return nil, err
	}

	return players, nil
}
