package usecase

import (
	"context"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/contextkeys"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/port"
	"github.com/google/uuid"
)

type GetPlayerUseCase struct {
	playerRepo port.PlayerRepositoryPort
}

func NewGetPlayerUseCase(playerRepo port.PlayerRepositoryPort) *GetPlayerUseCase {
	return &GetPlayerUseCase{playerRepo: playerRepo}
}

func (uc *GetPlayerUseCase) Execute(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	player, err := uc.playerRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to get player", err, port.Fields{"use_case": "GetPlayer", "player_id": id.String()})
		return nil, err
	}
	if player == nil {
		return nil, domain.ErrNotFound
	}

	return player, nil
}
