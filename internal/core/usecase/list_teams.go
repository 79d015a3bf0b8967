package usecase

import (
	"context"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/contextkeys"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/port"
)

type ListTeamsUseCase struct {
	teamRepo port.TeamRepositoryPort
}

func NewListTeamsUseCase(teamRepo port.TeamRepositoryPort) *ListTeamsUseCase {
	return &ListTeamsUseCase{teamRepo: teamRepo}
}

func (uc *ListTeamsUseCase) Execute(ctx context.Context) ([]domain.Team, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	teams, err := uc.teamRepo.List(ctx)
	if err != nil {
		logger.Error("Failed to list teams", err, port.Fields{"use_case": "ListTeams"})
		return nil, err
	}

	return teams, nil
}
