package usecase

import (
	"context"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/contextkeys"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/port"
)

type ListCoachesUseCase struct {
	coachRepo port.CoachRepositoryPort
}

func NewListCoachesUseCase(coachRepo port.CoachRepositoryPort) *ListCoachesUseCase {
	return &ListCoachesUseCase{coachRepo: coachRepo}
}

func (uc *ListCoachesUseCase) Execute(ctx context.Context) ([]domain.Coach, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	coaches, err := uc.coachRepo.List(ctx)
	if err != nil {
		logger.Error("Failed to list coaches", err, port.Fields{"use_case": "ListCoaches"})
		return nil, err
	}

	return coaches, nil
}
