package usecase

import (
	"context"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/contextkeys"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/port"
)

type ListDrillsUseCase struct {
	drillRepo port.DrillRepositoryPort
}

func NewListDrillsUseCase(drillRepo port.DrillRepositoryPort) *ListDrillsUseCase {
	return &ListDrillsUseCase{drillRepo: drillRepo}
}

func (uc *ListDrillsUseCase) Execute(ctx context.Context) ([]domain.Drill, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	drills, err := uc.drillRepo.List(ctx)
	if err != nil {
		logger.Error("Failed to list drills", err, port.Fields{"use_case": "ListDrills"})
		return nil, err
	}

	return drills, nil
}
