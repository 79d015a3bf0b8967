package usecase

import (
	"context"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/contextkeys"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/port"
	"github.com/google/uuid"
)

type ListPlayerEvaluationsUseCase struct {
	evaluationRepo port.EvaluationRepositoryPort
}

func NewListPlayerEvaluationsUseCase(evaluationRepo port.EvaluationRepositoryPort) *ListPlayerEvaluationsUseCase {
	return &ListPlayerEvaluationsUseCase{evaluationRepo: evaluationRepo}
}

func (uc *ListPlayerEvaluationsUseCase) Execute(ctx context.Context, playerID uuid.UUID) ([]domain.Evaluation, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	evaluations, err := uc.evaluationRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		logger.Error("Failed to list evaluations", err, port.Fields{"use_case": "ListPlayerEvaluations", "player_id": playerID.String()})
		return nil, err
	}

	return evaluations, nil
}
