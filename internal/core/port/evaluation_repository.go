package port

import (
	"context"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/google/uuid"
)

type EvaluationRepositoryPort interface {
	Create(ctx context.Context, evaluation *domain.Evaluation) error
	ListByPlayer(ctx context.Context, playerID uuid.UUID) ([]domain.Evaluation, error)
}
