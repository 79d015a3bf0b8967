package usecases_port

import (
	"context"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/google/uuid"
)

type SubmitEvaluationUseCasePort interface {
	Execute(ctx context.Context, playerID, coachID uuid.UUID, technical, tactical, physical, attitude int, comment string) (*domain.Evaluation, error)
}

type ListPlayerEvaluationsUseCasePort interface {
	Execute(ctx context.Context, playerID uuid.UUID) ([]domain.Evaluation, error)
}
