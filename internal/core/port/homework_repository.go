package port

import (
	"context"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/google/uuid"
)

type HomeworkRepositoryPort interface {
	Create(ctx context.Context, homework *domain.Homework) error
	ListByPlayer(ctx context.Context, playerID uuid.UUID) ([]domain.Homework, error)
}
