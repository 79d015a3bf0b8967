package port

import (
	"context"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
)

type DrillRepositoryPort interface {
	Create(ctx context.Context, drill *domain.Drill) error
	List(ctx context.Context) ([]domain.Drill, error)
}
