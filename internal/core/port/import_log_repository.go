package port

import (
	"context"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
)

type ImportLogRepositoryPort interface {
	Create(ctx context.Context, log *domain.ImportLog) error
}
