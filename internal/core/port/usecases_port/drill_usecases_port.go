package usecases_port

import (
	"context"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/google/uuid"
)

type CreateDrillUseCasePort interface {
	Execute(ctx context.Context, createdBy uuid.UUID, title, category, description, videoURL string) (*domain.Drill, error)
}

type ListDrillsUseCasePort interface {
	Execute(ctx context.Context) ([]domain.Drill, error)
}
