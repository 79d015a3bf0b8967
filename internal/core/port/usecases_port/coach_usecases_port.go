package usecases_port

import (
	"context"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/google/uuid"
)

type CreateCoachUseCasePort interface {
	Execute(ctx context.Context, firstName, lastName, email, phone, qualification string) (*domain.CoachAccount, error)
}

type UpdateCoachUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID, firstName, lastName, phone, qualification string) (*domain.Coach, error)
}

type DeleteCoachUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID) error
}

type ListCoachesUseCasePort interface {
	Execute(ctx context.Context) ([]domain.Coach, error)
}
