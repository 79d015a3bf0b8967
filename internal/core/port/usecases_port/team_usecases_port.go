package usecases_port

import (
	"context"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/google/uuid"
)

type CreateTeamUseCasePort interface {
	Execute(ctx context.Context, name, season string, coachID *uuid.UUID) (*domain.Team, error)
}

type ListTeamsUseCasePort interface {
	Execute(ctx context.Context) ([]domain.Team, error)
}
