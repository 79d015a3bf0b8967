package usecases_port

import (
	"context"
	"time"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/google/uuid"
)

type CreatePlayerUseCasePort interface {
	Execute(ctx context.Context, firstName, lastName, email, position string, teamID *uuid.UUID, birthDate *time.Time) (*domain.PlayerAccount, error)
}

type UpdatePlayerUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID, firstName, lastName, position string, teamID *uuid.UUID) (*domain.Player, error)
}

type DeletePlayerUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID) error
}

type GetPlayerUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID) (*domain.Player, error)
}

type ListPlayersUseCasePort interface {
	Execute(ctx context.Context, teamID *uuid.UUID) ([]domain.Player, error)
}
