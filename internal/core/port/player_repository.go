package port

import (
	"context"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/google/uuid"
)

// PlayerRepositoryPort - хранилище игроков. Семантика как у CoachRepositoryPort.
type PlayerRepositoryPort interface {
	CreateWithUser(ctx context.Context, user *domain.User, player *domain.Player) error
	Update(ctx context.Context, player *domain.Player) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Player, error)
	// List возвращает всех игроков; teamID != nil сужает выборку до одной команды.
	List(ctx context.Context, teamID *uuid.UUID) ([]domain.Player, error)
}
