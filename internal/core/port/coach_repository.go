package port

import (
	"context"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/google/uuid"
)

// CoachRepositoryPort - хранилище тренеров.
// CreateWithUser пишет User и Coach в одной транзакции: половинчатый аккаунт
// (пользователь без профиля) нам не нужен.
// Find-методы возвращают (nil, nil), если записи нет.
type CoachRepositoryPort interface {
	CreateWithUser(ctx context.Context, user *domain.User, coach *domain.Coach) error
	Update(ctx context.Context, coach *domain.Coach) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Coach, error)
	List(ctx context.Context) ([]domain.Coach, error)
}
