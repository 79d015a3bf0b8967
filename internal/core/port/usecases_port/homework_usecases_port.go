package usecases_port

import (
	"context"
	"time"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/google/uuid"
)

type AssignHomeworkUseCasePort interface {
	Execute(ctx context.Context, playerID, coachID uuid.UUID, title, description string, drills []string, dueDate *time.Time) (*domain.Homework, error)
}

type ListPlayerHomeworkUseCasePort interface {
	Execute(ctx context.Context, playerID uuid.UUID) ([]domain.Homework, error)
}
