package usecase

import (
	"context"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/contextkeys"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/port"
	"github.com/google/uuid"
)

type ListPlayerHomeworkUseCase struct {
	homeworkRepo port.HomeworkRepositoryPort
}

func NewListPlayerHomeworkUseCase(homeworkRepo port.HomeworkRepositoryPort) *ListPlayerHomeworkUseCase {
	return &ListPlayerHomeworkUseCase{homeworkRepo: homeworkRepo}
}

func (uc *ListPlayerHomeworkUseCase) Execute(ctx context.Context, playerID uuid.UUID) ([]domain.Homework, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	items, err := uc.homeworkRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		logger.Error("Failed to list homework", err, port.Fields{"use_case": "ListPlayerHomework", "player_id": playerID.String()})
		return nil, err
	}

	return items, nil
}
