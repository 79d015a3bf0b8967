package usecase

import (
	"context"
	"fmt"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/contextkeys"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/port"
	"github.com/google/uuid"
)

// SubmitEvaluationUseCase сохраняет оценку игрока и уведомляет автоматизацию.
// В уведомление уходят сами оценки и средний балл - их ждет рассылка родителям.
type SubmitEvaluationUseCase struct {
	evaluationRepo port.EvaluationRepositoryPort
	playerRepo     port.PlayerRepositoryPort
	notifier       port.NotifierPort
}

func NewSubmitEvaluationUseCase(evaluationRepo port.EvaluationRepositoryPort, playerRepo port.PlayerRepositoryPort, notifier port.NotifierPort) *SubmitEvaluationUseCase {
	return &SubmitEvaluationUseCase{
		evaluationRepo: evaluationRepo,
		playerRepo:     playerRepo,
		notifier:       notifier,
	}
}

func (uc *SubmitEvaluationUseCase) Execute(ctx context.Context, playerID, coachID uuid.UUID, technical, tactical, physical, attitude int, comment string) (*domain.Evaluation, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "SubmitEvaluation",
		"player_id": playerID.String(),
	})

	evaluation := domain.NewEvaluation(playerID, coachID, technical, tactical, physical, attitude, comment)
	if !evaluation.ScoresValid() {
		ucLogger.Warn("Validation failed: scores out of range", nil)
		return nil, fmt.Errorf("%w: scores must be between %d and %d", domain.ErrValidation, domain.EvaluationScoreMin, domain.EvaluationScoreMax)
	}

	player, err := uc.playerRepo.FindByID(ctx, playerID)
	if err != nil {
		ucLogger.Error("Repository failed while loading player", err, nil)
		return nil, err
	}
	if player == nil {
		ucLogger.Warn("Player not found for evaluation", nil)
		return nil, domain.ErrNotFound
	}

	if err := uc.evaluationRepo.Create(ctx, evaluation); err != nil {
		ucLogger.Error("Repository failed to create evaluation", err, nil)
		return nil, err
	}

	uc.notifier.Notify(ctx, domain.EventEvaluationSubmitted, domain.NotificationPayload{
		Body: map[string]interface{}{
			"player":    player.FullName(),
			"technical": evaluation.Technical,
			"tactical":  evaluation.Tactical,
			"physical":  evaluation.Physical,
			"attitude":  evaluation.Attitude,
			"average":   evaluation.Average(),
			"comment":   evaluation.Comment,
		},
	})

	ucLogger.Info("Use case finished: evaluation submitted successfully", port.Fields{"evaluation_id": evaluation.ID.String()})
	return evaluation, nil
}
