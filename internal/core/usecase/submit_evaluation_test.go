package usecase

import (
	"context"
	"testing"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitEvaluationSuccess(t *testing.T) {
	player := domain.NewPlayer(uuid.New(), nil, "John", "Smith", "forward", nil)
	evaluationRepo := &fakeEvaluationRepo{}
	playerRepo := &fakePlayerRepo{players: map[uuid.UUID]*domain.Player{player.ID: player}}
	notifier := &fakeNotifier{}
	uc := NewSubmitEvaluationUseCase(evaluationRepo, playerRepo, notifier)

	evaluation, err := uc.Execute(context.Background(), player.ID, uuid.New(), 8, 7, 6, 9, "solid game")
	require.NoError(t, err)

	require.Len(t, evaluationRepo.created, 1)
	require.Len(t, notifier.notifications, 1)
	assert.Equal(t, domain.EventEvaluationSubmitted, notifier.notifications[0].Event)

	body := notifier.notifications[0].Payload.Body
	assert.Equal(t, "John Smith", body["player"])
	assert.Equal(t, evaluation.Average(), body["average"])
	assert.Equal(t, "solid game", body["comment"])
}

func TestSubmitEvaluationScoresOutOfRange(t *testing.T) {
	evaluationRepo := &fakeEvaluationRepo{}
	notifier := &fakeNotifier{}
	uc := NewSubmitEvaluationUseCase(evaluationRepo, &fakePlayerRepo{}, notifier)

	_, err := uc.Execute(context.Background(), uuid.New(), uuid.New(), 0, 5, 5, 5, "")

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, evaluationRepo.created)
	assert.Empty(t, notifier.notifications)
}

func TestSubmitEvaluationPlayerNotFound(t *testing.T) {
	evaluationRepo := &fakeEvaluationRepo{}
	notifier := &fakeNotifier{}
	uc := NewSubmitEvaluationUseCase(evaluationRepo, &fakePlayerRepo{}, notifier)

	_, err := uc.Execute(context.Background(), uuid.New(), uuid.New(), 5, 5, 5, 5, "")

	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, notifier.notifications)
}
