package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEvaluationScoresValid(t *testing.T) {
	playerID, coachID := uuid.New(), uuid.New()

	valid := NewEvaluation(playerID, coachID, 1, 10, 5, 7, "")
	assert.True(t, valid.ScoresValid())

	tooLow := NewEvaluation(playerID, coachID, 0, 5, 5, 5, "")
	assert.False(t, tooLow.ScoresValid())

	tooHigh := NewEvaluation(playerID, coachID, 5, 5, 11, 5, "")
	assert.False(t, tooHigh.ScoresValid())
}

func TestEvaluationAverage(t *testing.T) {
	evaluation := NewEvaluation(uuid.New(), uuid.New(), 8, 7, 6, 9, "solid game")

	assert.InDelta(t, 7.5, evaluation.Average(), 0.0001)
}
