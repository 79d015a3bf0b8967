package domain

import (
	"time"

	"github.com/google/uuid"
)

// Границы оценок. Шкала 1..10, как в бумажных протоколах клуба.
const (
	EvaluationScoreMin = 1
	EvaluationScoreMax = 10
)

// Evaluation - оценка игрока тренером по четырем направлениям.
type Evaluation struct {
	ID        uuid.UUID
	PlayerID  uuid.UUID
	CoachID   uuid.UUID
	Technical int
	Tactical  int
	Physical  int
	Attitude  int
	Comment   string
	CreatedAt time.Time
}

func NewEvaluation(playerID, coachID uuid.UUID, technical, tactical, physical, attitude int, comment string) *Evaluation {
	return &Evaluation{
		ID:        uuid.New(),
		PlayerID:  playerID,
		CoachID:   coachID,
		Technical: technical,
		Tactical:  tactical,
		Physical:  physical,
		Attitude:  attitude,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	}
}

// ScoresValid проверяет, что все оценки попадают в шкалу.
func (e *Evaluation) ScoresValid() bool {
	for _, s := range []int{e.Technical, e.Tactical, e.Physical, e.Attitude} {
		if s < EvaluationScoreMin || s > EvaluationScoreMax {
			return false
		}
	}
	return true
}

// Average - средний балл, уходит в уведомление и на дашборд.
func (e *Evaluation) Average() float64 {
	return float64(e.Technical+e.Tactical+e.Physical+e.Attitude) / 4.0
}
