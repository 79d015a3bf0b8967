package domain

import (
	"time"

	"github.com/google/uuid"
)

// Homework - домашнее задание игроку: список упражнений и срок.
type Homework struct {
	ID          uuid.UUID
	PlayerID    uuid.UUID
	CoachID     uuid.UUID
	Title       string
	Description string
	Drills      []string
	DueDate     *time.Time
	CreatedAt   time.Time
}

func NewHomework(playerID, coachID uuid.UUID, title, description string, drills []string, dueDate *time.Time) *Homework {
	return &Homework{
		ID:          uuid.New(),
		PlayerID:    playerID,
		CoachID:     coachID,
		Title:       title,
		Description: description,
		Drills:      drills,
		DueDate:     dueDate,
		CreatedAt:   time.Now().UTC(),
	}
}
