package domain

import (
	"time"

	"github.com/google/uuid"
)

// Team - команда. Имя уникально в рамках портала.
type Team struct {
	ID        uuid.UUID
	Name      string
	Season    string
	CoachID   *uuid.UUID
	CreatedAt time.Time
}

func NewTeam(name, season string, coachID *uuid.UUID) *Team {
	return &Team{
		ID:        uuid.New(),
		Name:      name,
		Season:    season,
		CoachID:   coachID,
		CreatedAt: time.Now().UTC(),
	}
}
