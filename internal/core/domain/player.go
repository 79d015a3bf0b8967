package domain

import (
	"time"

	"github.com/google/uuid"
)

// Player - профиль игрока. TeamID может быть nil, пока игрока не распределили.
type Player struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TeamID    *uuid.UUID
	FirstName string
	LastName  string
	Position  string
	BirthDate *time.Time
	CreatedAt time.Time
}

// PlayerAccount - композит, который сервис возвращает после создания игрока.
type PlayerAccount struct {
	User         *User
	Player       *Player
	TempPassword string
}

func NewPlayer(userID uuid.UUID, teamID *uuid.UUID, firstName, lastName, position string, birthDate *time.Time) *Player {
	return &Player{
		ID:        uuid.New(),
		UserID:    userID,
		TeamID:    teamID,
		FirstName: firstName,
		LastName:  lastName,
		Position:  position,
		BirthDate: birthDate,
		CreatedAt: time.Now().UTC(),
	}
}

func (p *Player) FullName() string {
	return p.FirstName + " " + p.LastName
}
