package domain

import (
	"time"

	"github.com/google/uuid"
)

// Coach - профиль тренера. Учетные данные лежат в связанном User.
type Coach struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	FirstName     string
	LastName      string
	Phone         string
	Qualification string
	CreatedAt     time.Time
}

// CoachAccount - композит "пользователь + профиль", который возвращается
// наружу после создания тренера. TempPassword показывается ровно один раз,
// в БД хранится только хэш.
type CoachAccount struct {
	User         *User
	Coach        *Coach
	TempPassword string
}

func NewCoach(userID uuid.UUID, firstName, lastName, phone, qualification string) *Coach {
	return &Coach{
		ID:            uuid.New(),
		UserID:        userID,
		FirstName:     firstName,
		LastName:      lastName,
		Phone:         phone,
		Qualification: qualification,
		CreatedAt:     time.Now().UTC(),
	}
}

// FullName - имя для человекочитаемых уведомлений.
func (c *Coach) FullName() string {
	return c.FirstName + " " + c.LastName
}
