package domain

import (
	"time"

	"github.com/google/uuid"
)

// Announcement - объявление для команды. В таксономию вебхука не входит,
// поэтому уведомление при создании не отправляется.
type Announcement struct {
	ID        uuid.UUID
	TeamID    uuid.UUID
	AuthorID  uuid.UUID
	Title     string
	Message   string
	CreatedAt time.Time
}

func NewAnnouncement(teamID, authorID uuid.UUID, title, message string) *Announcement {
	return &Announcement{
		ID:        uuid.New(),
		TeamID:    teamID,
		AuthorID:  authorID,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
}
