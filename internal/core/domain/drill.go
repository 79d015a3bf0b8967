package domain

import (
	"time"

	"github.com/google/uuid"
)

// Drill - упражнение из библиотеки клуба. На упражнения ссылаются
// домашние задания (по названию, библиотека небольшая).
type Drill struct {
	ID          uuid.UUID
	Title       string
	Category    string
	Description string
	VideoURL    string
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
}

func NewDrill(createdBy uuid.UUID, title, category, description, videoURL string) *Drill {
	return &Drill{
		ID:          uuid.New(),
		Title:       title,
		Category:    category,
		Description: description,
		VideoURL:    videoURL,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now().UTC(),
	}
}
