package domain

import (
	"time"

	"github.com/google/uuid"
)

// RosterRow - одна строка загружаемого состава. Формат проверяется
// JSON-схемой на границе, здесь уже валидные данные.
type RosterRow struct {
	FirstName string
	LastName  string
	Email     string
	Position  string
}

// ImportLog - итог массового импорта состава: сколько строк прошло,
// сколько отвалилось и с какими ошибками.
type ImportLog struct {
	ID        uuid.UUID
	FileName  string
	Total     int
	Succeeded int
	Failed    int
	Errors    []string
	CreatedBy uuid.UUID
	CreatedAt time.Time
}

func NewImportLog(createdBy uuid.UUID, fileName string) *ImportLog {
	return &ImportLog{
		ID:        uuid.New(),
		FileName:  fileName,
		CreatedBy: createdBy,
		CreatedAt: time.Now().UTC(),
	}
}

// RecordSuccess учитывает успешно импортированную строку.
func (l *ImportLog) RecordSuccess() {
	l.Total++
	l.Succeeded++
}

// RecordFailure учитывает строку с ошибкой.
func (l *ImportLog) RecordFailure(reason string) {
	l.Total++
	l.Failed++
	l.Errors = append(l.Errors, reason)
}
