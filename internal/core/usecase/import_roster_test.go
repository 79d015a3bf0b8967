package usecase

import (
	"context"
	"testing"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportRosterMixedResult(t *testing.T) {
	playerRepo := &fakePlayerRepo{
		createErrByEmail: map[string]error{"dup@example.com": domain.ErrEmailInUse},
	}
	notifier := &fakeNotifier{}
	createPlayerUC := NewCreatePlayerUseCase(playerRepo, &fakeTeamRepo{}, notifier)
	importLogRepo := &fakeImportLogRepo{}
	uc := NewImportRosterUseCase(createPlayerUC, importLogRepo)

	rows := []domain.RosterRow{
		{FirstName: "John", LastName: "Smith", Email: "john@example.com", Position: "forward"},
		{FirstName: "Dup", LastName: "Licate", Email: "dup@example.com"},
		{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Position: "keeper"},
	}

	importLog, err := uc.Execute(context.Background(), uuid.New(), "roster.json", nil, rows)
	require.NoError(t, err)

	assert.Equal(t, 3, importLog.Total)
	assert.Equal(t, 2, importLog.Succeeded)
	assert.Equal(t, 1, importLog.Failed)
	require.Len(t, importLog.Errors, 1)
	assert.Contains(t, importLog.Errors[0], "dup@example.com")

	// Каждая успешная строка дает отдельное PLAYER_CREATED, упавшая - нет.
	require.Len(t, notifier.notifications, 2)
	for _, n := range notifier.notifications {
		assert.Equal(t, domain.EventPlayerCreated, n.Event)
	}

	// Итог импорта сохранен.
	require.NotNil(t, importLogRepo.saved)
	assert.Equal(t, importLog.ID, importLogRepo.saved.ID)
}

func TestImportRosterEmpty(t *testing.T) {
	notifier := &fakeNotifier{}
	createPlayerUC := NewCreatePlayerUseCase(&fakePlayerRepo{}, &fakeTeamRepo{}, notifier)
	importLogRepo := &fakeImportLogRepo{}
	uc := NewImportRosterUseCase(createPlayerUC, importLogRepo)

	_, err := uc.Execute(context.Background(), uuid.New(), "empty.json", nil, nil)

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Nil(t, importLogRepo.saved)
	assert.Empty(t, notifier.notifications)
}
