package usecase

import (
	"context"
	"testing"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePlayerWithTeam(t *testing.T) {
	team := domain.NewTeam("U-12", "2026", nil)
	playerRepo := &fakePlayerRepo{}
	teamRepo := &fakeTeamRepo{teams: map[uuid.UUID]*domain.Team{team.ID: team}}
	notifier := &fakeNotifier{}
	uc := NewCreatePlayerUseCase(playerRepo, teamRepo, notifier)

	account, err := uc.Execute(context.Background(), "John", "Smith", "john@example.com", "forward", &team.ID, nil)
	require.NoError(t, err)

	require.NotNil(t, account)
	assert.Equal(t, domain.RolePlayer, account.User.Role)
	require.Len(t, playerRepo.created, 1)

	require.Len(t, notifier.notifications, 1)
	assert.Equal(t, domain.EventPlayerCreated, notifier.notifications[0].Event)
	body := notifier.notifications[0].Payload.Body
	assert.Equal(t, "U-12", body["team"])
	assert.Equal(t, "forward", body["position"])
}

func TestCreatePlayerWithoutTeam(t *testing.T) {
	playerRepo := &fakePlayerRepo{}
	notifier := &fakeNotifier{}
	uc := NewCreatePlayerUseCase(playerRepo, &fakeTeamRepo{}, notifier)

	_, err := uc.Execute(context.Background(), "John", "Smith", "john@example.com", "", nil, nil)
	require.NoError(t, err)

	require.Len(t, notifier.notifications, 1)
	// Без команды ключ "team" в теле не появляется.
	assert.NotContains(t, notifier.notifications[0].Payload.Body, "team")
}

func TestCreatePlayerUnknownTeam(t *testing.T) {
	playerRepo := &fakePlayerRepo{}
	notifier := &fakeNotifier{}
	uc := NewCreatePlayerUseCase(playerRepo, &fakeTeamRepo{}, notifier)

	missingTeamID := uuid.New()
	_, err := uc.Execute(context.Background(), "John", "Smith", "john@example.com", "", &missingTeamID, nil)

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, playerRepo.created)
	assert.Empty(t, notifier.notifications)
}
