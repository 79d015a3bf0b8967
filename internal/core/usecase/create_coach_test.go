package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/adapters/webhook"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCoachSuccess(t *testing.T) {
	repo := &fakeCoachRepo{}
	notifier := &fakeNotifier{}
	uc := NewCreateCoachUseCase(repo, notifier)

	account, err := uc.Execute(context.Background(), "José", "Martínez", "jose@example.com", "+375291234567", "UEFA B")
	require.NoError(t, err)

	require.NotNil(t, account)
	assert.Equal(t, "j.martinez", account.User.Username)
	assert.Equal(t, domain.RoleCoach, account.User.Role)
	assert.NotEmpty(t, account.TempPassword)
	require.Len(t, repo.created, 1)

	// Уведомление уходит после успешной записи и несет учетные данные.
	require.Len(t, notifier.notifications, 1)
	assert.Equal(t, domain.EventCoachCreated, notifier.notifications[0].Event)
	body := notifier.notifications[0].Payload.Body
	assert.Equal(t, "José Martínez", body["name"])
	assert.Equal(t, account.TempPassword, body["temp_password"])
	assert.Equal(t, "UEFA B", body["qualification"])
}

func TestCreateCoachValidation(t *testing.T) {
	repo := &fakeCoachRepo{}
	notifier := &fakeNotifier{}
	uc := NewCreateCoachUseCase(repo, notifier)

	_, err := uc.Execute(context.Background(), "José", "", "jose@example.com", "", "")

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, repo.created)
	assert.Empty(t, notifier.notifications)
}

func TestCreateCoachSucceedsWhenWebhookIsDown(t *testing.T) {
	repo := &fakeCoachRepo{}
	// Реальный нотификатор, направленный на закрытый порт: доставка упадет,
	// но результат операции от этого не зависит.
	deadNotifier := webhook.NewNotifier(webhook.Config{
		URL:     "http://127.0.0.1:1/webhook",
		Timeout: time.Second,
	}, &fakeLogger{})
	uc := NewCreateCoachUseCase(repo, deadNotifier)

	account, err := uc.Execute(context.Background(), "John", "Smith", "john@example.com", "", "")

	require.NoError(t, err)
	require.NotNil(t, account)
	require.Len(t, repo.created, 1)
}

func TestCreateCoachRepositoryConflict(t *testing.T) {
	repo := &fakeCoachRepo{createErr: domain.ErrEmailInUse}
	notifier := &fakeNotifier{}
	uc := NewCreateCoachUseCase(repo, notifier)

	_, err := uc.Execute(context.Background(), "John", "Smith", "john@example.com", "", "")

	require.ErrorIs(t, err, domain.ErrEmailInUse)
	// Запись не состоялась - уведомления быть не должно.
	assert.Empty(t, notifier.notifications)
}
