package usecase

import (
	"context"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/port"
	"github.com/google/uuid"
)

type fakeLogger struct{}

func (f *fakeLogger) Info(msg string, fields port.Fields)             {}
func (f *fakeLogger) Warn(msg string, fields port.Fields)             {}
func (f *fakeLogger) Error(msg string, err error, fields port.Fields) {}
func (f *fakeLogger) Debug(msg string, fields port.Fields)            {}
func (f *fakeLogger) WithFields(fields port.Fields) port.LoggerPort   { return f }

// Ручные фейки портов. Нам важно проверять порядок "сначала запись, потом
// уведомление", поэтому фейки запоминают вызовы, а не просто отвечают заглушками.

type recordedNotification struct {
	Event   domain.NotificationEvent
	Payload domain.NotificationPayload
}

type fakeNotifier struct {
	notifications []recordedNotification
}

func (f *fakeNotifier) Notify(ctx context.Context, event domain.NotificationEvent, payload domain.NotificationPayload) {
	f.notifications = append(f.notifications, recordedNotification{Event: event, Payload: payload})
}

type fakeCoachRepo struct {
	createErr error
	created   []*domain.Coach
	coaches   map[uuid.UUID]*domain.Coach
}

func (f *fakeCoachRepo) CreateWithUser(ctx context.Context, user *domain.User, coach *domain.Coach) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, coach)
	return nil
}

func (f *fakeCoachRepo) Update(ctx context.Context, coach *domain.Coach) error { return nil }

func (f *fakeCoachRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeCoachRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Coach, error) {
	return f.coaches[id], nil
}

func (f *fakeCoachRepo) List(ctx context.Context) ([]domain.Coach, error) { return nil, nil }

type fakePlayerRepo struct {
	createErrByEmail map[string]error
	created          []*domain.Player
	players          map[uuid.UUID]*domain.Player
}

func (f *fakePlayerRepo) CreateWithUser(ctx context.Context, user *domain.User, player *domain.Player) error {
	if err, conflict := f.createErrByEmail[user.Email]; conflict {
		return err
	}
	f.created = append(f.created, player)
	return nil
}

func (f *fakePlayerRepo) Update(ctx context.Context, player *domain.Player) error { return nil }

func (f *fakePlayerRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakePlayerRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	return f.players[id], nil
}

func (f *fakePlayerRepo) List(ctx context.Context, teamID *uuid.UUID) ([]domain.Player, error) {
	return nil, nil
}

type fakeTeamRepo struct {
	teams map[uuid.UUID]*domain.Team
}

func (f *fakeTeamRepo) Create(ctx context.Context, team *domain.Team) error { return nil }

func (f *fakeTeamRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Team, error) {
	return f.teams[id], nil
}

func (f *fakeTeamRepo) List(ctx context.Context) ([]domain.Team, error) { return nil, nil }

type fakeEvaluationRepo struct {
	createErr error
	created   []*domain.Evaluation
}

func (f *fakeEvaluationRepo) Create(ctx context.Context, evaluation *domain.Evaluation) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, evaluation)
	return nil
}

func (f *fakeEvaluationRepo) ListByPlayer(ctx context.Context, playerID uuid.UUID) ([]domain.Evaluation, error) {
	return nil, nil
}

type fakeImportLogRepo struct {
	saved *domain.ImportLog
}

func (f *fakeImportLogRepo) Create(ctx context.Context, log *domain.ImportLog) error {
	f.saved = log
	return nil
}
