package usecase

import (
	"context"
	"fmt"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/contextkeys"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/port"
)

// CreateCoachUseCase создает тренера: User + профиль одной транзакцией,
// затем best-effort уведомление во внешнюю автоматизацию.
type CreateCoachUseCase struct {
	coachRepo port.CoachRepositoryPort
	notifier  port.NotifierPort
}

func NewCreateCoachUseCase(coachRepo port.CoachRepositoryPort, notifier port.NotifierPort) *CreateCoachUseCase {
	return &CreateCoachUseCase{
		coachRepo: coachRepo,
		notifier:  notifier,
	}
}

func (uc *CreateCoachUseCase) Execute(ctx context.Context, firstName, lastName, email, phone, qualification string) (*domain.CoachAccount, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreateCoach",
		"email":    email,
	})

	if firstName == "" || lastName == "" || email == "" {
		ucLogger.Warn("Validation failed: first_name, last_name and email are required", nil)
		return nil, fmt.Errorf("%w: first_name, last_name and email are required", domain.ErrValidation)
	}

	ucLogger.Info("Use case started: attempting to create coach", nil)

	// Генерируем учетные данные. Временный пароль вернем наружу один раз,
	// в БД попадет только хэш.
	username := domain.GenerateUsername(firstName, lastName)
	tempPassword := domain.NewTempPassword()

	user, err := domain.NewUser(username, email, tempPassword, domain.RoleCoach)
	if err != nil {
		ucLogger.Error("Failed to create user domain object", err, nil)
		return nil, err
	}
	coach := domain.NewCoach(user.ID, firstName, lastName, phone, qualification)

	// Ошибки БД (в т.ч. конфликт уникальности) всплывают к вызывающему
	// и до нотификатора дело не доходит.
	if err := uc.coachRepo.CreateWithUser(ctx, user, coach); err != nil {
		ucLogger.Error("Repository failed to create coach", err, nil)
		return nil, err
	}

	// Запись уже состоялась - уведомление не влияет на результат вызова.
	uc.notifier.Notify(ctx, domain.EventCoachCreated, domain.NotificationPayload{
		Body: map[string]interface{}{
			"name":          coach.FullName(),
			"email":         user.Email,
			"username":      user.Username,
			"temp_password": tempPassword,
			"qualification": coach.Qualification,
		},
	})

	ucLogger.Info("Use case finished: coach created successfully", port.Fields{"coach_id": coach.ID.String()})
	return &domain.CoachAccount{User: user, Coach: coach, TempPassword: tempPassword}, nil
}
