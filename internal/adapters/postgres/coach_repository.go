package postgres_adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/contextkeys"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/port"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CoachRepository - реализация CoachRepositoryPort для PostgreSQL.
type CoachRepository struct {
	pool *pgxpool.Pool
}

func NewCoachRepository(pool *pgxpool.Pool) (*CoachRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &CoachRepository{pool: pool}, nil
}

// CreateWithUser создает пользователя и профиль тренера в одной транзакции.
// Нарушение уникальности email/username мапится в доменную ошибку.
func (r *CoachRepository) CreateWithUser(ctx context.Context, user *domain.User, coach *domain.Coach) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "CoachRepository",
		"method":    "CreateWithUser",
		"coach_id":  coach.ID.String(),
		"email":     user.Email,
	})

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		repoLogger.Error("Failed to begin transaction", err, nil)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	// Rollback после Commit безвреден.
	defer tx.Rollback(ctx)

	userQuery := `INSERT INTO users (id, username, email, password_hash, role, created_at) VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := tx.Exec(ctx, userQuery, user.ID, user.Username, user.Email, user.PasswordHash, user.Role, user.CreatedAt); err != nil {
		if domainErr := mapUniqueViolation(err); domainErr != nil {
			repoLogger.Warn("User insert hit a unique constraint", port.Fields{"reason": domainErr.Error()})
			return domainErr
		}
		repoLogger.Error("Failed to create user for coach", err, nil)
		return fmt.Errorf("failed to create user for coach: %w", err)
	}

	coachQuery := `INSERT INTO coaches (id, user_id, first_name, last_name, phone, qualification, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := tx.Exec(ctx, coachQuery, coach.ID, coach.UserID, coach.FirstName, coach.LastName, coach.Phone, coach.Qualification, coach.CreatedAt); err != nil {
		repoLogger.Error("Failed to create coach profile", err, nil)
		return fmt.Errorf("failed to create coach profile: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		repoLogger.Error("Failed to commit coach transaction", err, nil)
		return fmt.Errorf("failed to commit coach transaction: %w", err)
	}

	repoLogger.Debug("Coach created successfully.", nil)
	return nil
}

// Update обновляет профиль тренера.
func (r *CoachRepository) Update(ctx context.Context, coach *domain.Coach) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "CoachRepository",
		"method":    "Update",
		"coach_id":  coach.ID.String(),
	})

	query := `UPDATE coaches SET first_name = $2, last_name = $3, phone = $4, qualification = $5 WHERE id = $1`

	cmdTag, err := r.pool.Exec(ctx, query, coach.ID, coach.FirstName, coach.LastName, coach.Phone, coach.Qualification)
	if err != nil {
		repoLogger.Error("Failed to update coach", err, port.Fields{"query": query})
		return fmt.Errorf("failed to update coach: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		repoLogger.Warn("Coach not found for update.", nil)
		return domain.ErrNotFound
	}

	repoLogger.Debug("Coach updated successfully.", nil)
	return nil
}

// Delete удаляет тренера вместе с учетной записью (через пользователя).
func (r *CoachRepository) Delete(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "CoachRepository",
		"method":    "Delete",
		"coach_id":  id.String(),
	})

	// Удаляем User - профиль тренера уходит каскадом (FK ON DELETE CASCADE).
	query := `DELETE FROM users WHERE id = (SELECT user_id FROM coaches WHERE id = $1)`

	cmdTag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		repoLogger.Error("Failed to delete coach", err, port.Fields{"query": query})
		return fmt.Errorf("failed to delete coach: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		repoLogger.Warn("Coach not found for delete.", nil)
		return domain.ErrNotFound
	}

	repoLogger.Debug("Coach deleted successfully.", nil)
	return nil
}

// FindByID находит тренера по ID. Возвращает (nil, nil), если записи нет.
func (r *CoachRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Coach, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "CoachRepository",
		"method":    "FindByID",
		"coach_id":  id.String(),
	})

	query := `SELECT id, user_id, first_name, last_name, phone, qualification, created_at FROM coaches WHERE id = $1`

	var coach domain.Coach
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&coach.ID,
		&coach.UserID,
		&coach.FirstName,
		&coach.LastName,
		&coach.Phone,
		&coach.Qualification,
		&coach.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Warn("Coach not found by ID.", nil)
			return nil, nil
		}
		repoLogger.Error("Failed to find coach by ID", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to find coach by id: %w", err)
	}

	return &coach, nil
}

// List возвращает всех тренеров.
func (r *CoachRepository) List(ctx context.Context) ([]domain.Coach, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "CoachRepository",
		"method":    "List",
	})

	query := `SELECT id, user_id, first_name, last_name, phone, qualification, created_at FROM coaches ORDER BY last_name, first_name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		repoLogger.Error("Failed to list coaches", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to list coaches: %w", err)
	}
	defer rows.Close()

	coaches := make([]domain.Coach, 0)
	for rows.Next() {
		var coach domain.Coach
		if err := rows.Scan(&coach.ID, &coach.UserID, &coach.FirstName, &coach.LastName, &coach.Phone, &coach.Qualification, &coach.CreatedAt); err != nil {
			repoLogger.Error("Failed to scan coach row", err, nil)
			return nil, fmt.Errorf("failed to scan coach row: %w", err)
		}
		coaches = append(coaches, coach)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate coach rows: %w", err)
	}

	return coaches, nil
}
