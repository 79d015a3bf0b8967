package postgres_adapter

import (
	"context"
	"fmt"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/contextkeys"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/port"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HomeworkRepository - реализация HomeworkRepositoryPort для PostgreSQL.
// Список упражнений хранится как text[].
type HomeworkRepository struct {
	pool *pgxpool.Pool
}

func NewHomeworkRepository(pool *pgxpool.Pool) (*HomeworkRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &HomeworkRepository{pool: pool}, nil
}

func (r *HomeworkRepository) Create(ctx context.Context, homework *domain.Homework) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "HomeworkRepository",
		"method":      "Create",
		"homework_id": homework.ID.String(),
		"player_id":   homework.PlayerID.String(),
	})

	query := `INSERT INTO homework (id, player_id, coach_id, title, description, drills, due_date, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		homework.ID, homework.PlayerID, homework.CoachID,
		homework.Title, homework.Description, homework.Drills, homework.DueDate, homework.CreatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to create homework", err, port.Fields{"query": query})
		return fmt.Errorf("failed to create homework: %w", err)
	}

	repoLogger.Debug("Homework created successfully.", nil)
	return nil
}

func (r *HomeworkRepository) ListByPlayer(ctx context.Context, playerID uuid.UUID) ([]domain.Homework, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "HomeworkRepository",
		"method":    "ListByPlayer",
		"player_id": playerID.String(),
	})

	query := `SELECT id, player_id, coach_id, title, description, drills, due_date, created_at
	          FROM homework WHERE player_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, playerID)
	if err != nil {
		repoLogger.Error("Failed to list homework", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to list homework: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Homework, 0)
	for rows.Next() {
		var h domain.Homework
		if err := rows.Scan(&h.ID, &h.PlayerID, &h.CoachID, &h.Title, &h.Description, &h.Drills, &h.DueDate, &h.CreatedAt); err != nil {
			repoLogger.Error("Failed to scan homework row", err, nil)
			return nil, fmt.Errorf("failed to scan homework row: %w", err)
		}
		items = append(items, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate homework rows: %w", err)
	}

	return items, nil
}
