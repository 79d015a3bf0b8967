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

// EvaluationRepository - реализация EvaluationRepositoryPort для PostgreSQL.
type EvaluationRepository struct {
	pool *pgxpool.Pool
}

func NewEvaluationRepository(pool *pgxpool.Pool) (*EvaluationRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &EvaluationRepository{pool: pool}, nil
}

func (r *EvaluationRepository) Create(ctx context.Context, evaluation *domain.Evaluation) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":     "EvaluationRepository",
		"method":        "Create",
		"evaluation_id": evaluation.ID.String(),
		"player_id":     evaluation.PlayerID.String(),
	})

	query := `INSERT INTO evaluations (id, player_id, coach_id, technical, tactical, physical, attitude, comment, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		evaluation.ID, evaluation.PlayerID, evaluation.CoachID,
		evaluation.Technical, evaluation.Tactical, evaluation.Physical, evaluation.Attitude,
		evaluation.Comment, evaluation.CreatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to create evaluation", err, port.Fields{"query": query})
		return fmt.Errorf("failed to create evaluation: %w", err)
	}

	repoLogger.Debug("Evaluation created successfully.", nil)
	return nil
}

func (r *EvaluationRepository) ListByPlayer(ctx context.Context, playerID uuid.UUID) ([]domain.Evaluation, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "EvaluationRepository",
		"method":    "ListByPlayer",
		"player_id": playerID.String(),
	})

	query := `SELECT id, player_id, coach_id, technical, tactical, physical, attitude, comment, created_at
	          FROM evaluations WHERE player_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, playerID)
	if err != nil {
		repoLogger.Error("Failed to list evaluations", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}
	defer rows.Close()

	evaluations := make([]domain.Evaluation, 0)
	for rows.Next() {
		var e domain.Evaluation
		if err := rows.Scan(&e.ID, &e.PlayerID, &e.CoachID, &e.Technical, &e.Tactical, &e.Physical, &e.Attitude, &e.Comment, &e.CreatedAt); err != nil {
			repoLogger.Error("Failed to scan evaluation row", err, nil)
			return nil, fmt.Errorf("failed to scan evaluation row: %w", err)
		}
		evaluations = append(evaluations, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate evaluation rows: %w", err)
	}

	return evaluations, nil
}
