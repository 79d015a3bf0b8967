package postgres_adapter

import (
	"context"
	"fmt"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/contextkeys"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/port"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DrillRepository - реализация DrillRepositoryPort для PostgreSQL.
type DrillRepository struct {
	pool *pgxpool.Pool
}

func NewDrillRepository(pool *pgxpool.Pool) (*DrillRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &DrillRepository{pool: pool}, nil
}

func (r *DrillRepository) Create(ctx context.Context, drill *domain.Drill) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "DrillRepository",
		"method":    "Create",
		"drill_id":  drill.ID.String(),
	})

	query := `INSERT INTO drills (id, title, category, description, video_url, created_by, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query, drill.ID, drill.Title, drill.Category, drill.Description, drill.VideoURL, drill.CreatedBy, drill.CreatedAt)
	if err != nil {
		repoLogger.Error("Failed to create drill", err, port.Fields{"query": query})
		return fmt.Errorf("failed to create drill: %w", err)
	}

	repoLogger.Debug("Drill created successfully.", nil)
	return nil
}

func (r *DrillRepository) List(ctx context.Context) ([]domain.Drill, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "DrillRepository",
		"method":    "List",
	})

	query := `SELECT id, title, category, description, video_url, created_by, created_at FROM drills ORDER BY category, title`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		repoLogger.Error("Failed to list drills", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to list drills: %w", err)
	}
	defer rows.Close()

	drills := make([]domain.Drill, 0)
	for rows.Next() {
		var d domain.Drill
		if err := rows.Scan(&d.ID, &d.Title, &d.Category, &d.Description, &d.VideoURL, &d.CreatedBy, &d.CreatedAt); err != nil {
			repoLogger.Error("Failed to scan drill row", err, nil)
			return nil, fmt.Errorf("failed to scan drill row: %w", err)
		}
		drills = append(drills, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate drill rows: %w", err)
	}

	return drills, nil
}
