package postgres_adapter

import (
	"context"
	"fmt"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/contextkeys"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/port"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ImportLogRepository - реализация ImportLogRepositoryPort для PostgreSQL.
type ImportLogRepository struct {
	pool *pgxpool.Pool
}

func NewImportLogRepository(pool *pgxpool.Pool) (*ImportLogRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &ImportLogRepository{pool: pool}, nil
}

func (r *ImportLogRepository) Create(ctx context.Context, log *domain.ImportLog) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":     "ImportLogRepository",
		"method":        "Create",
		"import_log_id": log.ID.String(),
	})

	query := `INSERT INTO import_logs (id, file_name, total, succeeded, failed, errors, created_by, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query, log.ID, log.FileName, log.Total, log.Succeeded, log.Failed, log.Errors, log.CreatedBy, log.CreatedAt)
	if err != nil {
		repoLogger.Error("Failed to create import log", err, port.Fields{"query": query})
		return fmt.Errorf("failed to create import log: %w", err)
	}

	repoLogger.Debug("Import log created successfully.", nil)
	return nil
}
