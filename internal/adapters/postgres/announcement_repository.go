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

// AnnouncementRepository - реализация AnnouncementRepositoryPort для PostgreSQL.
type AnnouncementRepository struct {
	pool *pgxpool.Pool
}

func NewAnnouncementRepository(pool *pgxpool.Pool) (*AnnouncementRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &AnnouncementRepository{pool: pool}, nil
}

func (r *AnnouncementRepository) Create(ctx context.Context, announcement *domain.Announcement) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":       "AnnouncementRepository",
		"method":          "Create",
		"announcement_id": announcement.ID.String(),
		"team_id":         announcement.TeamID.String(),
	})

	query := `INSERT INTO announcements (id, team_id, author_id, title, message, created_at) VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query, announcement.ID, announcement.TeamID, announcement.AuthorID, announcement.Title, announcement.Message, announcement.CreatedAt)
	if err != nil {
		repoLogger.Error("Failed to create announcement", err, port.Fields{"query": query})
		return fmt.Errorf("failed to create announcement: %w", err)
	}

	repoLogger.Debug("Announcement created successfully.", nil)
	return nil
}

func (r *AnnouncementRepository) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]domain.Announcement, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "AnnouncementRepository",
		"method":    "ListByTeam",
		"team_id":   teamID.String(),
	})

	query := `SELECT id, team_id, author_id, title, message, created_at FROM announcements WHERE team_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, teamID)
	if err != nil {
		repoLogger.Error("Failed to list announcements", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	defer rows.Close()

	announcements := make([]domain.Announcement, 0)
	for rows.Next() {
		var a domain.Announcement
		if err := rows.Scan(&a.ID, &a.TeamID, &a.AuthorID, &a.Title, &a.Message, &a.CreatedAt); err != nil {
			repoLogger.Error("Failed to scan announcement row", err, nil)
			return nil, fmt.Errorf("failed to scan announcement row: %w", err)
		}
		announcements = append(announcements, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate announcement rows: %w", err)
	}

	return announcements, nil
}
