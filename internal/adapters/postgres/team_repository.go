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

// TeamRepository - реализация TeamRepositoryPort для PostgreSQL.
type TeamRepository struct {
	pool *pgxpool.Pool
}

func NewTeamRepository(pool *pgxpool.Pool) (*TeamRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &TeamRepository{pool: pool}, nil
}

func (r *TeamRepository) Create(ctx context.Context, team *domain.Team) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "TeamRepository",
		"method":    "Create",
		"team_id":   team.ID.String(),
		"team_name": team.Name,
	})

	query := `INSERT INTO teams (id, name, season, coach_id, created_at) VALUES ($1, $2, $3, $4, $5)`

	if _, err := r.pool.Exec(ctx, query, team.ID, team.Name, team.Season, team.CoachID, team.CreatedAt); err != nil {
		if domainErr := mapUniqueViolation(err); domainErr != nil {
			repoLogger.Warn("Team insert hit a unique constraint", port.Fields{"reason": domainErr.Error()})
			return domainErr
		}
		repoLogger.Error("Failed to create team", err, port.Fields{"query": query})
		return fmt.Errorf("failed to create team: %w", err)
	}

	repoLogger.Debug("Team created successfully.", nil)
	return nil
}

// FindByID возвращает (nil, nil), если команды нет.
func (r *TeamRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Team, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "TeamRepository",
		"method":    "FindByID",
		"team_id":   id.String(),
	})

	query := `SELECT id, name, season, coach_id, created_at FROM teams WHERE id = $1`

	var team domain.Team
	err := r.pool.QueryRow(ctx, query, id).Scan(&team.ID, &team.Name, &team.Season, &team.CoachID, &team.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Warn("Team not found by ID.", nil)
			return nil, nil
		}
		repoLogger.Error("Failed to find team by ID", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to find team by id: %w", err)
	}

	return &team, nil
}

func (r *TeamRepository) List(ctx context.Context) ([]domain.Team, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "TeamRepository",
		"method":    "List",
	})

	query := `SELECT id, name, season, coach_id, created_at FROM teams ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		repoLogger.Error("Failed to list teams", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	teams := make([]domain.Team, 0)
	for rows.Next() {
		var team domain.Team
		if err := rows.Scan(&team.ID, &team.Name, &team.Season, &team.CoachID, &team.CreatedAt); err != nil {
			repoLogger.Error("Failed to scan team row", err, nil)
			return nil, fmt.Errorf("failed to scan team row: %w", err)
		}
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate team rows: %w", err)
	}

	return teams, nil
}
