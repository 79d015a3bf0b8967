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

// PlayerRepository - реализация PlayerRepositoryPort для PostgreSQL.
type PlayerRepository struct {
	pool *pgxpool.Pool
}

func NewPlayerRepository(pool *pgxpool.Pool) (*PlayerRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PlayerRepository{pool: pool}, nil
}

// CreateWithUser создает пользователя и профиль игрока в одной транзакции.
func (r *PlayerRepository) CreateWithUser(ctx context.Context, user *domain.User, player *domain.Player) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PlayerRepository",
		"method":    "CreateWithUser",
		"player_id": player.ID.String(),
		"email":     user.Email,
	})

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		repoLogger.Error("Failed to begin transaction", err, nil)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	userQuery := `INSERT INTO users (id, username, email, password_hash, role, created_at) VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := tx.Exec(ctx, userQuery, user.ID, user.Username, user.Email, user.PasswordHash, user.Role, user.CreatedAt); err != nil {
		if domainErr := mapUniqueViolation(err); domainErr != nil {
			repoLogger.Warn("User insert hit a unique constraint", port.Fields{"reason": domainErr.Error()})
			return domainErr
		}
		repoLogger.Error("Failed to create user for player", err, nil)
		return fmt.Errorf("failed to create user for player: %w", err)
	}

	playerQuery := `INSERT INTO players (id, user_id, team_id, first_name, last_name, position, birth_date, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := tx.Exec(ctx, playerQuery, player.ID, player.UserID, player.TeamID, player.FirstName, player.LastName, player.Position, player.BirthDate, player.CreatedAt); err != nil {
		repoLogger.Error("Failed to create player profile", err, nil)
		return fmt.Errorf("failed to create player profile: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		repoLogger.Error("Failed to commit player transaction", err, nil)
		return fmt.Errorf("failed to commit player transaction: %w", err)
	}

	repoLogger.Debug("Player created successfully.", nil)
	return nil
}

func (r *PlayerRepository) Update(ctx context.Context, player *domain.Player) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PlayerRepository",
		"method":    "Update",
		"player_id": player.ID.String(),
	})

	query := `UPDATE players SET first_name = $2, last_name = $3, position = $4, team_id = $5 WHERE id = $1`

	cmdTag, err := r.pool.Exec(ctx, query, player.ID, player.FirstName, player.LastName, player.Position, player.TeamID)
	if err != nil {
		repoLogger.Error("Failed to update player", err, port.Fields{"query": query})
		return fmt.Errorf("failed to update player: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		repoLogger.Warn("Player not found for update.", nil)
		return domain.ErrNotFound
	}

	repoLogger.Debug("Player updated successfully.", nil)
	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PlayerRepository",
		"method":    "Delete",
		"player_id": id.String(),
	})

	// Профиль игрока уходит каскадом вместе с пользователем.
	query := `DELETE FROM users WHERE id = (SELECT user_id FROM players WHERE id = $1)`

	cmdTag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		repoLogger.Error("Failed to delete player", err, port.Fields{"query": query})
		return fmt.Errorf("failed to delete player: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		repoLogger.Warn("Player not found for delete.", nil)
		return domain.ErrNotFound
	}

	repoLogger.Debug("Player deleted successfully.", nil)
	return nil
}

// FindByID возвращает (nil, nil), если игрока нет.
func (r *PlayerRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PlayerRepository",
		"method":    "FindByID",
		"player_id": id.String(),
	})

	query := `SELECT id, user_id, team_id, first_name, last_name, position, birth_date, created_at FROM players WHERE id = $1`

	var player domain.Player
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&player.ID,
		&player.UserID,
		&player.TeamID,
		&player.FirstName,
		&player.LastName,
		&player.Position,
		&player.BirthDate,
		&player.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Warn("Player not found by ID.", nil)
			return nil, nil
		}
		repoLogger.Error("Failed to find player by ID", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to find player by id: %w", err)
	}

	return &player, nil
}

func (r *PlayerRepository) List(ctx context.Context, teamID *uuid.UUID) ([]domain.Player, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PlayerRepository",
		"method":    "List",
	})

	query := `SELECT id, user_id, team_id, first_name, last_name, position, birth_date, created_at FROM players`
	args := []interface{}{}
	if teamID != nil {
		query += ` WHERE team_id = $1`
		args = append(args, *teamID)
	}
	query += ` ORDER BY last_name, first_name`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to list players", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	players := make([]domain.Player, 0)
	for rows.Next() {
		var player domain.Player
		if err := rows.Scan(&player.ID, &player.UserID, &player.TeamID, &player.FirstName, &player.LastName, &player.Position, &player.BirthDate, &player.CreatedAt); err != nil {
			repoLogger.Error("Failed to scan player row", err, nil)
			return nil, fmt.Errorf("failed to scan player row: %w", err)
		}
		players = append(players, player)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate player rows: %w", err)
	}

	return players, nil
}
