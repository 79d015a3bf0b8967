package postgres_adapter

import (
	"errors"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolationCode - код ошибки PostgreSQL для нарушения unique constraint.
const uniqueViolationCode = "23505"

// mapUniqueViolation переводит нарушение unique constraint в доменную ошибку
// по имени констрейнта. Возвращает nil, если ошибка не про уникальность -
// вызывающий тогда оборачивает ее как обычную ошибку БД.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return nil
	}

	switch pgErr.ConstraintName {
	case "users_email_key":
		return domain.ErrEmailInUse
	case "users_username_key":
		return domain.ErrUsernameInUse
	case "teams_name_key":
		return domain.ErrTeamNameInUse
	default:
		// Неизвестный unique constraint - пусть всплывет как общая ошибка,
		// но след от него останется в тексте.
		return nil
	}
}
