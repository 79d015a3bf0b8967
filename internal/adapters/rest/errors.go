package rest

import (
	"errors"
	"net/http"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/google/uuid"
)

// writeDomainError переводит доменные ошибки-сентинелы в HTTP-коды.
// Всё, что не распознано - 500 без деталей наружу.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		WriteJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrEmailInUse),
		errors.Is(err, domain.ErrUsernameInUse),
		errors.Is(err, domain.ErrTeamNameInUse):
		WriteJSONError(w, http.StatusConflict, err.Error())
	default:
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// actorID достает ID пользователя из claims. Если аутентификация выключена
// (dev-режим без identity provider), возвращает uuid.Nil.
func actorID(r *http.Request) uuid.UUID {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		return uuid.Nil
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil
	}
	return id
}
