package usecases_port

import (
	"context"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/google/uuid"
)

type ImportRosterUseCasePort interface {
	Execute(ctx context.Context, createdBy uuid.UUID, fileName string, teamID *uuid.UUID, rows []domain.RosterRow) (*domain.ImportLog, error)
}
