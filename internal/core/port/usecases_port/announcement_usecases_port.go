package usecases_port

import (
	"context"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/google/uuid"
)

type CreateAnnouncementUseCasePort interface {
	Execute(ctx context.Context, teamID, authorID uuid.UUID, title, message string) (*domain.Announcement, error)
}

type ListTeamAnnouncementsUseCasePort interface {
	Execute(ctx context.Context, teamID uuid.UUID) ([]domain.Announcement, error)
}
