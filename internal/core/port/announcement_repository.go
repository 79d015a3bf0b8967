package port

import (
	"context"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/google/uuid"
)

type AnnouncementRepositoryPort interface {
	Create(ctx context.Context, announcement *domain.Announcement) error
	ListByTeam(ctx context.Context, teamID uuid.UUID) ([]domain.Announcement, error)
}
