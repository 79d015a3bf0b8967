package usecase

import (
	"context"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/contextkeys"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/port"
	"github.com/google/uuid"
)

type ListTeamAnnouncementsUseCase struct {
	announcementRepo port.AnnouncementRepositoryPort
}

func NewListTeamAnnouncementsUseCase(announcementRepo port.AnnouncementRepositoryPort) *ListTeamAnnouncementsUseCase {
	return &ListTeamAnnouncementsUseCase{announcementRepo: announcementRepo}
}

func (uc *ListTeamAnnouncementsUseCase) Execute(ctx context.Context, teamID uuid.UUID) ([]domain.Announcement, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	announcements, err := uc.announcementRepo.ListByTeam(ctx, teamID)
	if err != nil {
		logger.Error("Failed to list announcements", err, port.Fields{"use_case": "ListTeamAnnouncements", "team_id": teamID.String()})
		return nil, err
	}

	return announcements, nil
}
