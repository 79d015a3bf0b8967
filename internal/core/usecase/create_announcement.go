package usecase

import (
	"context"
	"fmt"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/contextkeys"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/port"
	"github.com/google/uuid"
)

// CreateAnnouncementUseCase сохраняет объявление для команды.
// Объявления не входят в таксономию вебхука, поэтому нотификатор
// здесь не вызывается.
type CreateAnnouncementUseCase struct {
	announcementRepo port.AnnouncementRepositoryPort
	teamRepo         port.TeamRepositoryPort
}

func NewCreateAnnouncementUseCase(announcementRepo port.AnnouncementRepositoryPort, teamRepo port.TeamRepositoryPort) *CreateAnnouncementUseCase {
	return &CreateAnnouncementUseCase{
		announcementRepo: announcementRepo,
		teamRepo:         teamRepo,
	}
}

func (uc *CreateAnnouncementUseCase) Execute(ctx context.Context, teamID, authorID uuid.UUID, title, message string) (*domain.Announcement, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreateAnnouncement",
		"team_id":  teamID.String(),
	})

	if title == "" || message == "" {
		ucLogger.Warn("Validation failed: title and message are required", nil)
		return nil, fmt.Errorf("%w: title and message are required", domain.ErrValidation)
	}

	team, err := uc.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		ucLogger.Error("Repository failed while loading team", err, nil)
		return nil, err
	}
	if team == nil {
		ucLogger.Warn("Team not found for announcement", nil)
		return nil, domain.ErrNotFound
	}

	announcement := domain.NewAnnouncement(teamID, authorID, title, message)

	if err := uc.announcementRepo.Create(ctx, announcement); err != nil {
		ucLogger.Error("Repository failed to create announcement", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished: announcement created successfully", port.Fields{"announcement_id": announcement.ID.String()})
	return announcement, nil
}
