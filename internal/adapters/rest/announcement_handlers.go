package rest

import (
	"encoding/json"
	"net/http"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/contextkeys"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/port"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/port/usecases_port"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type AnnouncementHandler struct {
	createAnnouncementUC usecases_port.CreateAnnouncementUseCasePort
	listAnnouncementsUC  usecases_port.ListTeamAnnouncementsUseCasePort
}

func NewAnnouncementHandler(createUC usecases_port.CreateAnnouncementUseCasePort, listUC usecases_port.ListTeamAnnouncementsUseCasePort) *AnnouncementHandler {
	return &AnnouncementHandler{
		createAnnouncementUC: createUC,
		listAnnouncementsUC:  listUC,
	}
}

func (h *AnnouncementHandler) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateAnnouncement"})

	var req CreateAnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode create announcement request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	teamID, err := uuid.Parse(req.TeamID)
	if err != nil {
		logger.Warn("Invalid 'team_id' format", port.Fields{"team_id": req.TeamID})
		WriteJSONError(w, http.StatusBadRequest, "Invalid 'team_id' format")
		return
	}

	announcement, err := h.createAnnouncementUC.Execute(r.Context(), teamID, actorID(r), req.Title, req.Message)
	if err != nil {
		logger.Error("CreateAnnouncement use case failed", err, nil)
		writeDomainError(w, err)
		return
	}

	logger.Info("Announcement created successfully", port.Fields{"announcement_id": announcement.ID.String()})
	RespondWithJSON(w, http.StatusCreated, toAnnouncementResponse(announcement))
}

func (h *AnnouncementHandler) ListTeamAnnouncements(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListTeamAnnouncements"})

	teamID, err := uuid.Parse(chi.URLParam(r, "teamID"))
	if err != nil {
		logger.Warn("Invalid team ID format in URL", port.Fields{"provided_id": chi.URLParam(r, "teamID")})
		WriteJSONError(w, http.StatusBadRequest, "Invalid team ID in URL")
		return
	}

	announcements, err := h.listAnnouncementsUC.Execute(r.Context(), teamID)
	if err != nil {
		logger.Error("ListTeamAnnouncements use case failed", err, nil)
		writeDomainError(w, err)
		return
	}

	responses := make([]AnnouncementResponse, 0, len(announcements))
	for i := range announcements {
		responses = append(responses, toAnnouncementResponse(&announcements[i]))
	}
	RespondWithJSON(w, http.StatusOK, responses)
}
