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

type CoachHandler struct {
	createCoachUC usecases_port.CreateCoachUseCasePort
	updateCoachUC usecases_port.UpdateCoachUseCasePort
	deleteCoachUC usecases_port.DeleteCoachUseCasePort
	listCoachesUC usecases_port.ListCoachesUseCasePort
}

// NewCoachHandler - конструктор
func NewCoachHandler(
	createUC usecases_port.CreateCoachUseCasePort,
	updateUC usecases_port.UpdateCoachUseCasePort,
	deleteUC usecases_port.DeleteCoachUseCasePort,
	listUC usecases_port.ListCoachesUseCasePort,
) *CoachHandler {
	return &CoachHandler{
		createCoachUC: createUC,
		updateCoachUC: updateUC,
		deleteCoachUC: deleteUC,
		listCoachesUC: listUC,
	}
}

func (h *CoachHandler) CreateCoach(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateCoach"})

	var req CreateCoachRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode create coach request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.createCoachUC.Execute(r.Context(), req.FirstName, req.LastName, req.Email, req.Phone, req.Qualification)
	if err != nil {
		logger.Error("CreateCoach use case failed", err, nil)
		writeDomainError(w, err)
		return
	}

	logger.Info("Coach created successfully", port.Fields{"coach_id": account.Coach.ID.String()})
	RespondWithJSON(w, http.StatusCreated, toCoachAccountResponse(account))
}

func (h *CoachHandler) UpdateCoach(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateCoach"})

	coachID, err := uuid.Parse(chi.URLParam(r, "coachID"))
	if err != nil {
		logger.Warn("Invalid coach ID format in URL", port.Fields{"provided_id": chi.URLParam(r, "coachID")})
		WriteJSONError(w, http.StatusBadRequest, "Invalid coach ID in URL")
		return
	}

	var req UpdateCoachRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode update coach request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	coach, err := h.updateCoachUC.Execute(r.Context(), coachID, req.FirstName, req.LastName, req.Phone, req.Qualification)
	if err != nil {
		logger.Error("UpdateCoach use case failed", err, nil)
		writeDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toCoachResponse(coach))
}

func (h *CoachHandler) DeleteCoach(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteCoach"})

	coachID, err := uuid.Parse(chi.URLParam(r, "coachID"))
	if err != nil {
		logger.Warn("Invalid coach ID format in URL", port.Fields{"provided_id": chi.URLParam(r, "coachID")})
		WriteJSONError(w, http.StatusBadRequest, "Invalid coach ID in URL")
		return
	}

	if err := h.deleteCoachUC.Execute(r.Context(), coachID); err != nil {
		logger.Error("DeleteCoach use case failed", err, nil)
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CoachHandler) ListCoaches(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListCoaches"})

	coaches, err := h.listCoachesUC.Execute(r.Context())
	if err != nil {
		logger.Error("ListCoaches use case failed", err, nil)
		writeDomainError(w, err)
		return
	}

	responses := make([]CoachResponse, 0, len(coaches))
	for i := range coaches {
		responses = append(responses, toCoachResponse(&coaches[i]))
	}
	RespondWithJSON(w, http.StatusOK, responses)
}
