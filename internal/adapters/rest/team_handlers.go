package rest

import (
	"encoding/json"
	"net/http"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/contextkeys"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/port"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/port/usecases_port"
	"github.com/google/uuid"
)

type TeamHandler struct {
	createTeamUC usecases_port.CreateTeamUseCasePort
	listTeamsUC  usecases_port.ListTeamsUseCasePort
}

func NewTeamHandler(createUC usecases_port.CreateTeamUseCasePort, listUC usecases_port.ListTeamsUseCasePort) *TeamHandler {
	return &TeamHandler{
		createTeamUC: createUC,
		listTeamsUC:  listUC,
	}
}

func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateTeam"})

	var req CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode create team request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var coachID *uuid.UUID
	if req.CoachID != "" {
		parsed, err := uuid.Parse(req.CoachID)
		if err != nil {
			logger.Warn("Invalid 'coach_id' format", port.Fields{"coach_id": req.CoachID})
			WriteJSONError(w, http.StatusBadRequest, "Invalid 'coach_id' format")
			return
		}
		coachID = &parsed
	}

	team, err := h.createTeamUC.Execute(r.Context(), req.Name, req.Season, coachID)
	if err != nil {
		logger.Error("CreateTeam use case failed", err, nil)
		writeDomainError(w, err)
		return
	}

	logger.Info("Team created successfully", port.Fields{"team_id": team.ID.String()})
	RespondWithJSON(w, http.StatusCreated, toTeamResponse(team))
}

func (h *TeamHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListTeams"})

	teams, err := h.listTeamsUC.Execute(r.Context())
	if err != nil {
		logger.Error("ListTeams use case failed", err, nil)
		writeDomainError(w, err)
		return
	}

	responses := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		responses = append(responses, toTeamResponse(&teams[i]))
	}
	RespondWithJSON(w, http.StatusOK, responses)
}
