package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/contextkeys"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/port"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/port/usecases_port"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type PlayerHandler struct {
	createPlayerUC usecases_port.CreatePlayerUseCasePort
	updatePlayerUC usecases_port.UpdatePlayerUseCasePort
	deletePlayerUC usecases_port.DeletePlayerUseCasePort
	getPlayerUC    usecases_port.GetPlayerUseCasePort
	listPlayersUC  usecases_port.ListPlayersUseCasePort
}

// NewPlayerHandler - конструктор
func NewPlayerHandler(
	createUC usecases_port.CreatePlayerUseCasePort,
	updateUC usecases_port.UpdatePlayerUseCasePort,
	deleteUC usecases_port.DeletePlayerUseCasePort,
	getUC usecases_port.GetPlayerUseCasePort,
	listUC usecases_port.ListPlayersUseCasePort,
) *PlayerHandler {
	return &PlayerHandler{
		createPlayerUC: createUC,
		updatePlayerUC: updateUC,
		deletePlayerUC: deleteUC,
		getPlayerUC:    getUC,
		listPlayersUC:  listUC,
	}
}

// parseOptionalTeamID разбирает необязательный team_id из тела запроса.
func parseOptionalTeamID(raw string) (*uuid.UUID, bool) {
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, false
	}
	return &id, true
}

func (h *PlayerHandler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreatePlayer"})

	var req CreatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode create player request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	teamID, ok := parseOptionalTeamID(req.TeamID)
	if !ok {
		logger.Warn("Invalid 'team_id' format", port.Fields{"team_id": req.TeamID})
		WriteJSONError(w, http.StatusBadRequest, "Invalid 'team_id' format")
		return
	}

	var birthDate *time.Time
	if req.BirthDate != "" {
		parsed, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			logger.Warn("Invalid 'birth_date' format", port.Fields{"birth_date": req.BirthDate})
			WriteJSONError(w, http.StatusBadRequest, "Invalid 'birth_date' format, expected YYYY-MM-DD")
			return
		}
		birthDate = &parsed
	}

	account, err := h.createPlayerUC.Execute(r.Context(), req.FirstName, req.LastName, req.Email, req.Position, teamID, birthDate)
	if err != nil {
		logger.Error("CreatePlayer use case failed", err, nil)
		writeDomainError(w, err)
		return
	}

	logger.Info("Player created successfully", port.Fields{"player_id": account.Player.ID.String()})
	RespondWithJSON(w, http.StatusCreated, toPlayerAccountResponse(account))
}

func (h *PlayerHandler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdatePlayer"})

	playerID, err := uuid.Parse(chi.URLParam(r, "playerID"))
	if err != nil {
		logger.Warn("Invalid player ID format in URL", port.Fields{"provided_id": chi.URLParam(r, "playerID")})
		WriteJSONError(w, http.StatusBadRequest, "Invalid player ID in URL")
		return
	}

	var req UpdatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode update player request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	teamID, ok := parseOptionalTeamID(req.TeamID)
	if !ok {
		logger.Warn("Invalid 'team_id' format", port.Fields{"team_id": req.TeamID})
		WriteJSONError(w, http.StatusBadRequest, "Invalid 'team_id' format")
		return
	}

	player, err := h.updatePlayerUC.Execute(r.Context(), playerID, req.FirstName, req.LastName, req.Position, teamID)
	if err != nil {
		logger.Error("UpdatePlayer use case failed", err, nil)
		writeDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toPlayerResponse(player))
}

func (h *PlayerHandler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeletePlayer"})

	playerID, err := uuid.Parse(chi.URLParam(r, "playerID"))
	if err != nil {
		logger.Warn("Invalid player ID format in URL", port.Fields{"provided_id": chi.URLParam(r, "playerID")})
		WriteJSONError(w, http.StatusBadRequest, "Invalid player ID in URL")
		return
	}

	if err := h.deletePlayerUC.Execute(r.Context(), playerID); err != nil {
		logger.Error("DeletePlayer use case failed", err, nil)
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *PlayerHandler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetPlayer"})

	playerID, err := uuid.Parse(chi.URLParam(r, "playerID"))
	if err != nil {
		logger.Warn("Invalid player ID format in URL", port.Fields{"provided_id": chi.URLParam(r, "playerID")})
		WriteJSONError(w, http.StatusBadRequest, "Invalid player ID in URL")
		return
	}

	player, err := h.getPlayerUC.Execute(r.Context(), playerID)
	if err != nil {
		logger.Error("GetPlayer use case failed", err, nil)
		writeDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toPlayerResponse(player))
}

func (h *PlayerHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListPlayers"})

	teamID, ok := parseOptionalTeamID(r.URL.Query().Get("team_id"))
	if !ok {
		logger.Warn("Invalid 'team_id' query parameter", port.Fields{"team_id": r.URL.Query().Get("team_id")})
		WriteJSONError(w, http.StatusBadRequest, "Invalid 'team_id' query parameter")
		return
	}

	players, err := h.listPlayersUC.Execute(r.Context(), teamID)
	if err != nil {
		logger.Error("ListPlayers use case failed", err, nil)
		writeDomainError(w, err)
		return
	}

	responses := make([]PlayerResponse, 0, len(players))
	for i := range players {
		responses = append(responses, toPlayerResponse(&players[i]))
	}
	RespondWithJSON(w, http.StatusOK, responses)
}
