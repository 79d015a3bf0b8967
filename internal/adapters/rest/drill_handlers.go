package rest

import (
	"encoding/json"
	"net/http"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/contextkeys"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/port"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/port/usecases_port"
)

type DrillHandler struct {
	createDrillUC usecases_port.CreateDrillUseCasePort
	listDrillsUC  usecases_port.ListDrillsUseCasePort
}

func NewDrillHandler(createUC usecases_port.CreateDrillUseCasePort, listUC usecases_port.ListDrillsUseCasePort) *DrillHandler {
	return &DrillHandler{
		createDrillUC: createUC,
		listDrillsUC:  listUC,
	}
}

func (h *DrillHandler) CreateDrill(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateDrill"})

	var req CreateDrillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode create drill request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	drill, err := h.createDrillUC.Execute(r.Context(), actorID(r), req.Title, req.Category, req.Description, req.VideoURL)
	if err != nil {
		logger.Error("CreateDrill use case failed", err, nil)
		writeDomainError(w, err)
		return
	}

	logger.Info("Drill created successfully", port.Fields{"drill_id": drill.ID.String()})
	RespondWithJSON(w, http.StatusCreated, toDrillResponse(drill))
}

func (h *DrillHandler) ListDrills(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListDrills"})

	drills, err := h.listDrillsUC.Execute(r.Context())
	if err != nil {
		logger.Error("ListDrills use case failed", err, nil)
		writeDomainError(w, err)
		return
	}

	responses := make([]DrillResponse, 0, len(drills))
	for i := range drills {
		responses = append(responses, toDrillResponse(&drills[i]))
	}
	RespondWithJSON(w, http.StatusOK, responses)
}
