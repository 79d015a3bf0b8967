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

type HomeworkHandler struct {
	assignHomeworkUC usecases_port.AssignHomeworkUseCasePort
	listHomeworkUC   usecases_port.ListPlayerHomeworkUseCasePort
}

func NewHomeworkHandler(assignUC usecases_port.AssignHomeworkUseCasePort, listUC usecases_port.ListPlayerHomeworkUseCasePort) *HomeworkHandler {
	return &HomeworkHandler{
		assignHomeworkUC: assignUC,
		listHomeworkUC:   listUC,
	}
}

func (h *HomeworkHandler) AssignHomework(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "AssignHomework"})

	var req AssignHomeworkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode assign homework request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	playerID, err := uuid.Parse(req.PlayerID)
	if err != nil {
		logger.Warn("Invalid 'player_id' format", port.Fields{"player_id": req.PlayerID})
		WriteJSONError(w, http.StatusBadRequest, "Invalid 'player_id' format")
		return
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.DueDate)
		if err != nil {
			logger.Warn("Invalid 'due_date' format", port.Fields{"due_date": req.DueDate})
			WriteJSONError(w, http.StatusBadRequest, "Invalid 'due_date' format, expected RFC3339")
			return
		}
		dueDate = &parsed
	}

	homework, err := h.assignHomeworkUC.Execute(r.Context(), playerID, actorID(r), req.Title, req.Description, req.Drills, dueDate)
	if err != nil {
		logger.Error("AssignHomework use case failed", err, nil)
		writeDomainError(w, err)
		return
	}

	logger.Info("Homework assigned successfully", port.Fields{"homework_id": homework.ID.String()})
	RespondWithJSON(w, http.StatusCreated, toHomeworkResponse(homework))
}

func (h *HomeworkHandler) ListPlayerHomework(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListPlayerHomework"})

	playerID, err := uuid.Parse(chi.URLParam(r, "playerID"))
	if err != nil {
		logger.Warn("Invalid player ID format in URL", port.Fields{"provided_id": chi.URLParam(r, "playerID")})
		WriteJSONError(w, http.StatusBadRequest, "Invalid player ID in URL")
		return
	}

	homeworks, err := h.listHomeworkUC.Execute(r.Context(), playerID)
	if err != nil {
		logger.Error("ListPlayerHomework use case failed", err, nil)
		writeDomainError(w, err)
		return
	}

	responses := make([]HomeworkResponse, 0, len(homeworks))
	for i := range homeworks {
		responses = append(responses, toHomeworkResponse(&homeworks[i]))
	}
	RespondWithJSON(w, http.StatusOK, responses)
}
