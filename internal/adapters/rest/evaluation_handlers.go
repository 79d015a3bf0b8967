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

type EvaluationHandler struct {
	submitEvaluationUC usecases_port.SubmitEvaluationUseCasePort
	listEvaluationsUC  usecases_port.ListPlayerEvaluationsUseCasePort
}

func NewEvaluationHandler(submitUC usecases_port.SubmitEvaluationUseCasePort, listUC usecases_port.ListPlayerEvaluationsUseCasePort) *EvaluationHandler {
	return &EvaluationHandler{
		submitEvaluationUC: submitUC,
		listEvaluationsUC:  listUC,
	}
}

func (h *EvaluationHandler) SubmitEvaluation(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SubmitEvaluation"})

	var req SubmitEvaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode evaluation request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	playerID, err := uuid.Parse(req.PlayerID)
	if err != nil {
		logger.Warn("Invalid 'player_id' format", port.Fields{"player_id": req.PlayerID})
		WriteJSONError(w, http.StatusBadRequest, "Invalid 'player_id' format")
		return
	}

	evaluation, err := h.submitEvaluationUC.Execute(r.Context(), playerID, actorID(r), req.Technical, req.Tactical, req.Physical, req.Attitude, req.Comment)
	if err != nil {
		logger.Error("SubmitEvaluation use case failed", err, nil)
		writeDomainError(w, err)
		return
	}

	logger.Info("Evaluation submitted successfully", port.Fields{"evaluation_id": evaluation.ID.String()})
	RespondWithJSON(w, http.StatusCreated, toEvaluationResponse(evaluation))
}

func (h *EvaluationHandler) ListPlayerEvaluations(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListPlayerEvaluations"})

	playerID, err := uuid.Parse(chi.URLParam(r, "playerID"))
	if err != nil {
		logger.Warn("Invalid player ID format in URL", port.Fields{"provided_id": chi.URLParam(r, "playerID")})
		WriteJSONError(w, http.StatusBadRequest, "Invalid player ID in URL")
		return
	}

	evaluations, err := h.listEvaluationsUC.Execute(r.Context(), playerID)
	if err != nil {
		logger.Error("ListPlayerEvaluations use case failed", err, nil)
		writeDomainError(w, err)
		return
	}

	responses := make([]EvaluationResponse, 0, len(evaluations))
	for i := range evaluations {
		responses = append(responses, toEvaluationResponse(&evaluations[i]))
	}
	RespondWithJSON(w, http.StatusOK, responses)
}
