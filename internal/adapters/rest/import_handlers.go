package rest

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/contextkeys"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/contracts"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/port"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/port/usecases_port"
)

type ImportHandler struct {
	importRosterUC usecases_port.ImportRosterUseCasePort
}

func NewImportHandler(importUC usecases_port.ImportRosterUseCasePort) *ImportHandler {
	return &ImportHandler{importRosterUC: importUC}
}

// ImportRoster принимает JSON-файл ростера. Тело сначала проверяется по
// JSON-схеме, чтобы отсечь мусор до разбора в DTO.
func (h *ImportHandler) ImportRoster(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ImportRoster"})

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Warn("Failed to read import request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := contracts.ValidateRosterImport(raw); err != nil {
		logger.Warn("Roster import payload failed schema validation", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Roster payload does not match the expected schema")
		return
	}

	var req ImportRosterRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		logger.Warn("Failed to decode import request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	teamID, ok := parseOptionalTeamID(req.TeamID)
	if !ok {
		logger.Warn("Invalid 'team_id' format", port.Fields{"team_id": req.TeamID})
		WriteJSONError(w, http.StatusBadRequest, "Invalid 'team_id' format")
		return
	}

	rows := make([]domain.RosterRow, 0, len(req.Rows))
	for _, row := range req.Rows {
		rows = append(rows, domain.RosterRow{
			FirstName: row.FirstName,
			LastName:  row.LastName,
			Email:     row.Email,
			Position:  row.Position,
		})
	}

	importLog, err := h.importRosterUC.Execute(r.Context(), actorID(r), req.FileName, teamID, rows)
	if err != nil {
		logger.Error("ImportRoster use case failed", err, nil)
		writeDomainError(w, err)
		return
	}

	logger.Info("Roster import finished", port.Fields{
		"import_id": importLog.ID.String(),
		"total":     importLog.Total,
		"succeeded": importLog.Succeeded,
		"failed":    importLog.Failed,
	})
	RespondWithJSON(w, http.StatusCreated, toImportLogResponse(importLog))
}
