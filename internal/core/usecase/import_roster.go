package usecase

import (
	"context"
	"fmt"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/contextkeys"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/port"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/port/usecases_port"
	"github.com/google/uuid"
)

// ImportRosterUseCase - массовый импорт состава. Каждая строка проходит через
// обычный CreatePlayerUseCase, так что PLAYER_CREATED уходит на каждого
// успешно созданного игрока по отдельности. Ошибки по строкам не прерывают
// импорт, а копятся в ImportLog.
type ImportRosterUseCase struct {
	createPlayerUC usecases_port.CreatePlayerUseCasePort
	importLogRepo  port.ImportLogRepositoryPort
}

func NewImportRosterUseCase(createPlayerUC usecases_port.CreatePlayerUseCasePort, importLogRepo port.ImportLogRepositoryPort) *ImportRosterUseCase {
	return &ImportRosterUseCase{
		createPlayerUC: createPlayerUC,
		importLogRepo:  importLogRepo,
	}
}

func (uc *ImportRosterUseCase) Execute(ctx context.Context, createdBy uuid.UUID, fileName string, teamID *uuid.UUID, rows []domain.RosterRow) (*domain.ImportLog, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "ImportRoster",
		"file_name": fileName,
		"rows":      len(rows),
	})

	if len(rows) == 0 {
		ucLogger.Warn("Validation failed: roster is empty", nil)
		return nil, fmt.Errorf("%w: roster is empty", domain.ErrValidation)
	}

	ucLogger.Info("Use case started: importing roster", nil)

	importLog := domain.NewImportLog(createdBy, fileName)
	for i, row := range rows {
		if _, err := uc.createPlayerUC.Execute(ctx, row.FirstName, row.LastName, row.Email, row.Position, teamID, nil); err != nil {
			importLog.RecordFailure(fmt.Sprintf("row %d (%s): %v", i+1, row.Email, err))
			continue
		}
		importLog.RecordSuccess()
	}

	if err := uc.importLogRepo.Create(ctx, importLog); err != nil {
		ucLogger.Error("Repository failed to save import log", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished: roster imported", port.Fields{
		"succeeded": importLog.Succeeded,
		"failed":    importLog.Failed,
	})
	return importLog, nil
}
