package usecases

import (
	"context"

	"workbase/internal/domain/workitem"
	"workbase/internal/shared/errors"
	"workbase/internal/shared/logger"
)

type DeleteColumnCommand struct {
	ColumnID uint
}

type DeleteColumnUseCase struct {
	columnRepo workitem.ColumnRepository
	logger     logger.Interface
}

func NewDeleteColumnUseCase(columnRepo workitem.ColumnRepository, logger logger.Interface) *DeleteColumnUseCase {
	return &DeleteColumnUseCase{
		columnRepo: columnRepo,
		logger:     logger,
	}
}

func (uc *DeleteColumnUseCase) Execute(ctx context.Context, cmd DeleteColumnCommand) error {
	if cmd.ColumnID == 0 {
		return errors.NewValidationError("column id is required")
	}

	column, err := uc.columnRepo.GetByID(ctx, cmd.ColumnID)
	if err != nil {
		return err
	}

	// System columns are part of every project's fixed layout.
	if column.IsSystem() {
		return errors.NewForbiddenError("system columns cannot be deleted", column.FieldName())
	}

	if err := uc.columnRepo.Delete(ctx, cmd.ColumnID); err != nil {
		uc.logger.Errorw("failed to delete column", "column_id", cmd.ColumnID, "error", err)
		return err
	}

	uc.logger.Infow("column deleted", "column_id", cmd.ColumnID, "field_name", column.FieldName())
	return nil
}
