package usecases

import (
	"context"

	"workbase/internal/domain/workitem"
	"workbase/internal/shared/errors"
	"workbase/internal/shared/logger"
)

type DeleteWorkItemCommand struct {
	WorkItemID uint
}

type DeleteWorkItemUseCase struct {
	itemRepo workitem.Repository
	logger   logger.Interface
}

func NewDeleteWorkItemUseCase(itemRepo workitem.Repository, logger logger.Interface) *DeleteWorkItemUseCase {
	return &DeleteWorkItemUseCase{
		itemRepo: itemRepo,
		logger:   logger,
	}
}

func (uc *DeleteWorkItemUseCase) Execute(ctx context.Context, cmd DeleteWorkItemCommand) error {
	if cmd.WorkItemID == 0 {
		return errors.NewValidationError("work item id is required")
	}

	if err := uc.itemRepo.Delete(ctx, cmd.WorkItemID); err != nil {
		uc.logger.Errorw("failed to delete work item", "work_item_id", cmd.WorkItemID, "error", err)
		return err
	}

	uc.logger.Infow("work item deleted", "work_item_id", cmd.WorkItemID)
	return nil
}
