package usecases

import (
	"context"
	"time"

	"workbase/internal/domain/workitem"
	vo "workbase/internal/domain/workitem/valueobjects"
	"workbase/internal/shared/errors"
	"workbase/internal/shared/logger"
)

type CreateWorkItemCommand struct {
	Summary     string
	Description string
	IssueType   string
	Status      string
	Priority    string
	ProjectID   uint
	CreatorID   uint
	AssigneeID  *uint
	Labels      []string
	DueDate     *time.Time
}

type CreateWorkItemResult struct {
	WorkItemID uint
	IssueID    string
	Status     string
	CreatedAt  time.Time
}

type CreateWorkItemUseCase struct {
	itemRepo          workitem.Repository
	recentIssueWindow int
	logger            logger.Interface
}

func NewCreateWorkItemUseCase(itemRepo workitem.Repository, recentIssueWindow int, logger logger.Interface) *CreateWorkItemUseCase {
	if recentIssueWindow <= 0 {
		recentIssueWindow = 500
	}
	return &CreateWorkItemUseCase{
		itemRepo:          itemRepo,
		recentIssueWindow: recentIssueWindow,
		logger:            logger,
	}
}

func (uc *CreateWorkItemUseCase) Execute(ctx context.Context, cmd CreateWorkItemCommand) (*CreateWorkItemResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create work item command", "error", err)
		return nil, err
	}

	item, err := workitem.NewWorkItem(cmd.Summary, cmd.ProjectID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	issueType := vo.NormalizeIssueType(cmd.IssueType)
	status := vo.NormalizeStatus(cmd.Status)
	priority := vo.NormalizePriority(cmd.Priority)
	if err := item.Classify(issueType, status, priority); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	item.SetDescription(cmd.Description)
	item.SetCreator(cmd.CreatorID)
	item.SetReporter(cmd.CreatorID)
	if cmd.AssigneeID != nil {
		item.SetAssignee(*cmd.AssigneeID)
	}
	if len(cmd.Labels) > 0 {
		item.SetLabels(cmd.Labels)
	}
	if cmd.DueDate != nil {
		item.SetDueDate(*cmd.DueDate)
	}

	recentIDs, err := uc.itemRepo.RecentIssueIDs(ctx, uc.recentIssueWindow)
	if err != nil {
		uc.logger.Errorw("failed to seed issue id allocator", "error", err)
		return nil, errors.NewInternalError("failed to allocate issue id", err.Error())
	}
	if err := item.SetIssueID(workitem.NewNumberAllocator(recentIDs).Next()); err != nil {
		return nil, errors.NewInternalError("failed to set issue id", err.Error())
	}

	if err := uc.itemRepo.Save(ctx, item); err != nil {
		uc.logger.Errorw("failed to save work item", "error", err)
		return nil, err
	}

	uc.logger.Infow("work item created", "work_item_id", item.ID(), "issue_id", item.IssueID())

	return &CreateWorkItemResult{
		WorkItemID: item.ID(),
		IssueID:    item.IssueID(),
		Status:     item.Status().String(),
		CreatedAt:  item.Created(),
	}, nil
}

func (uc *CreateWorkItemUseCase) validateCommand(cmd CreateWorkItemCommand) error {
	if len(cmd.Summary) == 0 {
		return errors.NewValidationError("summary is required")
	}
	if len(cmd.Summary) > 500 {
		return errors.NewValidationError("summary exceeds maximum length of 500 characters")
	}
	if cmd.ProjectID == 0 {
		return errors.NewValidationError("project id is required")
	}
	if cmd.CreatorID == 0 {
		return errors.NewValidationError("creator id is required")
	}
	return nil
}
