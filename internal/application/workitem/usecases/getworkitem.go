package usecases

import (
	"context"
	"time"

	"workbase/internal/domain/workitem"
	"workbase/internal/shared/errors"
	"workbase/internal/shared/logger"
	"workbase/internal/shared/services/markdown"
)

type GetWorkItemQuery struct {
	WorkItemID uint
	IssueID    string
}

type WorkItemDTO struct {
	ID              uint              `json:"id"`
	IssueID         string            `json:"issue_id"`
	Summary         string            `json:"summary"`
	Description     string            `json:"description"`
	DescriptionHTML string            `json:"description_html,omitempty"`
	IssueType       string            `json:"issue_type"`
	Status          string            `json:"status"`
	Priority        string            `json:"priority"`
	Resolution      string            `json:"resolution,omitempty"`
	AssigneeID      *uint             `json:"assignee_id,omitempty"`
	ReporterID      *uint             `json:"reporter_id,omitempty"`
	CreatorID       *uint             `json:"creator_id,omitempty"`
	ProjectID       uint              `json:"project_id"`
	Created         time.Time         `json:"created"`
	Updated         time.Time         `json:"updated"`
	Resolved        *time.Time        `json:"resolved,omitempty"`
	DueDate         *time.Time        `json:"due_date,omitempty"`
	Labels          []string          `json:"labels,omitempty"`
	CustomFields    map[string]string `json:"custom_fields,omitempty"`
	Position        int               `json:"position"`
	EstimatedHours  *int              `json:"estimated_hours,omitempty"`
	ActualHours     *int              `json:"actual_hours,omitempty"`
	UploadBatchID   string            `json:"upload_batch_id,omitempty"`
}

type GetWorkItemUseCase struct {
	itemRepo workitem.Repository
	markdown markdown.Service
	logger   logger.Interface
}

func NewGetWorkItemUseCase(itemRepo workitem.Repository, md markdown.Service, logger logger.Interface) *GetWorkItemUseCase {
	return &GetWorkItemUseCase{
		itemRepo: itemRepo,
		markdown: md,
		logger:   logger,
	}
}

func (uc *GetWorkItemUseCase) Execute(ctx context.Context, query GetWorkItemQuery) (*WorkItemDTO, error) {
	var item *workitem.WorkItem
	var err error

	switch {
	case query.WorkItemID != 0:
		item, err = uc.itemRepo.GetByID(ctx, query.WorkItemID)
	case query.IssueID != "":
		item, err = uc.itemRepo.GetByIssueID(ctx, query.IssueID)
	default:
		return nil, errors.NewValidationError("work item id or issue id is required")
	}
	if err != nil {
		return nil, err
	}

	dto := ToWorkItemDTO(item)
	if item.Description() != "" {
		html, err := uc.markdown.ToHTMLSanitized(item.Description())
		if err != nil {
			uc.logger.Warnw("failed to render description markdown", "work_item_id", item.ID(), "error", err)
		} else {
			dto.DescriptionHTML = html
		}
	}

	return dto, nil
}

// ToWorkItemDTO flattens a domain work item for API responses.
func ToWorkItemDTO(item *workitem.WorkItem) *WorkItemDTO {
	return &WorkItemDTO{
		ID:             item.ID(),
		IssueID:        item.IssueID(),
		Summary:        item.Summary(),
		Description:    item.Description(),
		IssueType:      item.IssueType().String(),
		Status:         item.Status().String(),
		Priority:       item.Priority().String(),
		Resolution:     item.Resolution(),
		AssigneeID:     item.AssigneeID(),
		ReporterID:     item.ReporterID(),
		CreatorID:      item.CreatorID(),
		ProjectID:      item.ProjectID(),
		Created:        item.Created(),
		Updated:        item.Updated(),
		Resolved:       item.Resolved(),
		DueDate:        item.DueDate(),
		Labels:         item.Labels(),
		CustomFields:   item.CustomFields(),
		Position:       item.Position(),
		EstimatedHours: item.EstimatedHours(),
		ActualHours:    item.ActualHours(),
		UploadBatchID:  item.UploadBatchID(),
	}
}
