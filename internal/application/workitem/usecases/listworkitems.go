package usecases

import (
	"context"

	"workbase/internal/domain/workitem"
	vo "workbase/internal/domain/workitem/valueobjects"
	"workbase/internal/shared/logger"
)

type ListWorkItemsQuery struct {
	ProjectID     *uint
	Status        string
	Priority      string
	IssueType     string
	AssigneeID    *uint
	UploadBatchID string
	Page          int
	PageSize      int
	SortBy        string
	SortOrder     string
}

type ListWorkItemsResult struct {
	Items []*WorkItemDTO
	Total int64
}

type ListWorkItemsUseCase struct {
	itemRepo workitem.Repository
	logger   logger.Interface
}

func NewListWorkItemsUseCase(itemRepo workitem.Repository, logger logger.Interface) *ListWorkItemsUseCase {
	return &ListWorkItemsUseCase{
		itemRepo: itemRepo,
		logger:   logger,
	}
}

func (uc *ListWorkItemsUseCase) Execute(ctx context.Context, query ListWorkItemsQuery) (*ListWorkItemsResult, error) {
	filter := workitem.Filter{
		ProjectID:  query.ProjectID,
		AssigneeID: query.AssigneeID,
		Page:       query.Page,
		PageSize:   query.PageSize,
		SortBy:     query.SortBy,
		SortOrder:  query.SortOrder,
	}

	if query.Status != "" {
		status := vo.NormalizeStatus(query.Status)
		filter.Status = &status
	}
	if query.Priority != "" {
		priority := vo.NormalizePriority(query.Priority)
		filter.Priority = &priority
	}
	if query.IssueType != "" {
		issueType := vo.NormalizeIssueType(query.IssueType)
		filter.IssueType = &issueType
	}
	if query.UploadBatchID != "" {
		filter.UploadBatchID = &query.UploadBatchID
	}

	items, total, err := uc.itemRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list work items", "error", err)
		return nil, err
	}

	dtos := make([]*WorkItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, ToWorkItemDTO(item))
	}

	return &ListWorkItemsResult{Items: dtos, Total: total}, nil
}
