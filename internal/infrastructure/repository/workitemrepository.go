package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"workbase/internal/domain/workitem"
	"workbase/internal/infrastructure/persistence/mappers"
	"workbase/internal/infrastructure/persistence/models"
	"workbase/internal/shared/db"
	"workbase/internal/shared/errors"
)

// allowedWorkItemOrderByFields defines the whitelist of allowed ORDER BY
// fields to prevent SQL injection attacks.
var allowedWorkItemOrderByFields = map[string]bool{
	"id":           true,
	"issue_id":     true,
	"summary":      true,
	"status":       true,
	"priority":     true,
	"issue_type":   true,
	"position":     true,
	"due_date":     true,
	"created_time": true,
	"updated_time": true,
	"created_at":   true,
}

type WorkItemRepository struct {
	db     *gorm.DB
	mapper mappers.WorkItemMapper
}

func NewWorkItemRepository(database *gorm.DB) *WorkItemRepository {
	return &WorkItemRepository{
		db:     database,
		mapper: mappers.NewWorkItemMapper(),
	}
}

func (r *WorkItemRepository) Save(ctx context.Context, item *workitem.WorkItem) error {
	model := r.mapper.ToModel(item)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save work item: %w", err)
	}

	if item.ID() == 0 {
		if err := item.SetID(model.ID); err != nil {
			return err
		}
	}

	return nil
}

func (r *WorkItemRepository) SaveBatch(ctx context.Context, items []*workitem.WorkItem) error {
	if len(items) == 0 {
		return nil
	}

	batch := make([]*models.WorkItemModel, len(items))
	for i, item := range items {
		batch[i] = r.mapper.ToModel(item)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(&batch).Error; err != nil {
		return fmt.Errorf("failed to save work item batch: %w", err)
	}

	for i, item := range items {
		if item.ID() == 0 {
			if err := item.SetID(batch[i].ID); err != nil {
				return err
			}
		}
	}

	return nil
}

func (r *WorkItemRepository) GetByID(ctx context.Context, id uint) (*workitem.WorkItem, error) {
	var model models.WorkItemModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("work item not found")
		}
		return nil, fmt.Errorf("failed to find work item: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *WorkItemRepository) GetByIssueID(ctx context.Context, issueID string) (*workitem.WorkItem, error) {
	var model models.WorkItemModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("issue_id = ?", issueID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("work item not found")
		}
		return nil, fmt.Errorf("failed to find work item: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *WorkItemRepository) List(ctx context.Context, filter workitem.Filter) ([]*workitem.WorkItem, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db).Model(&models.WorkItemModel{})

	if filter.ProjectID != nil {
		tx = tx.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.Status != nil {
		tx = tx.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		tx = tx.Where("priority = ?", filter.Priority.String())
	}
	if filter.IssueType != nil {
		tx = tx.Where("issue_type = ?", filter.IssueType.String())
	}
	if filter.AssigneeID != nil {
		tx = tx.Where("assignee_id = ?", *filter.AssigneeID)
	}
	if filter.UploadBatchID != nil {
		tx = tx.Where("upload_batch_id = ?", *filter.UploadBatchID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count work items: %w", err)
	}

	orderBy := "position"
	if filter.SortBy != "" && allowedWorkItemOrderByFields[filter.SortBy] {
		orderBy = filter.SortBy
	}
	if filter.SortOrder == "desc" {
		orderBy += " DESC"
	}
	tx = tx.Order(orderBy)

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}
	tx = tx.Offset((page - 1) * pageSize).Limit(pageSize)

	var rows []models.WorkItemModel
	if err := tx.Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list work items: %w", err)
	}

	items := make([]*workitem.WorkItem, 0, len(rows))
	for i := range rows {
		item, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}

	return items, total, nil
}

func (r *WorkItemRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.WorkItemModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete work item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("work item not found")
	}

	return nil
}

func (r *WorkItemRepository) DeleteByBatchID(ctx context.Context, batchID string) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Where("upload_batch_id = ?", batchID).Delete(&models.WorkItemModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete work items by batch: %w", result.Error)
	}

	return result.RowsAffected, nil
}

func (r *WorkItemRepository) RecentIssueIDs(ctx context.Context, limit int) ([]string, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var ids []string
	if err := tx.
		Model(&models.WorkItemModel{}).
		Order("id DESC").
		Limit(limit).
		Pluck("issue_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to load recent issue ids: %w", err)
	}

	return ids, nil
}

func (r *WorkItemRepository) FilterExistingIssueIDs(ctx context.Context, issueIDs []string) (map[string]bool, error) {
	existing := make(map[string]bool, len(issueIDs))
	if len(issueIDs) == 0 {
		return existing, nil
	}

	tx := db.GetTxFromContext(ctx, r.db)

	var found []string
	if err := tx.
		Model(&models.WorkItemModel{}).
		Where("issue_id IN ?", issueIDs).
		Pluck("issue_id", &found).Error; err != nil {
		return nil, fmt.Errorf("failed to check existing issue ids: %w", err)
	}

	for _, id := range found {
		existing[id] = true
	}
	return existing, nil
}
