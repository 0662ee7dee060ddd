package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"workbase/internal/domain/workitem"
	vo "workbase/internal/domain/workitem/valueobjects"
	"workbase/internal/infrastructure/persistence/models"
)

// WorkItemMapper handles the conversion between WorkItem domain entities and
// persistence models.
type WorkItemMapper interface {
	ToModel(item *workitem.WorkItem) *models.WorkItemModel
	ToDomain(model *models.WorkItemModel) (*workitem.WorkItem, error)
}

type WorkItemMapperImpl struct{}

func NewWorkItemMapper() WorkItemMapper {
	return &WorkItemMapperImpl{}
}

func (m *WorkItemMapperImpl) ToModel(item *workitem.WorkItem) *models.WorkItemModel {
	model := &models.WorkItemModel{
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
		ParentTaskID:   item.ParentTaskID(),
		CreatedTime:    item.Created().UnixMilli(),
		UpdatedTime:    item.Updated().UnixMilli(),
		Position:       item.Position(),
		EstimatedHours: item.EstimatedHours(),
		ActualHours:    item.ActualHours(),
		UploadBatchID:  item.UploadBatchID(),
		UploadedAt:     item.UploadedAt().UnixMilli(),
		UploadedBy:     item.UploadedBy(),
	}

	if item.Resolved() != nil {
		resolved := item.Resolved().UnixMilli()
		model.ResolvedTime = &resolved
	}

	if item.DueDate() != nil {
		due := item.DueDate().UnixMilli()
		model.DueDate = &due
	}

	if labels := item.Labels(); len(labels) > 0 {
		labelsJSON, _ := json.Marshal(labels)
		model.Labels = labelsJSON
	}

	if fields := item.CustomFields(); len(fields) > 0 {
		fieldsJSON, _ := json.Marshal(fields)
		model.CustomFields = fieldsJSON
	}

	return model
}

func (m *WorkItemMapperImpl) ToDomain(model *models.WorkItemModel) (*workitem.WorkItem, error) {
	var labels []string
	if len(model.Labels) > 0 {
		if err := json.Unmarshal(model.Labels, &labels); err != nil {
			return nil, fmt.Errorf("failed to unmarshal work item labels (id=%d): %w", model.ID, err)
		}
	}

	var customFields map[string]string
	if len(model.CustomFields) > 0 {
		if err := json.Unmarshal(model.CustomFields, &customFields); err != nil {
			return nil, fmt.Errorf("failed to unmarshal work item custom fields (id=%d): %w", model.ID, err)
		}
	}

	var resolved, dueDate *time.Time
	if model.ResolvedTime != nil {
		t := convertMillisToTime(*model.ResolvedTime)
		resolved = &t
	}
	if model.DueDate != nil {
		t := convertMillisToTime(*model.DueDate)
		dueDate = &t
	}

	return workitem.Reconstruct(workitem.Params{
		ID:             model.ID,
		IssueID:        model.IssueID,
		Summary:        model.Summary,
		Description:    model.Description,
		IssueType:      vo.IssueType(model.IssueType),
		Status:         vo.Status(model.Status),
		Priority:       vo.Priority(model.Priority),
		Resolution:     model.Resolution,
		AssigneeID:     model.AssigneeID,
		ReporterID:     model.ReporterID,
		CreatorID:      model.CreatorID,
		ProjectID:      model.ProjectID,
		ParentTaskID:   model.ParentTaskID,
		Created:        convertMillisToTime(model.CreatedTime),
		Updated:        convertMillisToTime(model.UpdatedTime),
		Resolved:       resolved,
		DueDate:        dueDate,
		Labels:         labels,
		CustomFields:   customFields,
		Position:       model.Position,
		EstimatedHours: model.EstimatedHours,
		ActualHours:    model.ActualHours,
		UploadBatchID:  model.UploadBatchID,
		UploadedAt:     convertMillisToTime(model.UploadedAt),
		UploadedBy:     model.UploadedBy,
	})
}

func convertMillisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}
