package mappers

import (
	"workbase/internal/domain/workitem"
	vo "workbase/internal/domain/workitem/valueobjects"
	"workbase/internal/infrastructure/persistence/models"
)

// ColumnDefinitionMapper handles the conversion between ColumnDefinition
// domain entities and persistence models.
type ColumnDefinitionMapper interface {
	ToModel(col *workitem.ColumnDefinition) *models.ColumnDefinitionModel
	ToDomain(model *models.ColumnDefinitionModel) (*workitem.ColumnDefinition, error)
}

type ColumnDefinitionMapperImpl struct{}

func NewColumnDefinitionMapper() ColumnDefinitionMapper {
	return &ColumnDefinitionMapperImpl{}
}

func (m *ColumnDefinitionMapperImpl) ToModel(col *workitem.ColumnDefinition) *models.ColumnDefinitionModel {
	return &models.ColumnDefinitionModel{
		ID:          col.ID(),
		ProjectID:   col.ProjectID(),
		FieldName:   col.FieldName(),
		DisplayName: col.DisplayName(),
		ColumnType:  col.ColumnType().String(),
		Width:       col.Width(),
		Position:    col.Position(),
		IsVisible:   col.IsVisible(),
		IsSystem:    col.IsSystem(),
		CreatedAt:   col.CreatedAt().UnixMilli(),
	}
}

func (m *ColumnDefinitionMapperImpl) ToDomain(model *models.ColumnDefinitionModel) (*workitem.ColumnDefinition, error) {
	return workitem.ReconstructColumnDefinition(
		model.ID,
		model.ProjectID,
		model.FieldName,
		model.DisplayName,
		vo.ColumnType(model.ColumnType),
		model.Width,
		model.Position,
		model.IsVisible,
		model.IsSystem,
		convertMillisToTime(model.CreatedAt),
	)
}
