package usecases

import (
	"context"

	"workbase/internal/domain/workitem"
	"workbase/internal/shared/errors"
	"workbase/internal/shared/logger"
)

type ListColumnsQuery struct {
	ProjectID uint
}

type ColumnDTO struct {
	ID          uint   `json:"id"`
	ProjectID   uint   `json:"project_id"`
	FieldName   string `json:"field_name"`
	DisplayName string `json:"display_name"`
	ColumnType  string `json:"column_type"`
	Width       int    `json:"width"`
	Position    int    `json:"position"`
	IsVisible   bool   `json:"is_visible"`
	IsSystem    bool   `json:"is_system"`
}

type ListColumnsUseCase struct {
	columnRepo workitem.ColumnRepository
	logger     logger.Interface
}

func NewListColumnsUseCase(columnRepo workitem.ColumnRepository, logger logger.Interface) *ListColumnsUseCase {
	return &ListColumnsUseCase{
		columnRepo: columnRepo,
		logger:     logger,
	}
}

func (uc *ListColumnsUseCase) Execute(ctx context.Context, query ListColumnsQuery) ([]*ColumnDTO, error) {
	if query.ProjectID == 0 {
		return nil, errors.NewValidationError("project id is required")
	}

	columns, err := uc.columnRepo.ListByProject(ctx, query.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to list columns", "project_id", query.ProjectID, "error", err)
		return nil, err
	}

	dtos := make([]*ColumnDTO, 0, len(columns))
	for _, col := range columns {
		dtos = append(dtos, &ColumnDTO{
			ID:          col.ID(),
			ProjectID:   col.ProjectID(),
			FieldName:   col.FieldName(),
			DisplayName: col.DisplayName(),
			ColumnType:  col.ColumnType().String(),
			Width:       col.Width(),
			Position:    col.Position(),
			IsVisible:   col.IsVisible(),
			IsSystem:    col.IsSystem(),
		})
	}

	return dtos, nil
}
