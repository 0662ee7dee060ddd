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

type ColumnDefinitionRepository struct {
	db     *gorm.DB
	mapper mappers.ColumnDefinitionMapper
}

func NewColumnDefinitionRepository(database *gorm.DB) *ColumnDefinitionRepository {
	return &ColumnDefinitionRepository{
		db:     database,
		mapper: mappers.NewColumnDefinitionMapper(),
	}
}

func (r *ColumnDefinitionRepository) Save(ctx context.Context, column *workitem.ColumnDefinition) error {
	model := r.mapper.ToModel(column)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save column definition: %w", err)
	}

	if column.ID() == 0 {
		if err := column.SetID(model.ID); err != nil {
			return err
		}
	}

	return nil
}

func (r *ColumnDefinitionRepository) GetByID(ctx context.Context, id uint) (*workitem.ColumnDefinition, error) {
	var model models.ColumnDefinitionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("column not found")
		}
		return nil, fmt.Errorf("failed to find column definition: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ColumnDefinitionRepository) ListByProject(ctx context.Context, projectID uint) ([]*workitem.ColumnDefinition, error) {
	var rows []models.ColumnDefinitionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("project_id = ?", projectID).
		Order("position ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list column definitions: %w", err)
	}

	columns := make([]*workitem.ColumnDefinition, 0, len(rows))
	for i := range rows {
		col, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		columns = append(columns, col)
	}

	return columns, nil
}

func (r *ColumnDefinitionRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.ColumnDefinitionModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete column definition: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("column not found")
	}

	return nil
}
