package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"workbase/internal/domain/project"
	"workbase/internal/infrastructure/persistence/mappers"
	"workbase/internal/infrastructure/persistence/models"
	"workbase/internal/shared/db"
	"workbase/internal/shared/errors"
)

type ProjectRepository struct {
	db     *gorm.DB
	mapper mappers.ProjectMapper
}

func NewProjectRepository(database *gorm.DB) *ProjectRepository {
	return &ProjectRepository{
		db:     database,
		mapper: mappers.NewProjectMapper(),
	}
}

func (r *ProjectRepository) Create(ctx context.Context, p *project.Project) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	if p.ID() == 0 {
		if err := p.SetID(model.ID); err != nil {
			return err
		}
	}

	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uint) (*project.Project, error) {
	var model models.ProjectModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("project not found")
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ProjectRepository) List(ctx context.Context) ([]*project.Project, error) {
	var rows []models.ProjectModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	projects := make([]*project.Project, 0, len(rows))
	for i := range rows {
		p, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}

	return projects, nil
}
