package mappers

import (
	"workbase/internal/domain/project"
	"workbase/internal/infrastructure/persistence/models"
)

// ProjectMapper handles the conversion between Project domain entities and
// persistence models.
type ProjectMapper interface {
	ToModel(p *project.Project) *models.ProjectModel
	ToDomain(model *models.ProjectModel) (*project.Project, error)
}

type ProjectMapperImpl struct{}

func NewProjectMapper() ProjectMapper {
	return &ProjectMapperImpl{}
}

func (m *ProjectMapperImpl) ToModel(p *project.Project) *models.ProjectModel {
	return &models.ProjectModel{
		ID:        p.ID(),
		Name:      p.Name(),
		OwnerID:   p.OwnerID(),
		CreatedAt: p.CreatedAt().UnixMilli(),
	}
}

func (m *ProjectMapperImpl) ToDomain(model *models.ProjectModel) (*project.Project, error) {
	return project.Reconstruct(
		model.ID,
		model.Name,
		model.OwnerID,
		convertMillisToTime(model.CreatedAt),
	)
}
