package migration

import (
	"workbase/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.ProjectModel{},
		&models.WorkItemModel{},
		&models.ColumnDefinitionModel{},
	}
}
