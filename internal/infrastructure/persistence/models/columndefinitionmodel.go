package models

type ColumnDefinitionModel struct {
	ID          uint   `gorm:"primaryKey"`
	ProjectID   uint   `gorm:"not null;uniqueIndex:idx_project_field"`
	FieldName   string `gorm:"size:100;not null;uniqueIndex:idx_project_field"`
	DisplayName string `gorm:"size:200;not null"`
	ColumnType  string `gorm:"size:20;not null"`
	Width       int    `gorm:"not null;default:200"`
	Position    int    `gorm:"not null;default:0"`
	IsVisible   bool   `gorm:"not null;default:true"`
	IsSystem    bool   `gorm:"not null;default:false"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ColumnDefinitionModel) TableName() string {
	return "column_definitions"
}
