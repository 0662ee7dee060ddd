package models

type ProjectModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null"`
	OwnerID   uint   `gorm:"not null;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ProjectModel) TableName() string {
	return "projects"
}
