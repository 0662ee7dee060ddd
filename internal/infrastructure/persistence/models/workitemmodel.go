package models

import "gorm.io/datatypes"

type WorkItemModel struct {
	ID             uint   `gorm:"primaryKey"`
	IssueID        string `gorm:"uniqueIndex;size:100;not null"`
	Summary        string `gorm:"size:500;not null"`
	Description    string `gorm:"type:text"`
	IssueType      string `gorm:"size:20;not null;index"`
	Status         string `gorm:"size:20;not null;index"`
	Priority       string `gorm:"size:20;not null;index"`
	Resolution     string `gorm:"size:100"`
	AssigneeID     *uint  `gorm:"index"`
	ReporterID     *uint  `gorm:"index"`
	CreatorID      *uint
	ProjectID      uint `gorm:"not null;index"`
	ParentTaskID   *uint
	CreatedTime    int64 `gorm:"not null"`
	UpdatedTime    int64 `gorm:"not null"`
	ResolvedTime   *int64
	DueDate        *int64 `gorm:"index"`
	Labels         datatypes.JSON
	CustomFields   datatypes.JSON
	Position       int `gorm:"not null;default:0"`
	EstimatedHours *int
	ActualHours    *int
	UploadBatchID  string `gorm:"size:150;index"`
	UploadedAt     int64
	UploadedBy     uint
	CreatedAt      int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (WorkItemModel) TableName() string {
	return "work_items"
}
