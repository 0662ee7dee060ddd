package workitem

import (
	"fmt"
	"strings"
	"time"

	vo "workbase/internal/domain/workitem/valueobjects"
)

// ColumnDefinition describes one displayable field of a project. System
// columns are created automatically on first import and are never deletable.
type ColumnDefinition struct {
	id          uint
	projectID   uint
	fieldName   string
	displayName string
	columnType  vo.ColumnType
	width       int
	position    int
	isVisible   bool
	isSystem    bool
	createdAt   time.Time
}

func NewColumnDefinition(projectID uint, fieldName, displayName string, columnType vo.ColumnType, position int) (*ColumnDefinition, error) {
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if len(fieldName) == 0 {
		return nil, fmt.Errorf("field name is required")
	}
	if !columnType.IsValid() {
		return nil, fmt.Errorf("invalid column type: %s", columnType)
	}
	if displayName == "" {
		displayName = fieldName
	}

	return &ColumnDefinition{
		projectID:   projectID,
		fieldName:   strings.ToLower(fieldName),
		displayName: displayName,
		columnType:  columnType,
		width:       defaultColumnWidth(columnType),
		position:    position,
		isVisible:   true,
		createdAt:   time.Now(),
	}, nil
}

func ReconstructColumnDefinition(
	id uint,
	projectID uint,
	fieldName, displayName string,
	columnType vo.ColumnType,
	width, position int,
	isVisible, isSystem bool,
	createdAt time.Time,
) (*ColumnDefinition, error) {
	if id == 0 {
		return nil, fmt.Errorf("column ID cannot be zero")
	}
	if !columnType.IsValid() {
		return nil, fmt.Errorf("invalid column type: %s", columnType)
	}

	return &ColumnDefinition{
		id:          id,
		projectID:   projectID,
		fieldName:   fieldName,
		displayName: displayName,
		columnType:  columnType,
		width:       width,
		position:    position,
		isVisible:   isVisible,
		isSystem:    isSystem,
		createdAt:   createdAt,
	}, nil
}

func (c *ColumnDefinition) ID() uint                  { return c.id }
func (c *ColumnDefinition) ProjectID() uint           { return c.projectID }
func (c *ColumnDefinition) FieldName() string         { return c.fieldName }
func (c *ColumnDefinition) DisplayName() string       { return c.displayName }
func (c *ColumnDefinition) ColumnType() vo.ColumnType { return c.columnType }
func (c *ColumnDefinition) Width() int                { return c.width }
func (c *ColumnDefinition) Position() int             { return c.position }
func (c *ColumnDefinition) IsVisible() bool           { return c.isVisible }
func (c *ColumnDefinition) IsSystem() bool            { return c.isSystem }
func (c *ColumnDefinition) CreatedAt() time.Time      { return c.createdAt }

func (c *ColumnDefinition) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("column ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("column ID cannot be zero")
	}
	c.id = id
	return nil
}

// MarkSystem flags the column as part of the fixed system set.
func (c *ColumnDefinition) MarkSystem() {
	c.isSystem = true
}

func (c *ColumnDefinition) SetWidth(width int) {
	if width > 0 {
		c.width = width
	}
}

func defaultColumnWidth(t vo.ColumnType) int {
	switch t {
	case vo.ColumnDate:
		return 140
	case vo.ColumnUser:
		return 160
	case vo.ColumnPriority, vo.ColumnSelect:
		return 120
	case vo.ColumnLabels:
		return 180
	default:
		return 200
	}
}
