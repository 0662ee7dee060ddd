package importer

import (
	"context"
	"fmt"
	"strings"

	"workbase/internal/domain/workitem"
	vo "workbase/internal/domain/workitem/valueobjects"
	"workbase/internal/shared/logger"
)

// systemColumns is the fixed set created the first time a project with zero
// declared columns receives an import. Positions are stable so every project
// starts with the same layout.
var systemColumns = []struct {
	fieldName   string
	displayName string
	columnType  vo.ColumnType
	position    int
}{
	{"issue_id", "Issue ID", vo.ColumnText, 0},
	{"summary", "Summary", vo.ColumnText, 1},
	{"status", "Status", vo.ColumnSelect, 2},
	{"priority", "Priority", vo.ColumnPriority, 3},
	{"assignee", "Assignee", vo.ColumnUser, 4},
}

// SchemaExtender makes a project's declared columns a superset of an import
// file's headers before any row is transformed.
type SchemaExtender struct {
	columns workitem.ColumnRepository
	logger  logger.Interface
}

func NewSchemaExtender(columns workitem.ColumnRepository, log logger.Interface) *SchemaExtender {
	return &SchemaExtender{columns: columns, logger: log}
}

// EnsureColumns is idempotent: re-importing a file with the same headers
// creates nothing. A project with no columns first gets the system set, then
// every header unclaimed by the standard-field registry and not already
// declared becomes a non-system column positioned after the current maximum,
// typed by a heuristic on the header text.
func (e *SchemaExtender) EnsureColumns(ctx context.Context, projectID uint, columnMap *ColumnMap) error {
	existing, err := e.columns.ListByProject(ctx, projectID)
	if err != nil {
		return fmt.Errorf("failed to list columns for project %d: %w", projectID, err)
	}

	if len(existing) == 0 {
		if err := e.createSystemColumns(ctx, projectID); err != nil {
			return err
		}
		existing, err = e.columns.ListByProject(ctx, projectID)
		if err != nil {
			return fmt.Errorf("failed to reload columns for project %d: %w", projectID, err)
		}
	}

	declared := make(map[string]bool, len(existing))
	maxPosition := -1
	for _, col := range existing {
		declared[col.FieldName()] = true
		if col.Position() > maxPosition {
			maxPosition = col.Position()
		}
	}

	for i, header := range columnMap.Headers() {
		if columnMap.IsStandard(i) {
			continue
		}
		trimmed := strings.TrimSpace(header)
		if trimmed == "" {
			continue
		}
		fieldName := strings.ToLower(trimmed)
		if declared[fieldName] {
			continue
		}

		maxPosition++
		col, err := workitem.NewColumnDefinition(projectID, fieldName, trimmed, vo.InferColumnType(trimmed), maxPosition)
		if err != nil {
			return fmt.Errorf("failed to build column for header %q: %w", trimmed, err)
		}
		if err := e.columns.Save(ctx, col); err != nil {
			return fmt.Errorf("failed to save column %q: %w", fieldName, err)
		}
		declared[fieldName] = true

		e.logger.Infow("created custom column from import header",
			"project_id", projectID,
			"field_name", fieldName,
			"column_type", col.ColumnType().String(),
			"position", maxPosition,
		)
	}

	return nil
}

func (e *SchemaExtender) createSystemColumns(ctx context.Context, projectID uint) error {
	for _, sc := range systemColumns {
		col, err := workitem.NewColumnDefinition(projectID, sc.fieldName, sc.displayName, sc.columnType, sc.position)
		if err != nil {
			return fmt.Errorf("failed to build system column %q: %w", sc.fieldName, err)
		}
		col.MarkSystem()
		if err := e.columns.Save(ctx, col); err != nil {
			return fmt.Errorf("failed to save system column %q: %w", sc.fieldName, err)
		}
	}
	e.logger.Infow("created system columns for first import", "project_id", projectID)
	return nil
}
