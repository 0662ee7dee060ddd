package importer

import "strings"

// Field names one logical work-item attribute the importer knows how to fill.
type Field string

const (
	FieldIssueID        Field = "issue_id"
	FieldSummary        Field = "summary"
	FieldDescription    Field = "description"
	FieldIssueType      Field = "issue_type"
	FieldStatus         Field = "status"
	FieldProjectName    Field = "project_name"
	FieldProjectID      Field = "project_id"
	FieldWorkspaceID    Field = "workspace_id"
	FieldPriority       Field = "priority"
	FieldResolution     Field = "resolution"
	FieldAssignee       Field = "assignee"
	FieldReporter       Field = "reporter"
	FieldCreator        Field = "creator"
	FieldCreatedDate    Field = "created_date"
	FieldUpdatedDate    Field = "updated_date"
	FieldResolvedDate   Field = "resolved_date"
	FieldDueDate        Field = "due_date"
	FieldLabels         Field = "labels"
	FieldEstimatedHours Field = "estimated_hours"
	FieldActualHours    Field = "actual_hours"
	FieldPosition       Field = "position"
	FieldParentTask     Field = "parent_task"
)

// fieldCandidates lists, per field, the header spellings recognized in
// priority order. The first header in the file matching any candidate wins;
// later duplicates of the same field are left to the custom-field path.
var fieldCandidates = map[Field][]string{
	FieldIssueID:        {"issue id", "issue key", "issue", "key", "id", "task id", "ticket", "ticket id"},
	FieldSummary:        {"summary", "task", "title", "name", "subject"},
	FieldDescription:    {"description", "details", "notes", "body"},
	FieldIssueType:      {"issue type", "type", "work item type", "story type"},
	FieldStatus:         {"status", "state", "current state", "workflow status"},
	FieldProjectName:    {"project name", "project"},
	FieldProjectID:      {"project id", "project key"},
	FieldWorkspaceID:    {"workspace id", "workspace", "board id", "board"},
	FieldPriority:       {"priority", "importance", "severity"},
	FieldResolution:     {"resolution", "resolution status", "outcome"},
	FieldAssignee:       {"assignee", "assigned to", "owner", "owned by"},
	FieldReporter:       {"reporter", "reported by", "requested by"},
	FieldCreator:        {"creator", "created by", "author"},
	FieldCreatedDate:    {"created", "created at", "created date", "creation date", "date created"},
	FieldUpdatedDate:    {"updated", "updated at", "updated date", "last updated", "modified", "date modified"},
	FieldResolvedDate:   {"resolved", "resolved at", "resolved date", "date resolved", "completed at", "accepted at"},
	FieldDueDate:        {"due date", "due", "deadline", "target date"},
	FieldLabels:         {"labels", "label", "tags", "tag"},
	FieldEstimatedHours: {"estimated hours", "estimate", "estimated", "original estimate"},
	FieldActualHours:    {"actual hours", "actual", "time spent", "logged hours"},
	FieldPosition:       {"position", "rank", "order", "sort order"},
	FieldParentTask:     {"parent task", "parent", "parent id", "epic link"},
}

// ColumnMap resolves logical fields to their column index in one parsed file.
type ColumnMap struct {
	headers    []string
	indexes    map[Field]int
	recognized map[int]bool
}

// NewColumnMap matches the header row against the candidate registry.
// Matching is case-insensitive on normalized header text, and each field binds
// to the leftmost header among its candidates.
func NewColumnMap(headers []string) *ColumnMap {
	byName := make(map[string]int, len(headers))
	for i, h := range headers {
		key := normalizeHeader(h)
		if _, taken := byName[key]; !taken {
			byName[key] = i
		}
	}

	cm := &ColumnMap{
		headers:    headers,
		indexes:    make(map[Field]int),
		recognized: make(map[int]bool),
	}
	for field, candidates := range fieldCandidates {
		for _, candidate := range candidates {
			if idx, ok := byName[candidate]; ok {
				cm.indexes[field] = idx
				cm.recognized[idx] = true
				break
			}
		}
	}
	return cm
}

// FieldIndex returns the column index bound to a field, or -1 when the file
// has no header for it.
func (m *ColumnMap) FieldIndex(field Field) int {
	if idx, ok := m.indexes[field]; ok {
		return idx
	}
	return -1
}

// Value reads a field's cell from a row, empty when the field is unbound or
// the row is short.
func (m *ColumnMap) Value(row []string, field Field) string {
	idx := m.FieldIndex(field)
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// IsStandard reports whether the header at index was claimed by a field.
// Unclaimed headers become custom fields.
func (m *ColumnMap) IsStandard(index int) bool {
	return m.recognized[index]
}

// Headers returns the original header row.
func (m *ColumnMap) Headers() []string {
	return m.headers
}

// HasField reports whether the file bound the given field.
func (m *ColumnMap) HasField(field Field) bool {
	_, ok := m.indexes[field]
	return ok
}

// normalizeHeader lowercases a header and collapses separator punctuation so
// "Issue_Type", "issue-type" and "Issue Type" all compare equal.
func normalizeHeader(header string) string {
	h := strings.ToLower(strings.TrimSpace(header))
	h = strings.ReplaceAll(h, "_", " ")
	h = strings.ReplaceAll(h, "-", " ")
	return strings.Join(strings.Fields(h), " ")
}
