package importer

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workbase/internal/domain/workitem"
	vo "workbase/internal/domain/workitem/valueobjects"
)

func newTestTransformer(headers []string, existingIDs map[string]bool) *RowTransformer {
	if existingIDs == nil {
		existingIDs = map[string]bool{}
	}
	cm := NewColumnMap(headers)
	resolver := &IdentityResolver{
		byName:     map[string]uint{"alice cooper": 2},
		byEmail:    map[string]uint{"alice@example.com": 2},
		importerID: 99,
	}
	return NewRowTransformer(cm, resolver, workitem.NewNumberAllocator(nil), existingIDs, 1, "proj-123-0001", noopLogger{})
}

func TestTransform_SkipsRowWithoutSummary(t *testing.T) {
	tr := newTestTransformer([]string{"Summary", "Status"}, nil)

	item, err := tr.Transform([]string{"", "Done"}, 0)
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestTransform_EnumNormalization(t *testing.T) {
	tr := newTestTransformer([]string{"Summary", "Status", "Priority", "Issue Type"}, nil)

	item, err := tr.Transform([]string{"Fix login", "Delivered", "urgent", "1"}, 0)
	require.NoError(t, err)
	require.NotNil(t, item)

	assert.Equal(t, vo.StatusInReview, item.Status())
	assert.Equal(t, vo.PriorityHighest, item.Priority())
	assert.Equal(t, vo.TypeBug, item.IssueType(), "numeric type code remaps")
}

func TestTransform_EnumDefaults(t *testing.T) {
	tr := newTestTransformer([]string{"Summary", "Status", "Priority", "Issue Type"}, nil)

	item, err := tr.Transform([]string{"Fix login", "mystery", "whenever", "gadget"}, 0)
	require.NoError(t, err)

	assert.Equal(t, vo.StatusTodo, item.Status())
	assert.Equal(t, vo.PriorityMedium, item.Priority())
	assert.Equal(t, vo.TypeTask, item.IssueType())
}

func TestTransform_CompactDateFormat(t *testing.T) {
	tr := newTestTransformer([]string{"Summary", "Created", "Due Date"}, nil)

	item, err := tr.Transform([]string{"Fix login", "03-Oct-25", "2026-01-15"}, 0)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, time.October, 3, 0, 0, 0, 0, time.UTC), item.Created())
	require.NotNil(t, item.DueDate())
	assert.Equal(t, time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC), *item.DueDate())
}

func TestTransform_DueDateDefaultsSevenDaysOut(t *testing.T) {
	tr := newTestTransformer([]string{"Summary", "Due Date"}, nil)
	fixed := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	tr.now = func() time.Time { return fixed }

	item, err := tr.Transform([]string{"Fix login", "not a date"}, 0)
	require.NoError(t, err)

	require.NotNil(t, item.DueDate())
	assert.Equal(t, fixed.Add(7*24*time.Hour), *item.DueDate())
	assert.Equal(t, fixed, item.Created(), "unparseable created date falls back to now")
}

func TestTransform_Numbers(t *testing.T) {
	tr := newTestTransformer([]string{"Summary", "Estimated Hours", "Actual Hours", "Position"}, nil)

	item, err := tr.Transform([]string{"Fix login", "8", "junk", "42"}, 0)
	require.NoError(t, err)

	require.NotNil(t, item.EstimatedHours())
	assert.Equal(t, 8, *item.EstimatedHours())
	assert.Nil(t, item.ActualHours(), "unparseable hours stay nil")
	assert.Equal(t, 42, item.Position())
}

func TestTransform_PositionDefaultsFromRowIndex(t *testing.T) {
	tr := newTestTransformer([]string{"Summary"}, nil)

	item, err := tr.Transform([]string{"Fix login"}, 2)
	require.NoError(t, err)
	assert.Equal(t, 3*1024, item.Position())
}

func TestTransform_Labels(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "json array", raw: `["backend","auth"]`, want: []string{"backend", "auth"}},
		{name: "comma separated", raw: "backend, auth ,", want: []string{"backend", "auth"}},
		{name: "empty stays nil", raw: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestTransformer([]string{"Summary", "Labels"}, nil)
			item, err := tr.Transform([]string{"Fix login", tt.raw}, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, item.Labels())
		})
	}
}

func TestTransform_CustomFieldsOnlyNonEmpty(t *testing.T) {
	tr := newTestTransformer([]string{"Summary", "Custom Field A"}, nil)

	withValue, err := tr.Transform([]string{"First", "hello"}, 0)
	require.NoError(t, err)
	blank, err := tr.Transform([]string{"Second", ""}, 1)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"Custom Field A": "hello"}, withValue.CustomFields())
	_, present := blank.CustomFields()["Custom Field A"]
	assert.False(t, present, "empty cell must not create the key")
}

func TestTransform_IdentityResolution(t *testing.T) {
	tr := newTestTransformer([]string{"Summary", "Assignee", "Reporter"}, nil)

	item, err := tr.Transform([]string{"Fix login", "alice@example.com", "Unknown Person"}, 0)
	require.NoError(t, err)

	require.NotNil(t, item.AssigneeID())
	assert.Equal(t, uint(2), *item.AssigneeID())
	require.NotNil(t, item.ReporterID())
	assert.Equal(t, uint(99), *item.ReporterID(), "unknown reporter falls back to importer")
	require.NotNil(t, item.CreatorID())
	assert.Equal(t, uint(99), *item.CreatorID(), "missing creator column falls back to importer")
}

func TestTransform_IssueIDAllocation(t *testing.T) {
	tr := newTestTransformer([]string{"Summary"}, nil)

	first, err := tr.Transform([]string{"one"}, 0)
	require.NoError(t, err)
	second, err := tr.Transform([]string{"two"}, 1)
	require.NoError(t, err)

	assert.Equal(t, "TASK-1", first.IssueID())
	assert.Equal(t, "TASK-2", second.IssueID())
}

func TestTransform_SuppliedIssueIDKept(t *testing.T) {
	tr := newTestTransformer([]string{"Summary", "Issue ID"}, nil)

	item, err := tr.Transform([]string{"one", "JIRA-77"}, 0)
	require.NoError(t, err)
	assert.Equal(t, "JIRA-77", item.IssueID())
}

func TestTransform_DuplicateSuppliedIssueIDSuffixed(t *testing.T) {
	tr := newTestTransformer([]string{"Summary", "Issue ID"}, map[string]bool{"JIRA-77": true})
	fixed := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	tr.now = func() time.Time { return fixed }

	item, err := tr.Transform([]string{"one", "JIRA-77"}, 0)
	require.NoError(t, err)
	assert.Equal(t, "JIRA-77-"+strconv.FormatInt(fixed.UnixMilli(), 10), item.IssueID())
}

func TestTransform_Provenance(t *testing.T) {
	tr := newTestTransformer([]string{"Summary"}, nil)

	item, err := tr.Transform([]string{"one"}, 0)
	require.NoError(t, err)

	assert.Equal(t, "proj-123-0001", item.UploadBatchID())
	assert.Equal(t, uint(99), item.UploadedBy())
	assert.False(t, item.UploadedAt().IsZero())
}
