package importer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workbase/internal/domain/workitem"
	vo "workbase/internal/domain/workitem/valueobjects"
)

// columnStore is an in-memory ColumnRepository for schema tests.
type columnStore struct {
	mockColumnRepository
	columns []*workitem.ColumnDefinition
}

func newColumnStore() *columnStore {
	s := &columnStore{}
	s.SaveFunc = func(_ context.Context, col *workitem.ColumnDefinition) error {
		if col.ID() == 0 {
			if err := col.SetID(uint(len(s.columns) + 1)); err != nil {
				return err
			}
		}
		s.columns = append(s.columns, col)
		return nil
	}
	s.ListByProjectFunc = func(_ context.Context, projectID uint) ([]*workitem.ColumnDefinition, error) {
		var out []*workitem.ColumnDefinition
		for _, col := range s.columns {
			if col.ProjectID() == projectID {
				out = append(out, col)
			}
		}
		return out, nil
	}
	return s
}

func (s *columnStore) byFieldName(name string) *workitem.ColumnDefinition {
	for _, col := range s.columns {
		if col.FieldName() == name {
			return col
		}
	}
	return nil
}

func TestSchemaExtender_FirstImportCreatesSystemColumns(t *testing.T) {
	store := newColumnStore()
	extender := NewSchemaExtender(store, noopLogger{})
	cm := NewColumnMap([]string{"Summary", "Status"})

	err := extender.EnsureColumns(context.Background(), 1, cm)
	require.NoError(t, err)

	require.Len(t, store.columns, 5)
	for i, want := range []string{"issue_id", "summary", "status", "priority", "assignee"} {
		assert.Equal(t, want, store.columns[i].FieldName())
		assert.Equal(t, i, store.columns[i].Position())
		assert.True(t, store.columns[i].IsSystem())
	}
}

func TestSchemaExtender_NovelHeadersBecomeCustomColumns(t *testing.T) {
	store := newColumnStore()
	extender := NewSchemaExtender(store, noopLogger{})
	cm := NewColumnMap([]string{"Summary", "Ship Date", "Customer Tags", "Team"})

	err := extender.EnsureColumns(context.Background(), 1, cm)
	require.NoError(t, err)

	// 5 system columns plus one per novel header.
	require.Len(t, store.columns, 8)

	shipDate := store.byFieldName("ship date")
	require.NotNil(t, shipDate)
	assert.Equal(t, vo.ColumnDate, shipDate.ColumnType())
	assert.Equal(t, "Ship Date", shipDate.DisplayName())
	assert.Equal(t, 5, shipDate.Position())
	assert.False(t, shipDate.IsSystem())

	tags := store.byFieldName("customer tags")
	require.NotNil(t, tags)
	assert.Equal(t, vo.ColumnLabels, tags.ColumnType())

	team := store.byFieldName("team")
	require.NotNil(t, team)
	assert.Equal(t, vo.ColumnText, team.ColumnType())
}

func TestSchemaExtender_Idempotent(t *testing.T) {
	store := newColumnStore()
	extender := NewSchemaExtender(store, noopLogger{})
	cm := NewColumnMap([]string{"Summary", "Custom Field A"})

	for i := 0; i < 3; i++ {
		require.NoError(t, extender.EnsureColumns(context.Background(), 1, cm))
	}

	assert.Len(t, store.columns, 6, "re-importing the same headers creates nothing")
}

func TestSchemaExtender_ExistingColumnsSkipSystemSet(t *testing.T) {
	store := newColumnStore()
	existing, err := workitem.NewColumnDefinition(1, "summary", "Summary", vo.ColumnText, 0)
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), existing))

	extender := NewSchemaExtender(store, noopLogger{})
	cm := NewColumnMap([]string{"Summary"})
	require.NoError(t, extender.EnsureColumns(context.Background(), 1, cm))

	assert.Len(t, store.columns, 1, "a project with columns never gets the system set retrofitted")
}
