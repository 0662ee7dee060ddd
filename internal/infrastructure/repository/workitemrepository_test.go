package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"workbase/internal/domain/workitem"
	vo "workbase/internal/domain/workitem/valueobjects"
	"workbase/internal/infrastructure/persistence/models"
	"workbase/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = database.AutoMigrate(
		&models.WorkItemModel{},
		&models.ColumnDefinitionModel{},
		&models.UserModel{},
		&models.ProjectModel{},
	)
	require.NoError(t, err)

	return database
}

func createTestItem(t *testing.T, issueID, summary string) *workitem.WorkItem {
	item, err := workitem.NewWorkItem(summary, 1)
	require.NoError(t, err)
	require.NoError(t, item.SetIssueID(issueID))
	item.SetProvenance("batch-1", time.Now(), 1)
	return item
}

func TestWorkItemRepository_Save(t *testing.T) {
	repo := NewWorkItemRepository(setupTestDB(t))
	ctx := context.Background()

	t.Run("save assigns id", func(t *testing.T) {
		item := createTestItem(t, "TASK-1", "First item")
		item.SetLabels([]string{"backend", "auth"})
		item.PutCustomField("Custom Field A", "hello")

		require.NoError(t, repo.Save(ctx, item))
		assert.NotZero(t, item.ID())

		found, err := repo.GetByIssueID(ctx, "TASK-1")
		require.NoError(t, err)
		assert.Equal(t, "First item", found.Summary())
		assert.Equal(t, []string{"backend", "auth"}, found.Labels())
		assert.Equal(t, map[string]string{"Custom Field A": "hello"}, found.CustomFields())
	})

	t.Run("duplicate issue id is a duplicate error", func(t *testing.T) {
		first := createTestItem(t, "TASK-DUP", "one")
		require.NoError(t, repo.Save(ctx, first))

		second := createTestItem(t, "TASK-DUP", "two")
		err := repo.Save(ctx, second)
		require.Error(t, err)
		assert.True(t, errors.IsDuplicateError(err))
	})
}

func TestWorkItemRepository_SaveBatch(t *testing.T) {
	repo := NewWorkItemRepository(setupTestDB(t))
	ctx := context.Background()

	items := make([]*workitem.WorkItem, 5)
	for i := range items {
		items[i] = createTestItem(t, fmt.Sprintf("TASK-%d", i+1), fmt.Sprintf("item %d", i+1))
	}

	require.NoError(t, repo.SaveBatch(ctx, items))
	for _, item := range items {
		assert.NotZero(t, item.ID())
	}

	_, total, err := repo.List(ctx, workitem.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
}

func TestWorkItemRepository_List(t *testing.T) {
	repo := NewWorkItemRepository(setupTestDB(t))
	ctx := context.Background()

	done := createTestItem(t, "TASK-1", "done item")
	require.NoError(t, done.Classify(vo.TypeBug, vo.StatusDone, vo.PriorityHigh))
	require.NoError(t, repo.Save(ctx, done))

	todo := createTestItem(t, "TASK-2", "todo item")
	require.NoError(t, repo.Save(ctx, todo))

	status := vo.StatusDone
	items, total, err := repo.List(ctx, workitem.Filter{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "TASK-1", items[0].IssueID())
}

func TestWorkItemRepository_DeleteByBatchID(t *testing.T) {
	repo := NewWorkItemRepository(setupTestDB(t))
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		item := createTestItem(t, fmt.Sprintf("TASK-%d", i), "batched")
		require.NoError(t, repo.Save(ctx, item))
	}
	other, err := workitem.NewWorkItem("other batch", 1)
	require.NoError(t, err)
	require.NoError(t, other.SetIssueID("TASK-99"))
	other.SetProvenance("batch-2", time.Now(), 1)
	require.NoError(t, repo.Save(ctx, other))

	deleted, err := repo.DeleteByBatchID(ctx, "batch-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	_, total, err := repo.List(ctx, workitem.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestWorkItemRepository_RecentIssueIDs(t *testing.T) {
	repo := NewWorkItemRepository(setupTestDB(t))
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		item := createTestItem(t, fmt.Sprintf("TASK-%d", i), "item")
		require.NoError(t, repo.Save(ctx, item))
	}

	ids, err := repo.RecentIssueIDs(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"TASK-5", "TASK-4", "TASK-3"}, ids, "newest first, bounded by limit")
}

func TestWorkItemRepository_FilterExistingIssueIDs(t *testing.T) {
	repo := NewWorkItemRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, createTestItem(t, "TASK-1", "one")))
	require.NoError(t, repo.Save(ctx, createTestItem(t, "TASK-2", "two")))

	existing, err := repo.FilterExistingIssueIDs(ctx, []string{"TASK-1", "TASK-2", "TASK-404"})
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"TASK-1": true, "TASK-2": true}, existing)

	empty, err := repo.FilterExistingIssueIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestColumnDefinitionRepository_UniquePerProject(t *testing.T) {
	repo := NewColumnDefinitionRepository(setupTestDB(t))
	ctx := context.Background()

	first, err := workitem.NewColumnDefinition(1, "team", "Team", vo.ColumnText, 5)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, first))

	dup, err := workitem.NewColumnDefinition(1, "team", "Team", vo.ColumnText, 6)
	require.NoError(t, err)
	err = repo.Save(ctx, dup)
	require.Error(t, err)
	assert.True(t, errors.IsDuplicateError(err), "losing concurrent creator errors harmlessly")

	otherProject, err := workitem.NewColumnDefinition(2, "team", "Team", vo.ColumnText, 5)
	require.NoError(t, err)
	assert.NoError(t, repo.Save(ctx, otherProject), "same field name allowed in another project")
}
