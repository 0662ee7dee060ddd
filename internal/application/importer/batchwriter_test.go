package importer

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workbase/internal/domain/workitem"
)

func makeItems(t *testing.T, n int) []*workitem.WorkItem {
	t.Helper()
	items := make([]*workitem.WorkItem, n)
	for i := range items {
		item, err := workitem.NewWorkItem(fmt.Sprintf("task %d", i), 1)
		require.NoError(t, err)
		require.NoError(t, item.SetIssueID(fmt.Sprintf("TASK-%d", i+1)))
		items[i] = item
	}
	return items
}

func TestBatchWriter_CommitsInChunks(t *testing.T) {
	var batches [][]*workitem.WorkItem
	repo := &mockWorkItemRepository{
		SaveBatchFunc: func(_ context.Context, items []*workitem.WorkItem) error {
			batches = append(batches, items)
			return nil
		},
	}

	writer := NewBatchWriter(repo, &mockTxRunner{}, noopLogger{})
	result, err := writer.WriteAll(context.Background(), makeItems(t, 250))
	require.NoError(t, err)

	assert.Equal(t, 250, result.Created)
	assert.Equal(t, 0, result.Skipped)
	require.Len(t, batches, 3)
	assert.Len(t, batches[0], 100)
	assert.Len(t, batches[1], 100)
	assert.Len(t, batches[2], 50)
}

func TestBatchWriter_FailedChunkRetriesRowByRow(t *testing.T) {
	repo := &mockWorkItemRepository{
		SaveBatchFunc: func(_ context.Context, _ []*workitem.WorkItem) error {
			return fmt.Errorf("Duplicate entry 'TASK-2' for key 'work_items.issue_id'")
		},
		SaveFunc: func(_ context.Context, item *workitem.WorkItem) error {
			if item.IssueID() == "TASK-2" {
				return fmt.Errorf("Duplicate entry 'TASK-2' for key 'work_items.issue_id'")
			}
			return nil
		},
	}

	writer := NewBatchWriter(repo, &mockTxRunner{}, noopLogger{})
	result, err := writer.WriteAll(context.Background(), makeItems(t, 3))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.Skipped)
}

func TestBatchWriter_NonDuplicateRowFailureSkipsNotFatal(t *testing.T) {
	repo := &mockWorkItemRepository{
		SaveBatchFunc: func(_ context.Context, _ []*workitem.WorkItem) error {
			return fmt.Errorf("chunk boom")
		},
		SaveFunc: func(_ context.Context, item *workitem.WorkItem) error {
			if item.IssueID() == "TASK-1" {
				return fmt.Errorf("connection reset")
			}
			return nil
		},
	}

	writer := NewBatchWriter(repo, &mockTxRunner{}, noopLogger{})
	result, err := writer.WriteAll(context.Background(), makeItems(t, 2))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Skipped)
}

func TestBatchWriter_Empty(t *testing.T) {
	writer := NewBatchWriter(&mockWorkItemRepository{}, &mockTxRunner{}, noopLogger{})
	result, err := writer.WriteAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, WriteResult{}, result)
}
