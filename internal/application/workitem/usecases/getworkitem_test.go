package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workbase/internal/domain/workitem"
	"workbase/internal/shared/errors"
	"workbase/internal/shared/services/markdown"
)

func storedItem(t *testing.T) *workitem.WorkItem {
	t.Helper()
	item, err := workitem.NewWorkItem("Fix login", 1)
	require.NoError(t, err)
	require.NoError(t, item.SetIssueID("TASK-5"))
	item.SetDescription("**bold** text")
	require.NoError(t, item.SetID(5))
	return item
}

func TestGetWorkItem_RendersDescription(t *testing.T) {
	repo := &mockWorkItemRepository{
		GetByIDFunc: func(_ context.Context, id uint) (*workitem.WorkItem, error) {
			return storedItem(t), nil
		},
	}
	uc := NewGetWorkItemUseCase(repo, markdown.NewService(), noopLogger{})

	dto, err := uc.Execute(context.Background(), GetWorkItemQuery{WorkItemID: 5})
	require.NoError(t, err)

	assert.Equal(t, "TASK-5", dto.IssueID)
	assert.Equal(t, "**bold** text", dto.Description)
	assert.Contains(t, dto.DescriptionHTML, "<strong>bold</strong>")
}

func TestGetWorkItem_ByIssueID(t *testing.T) {
	repo := &mockWorkItemRepository{
		GetByIssueIDFunc: func(_ context.Context, issueID string) (*workitem.WorkItem, error) {
			assert.Equal(t, "TASK-5", issueID)
			return storedItem(t), nil
		},
	}
	uc := NewGetWorkItemUseCase(repo, markdown.NewService(), noopLogger{})

	dto, err := uc.Execute(context.Background(), GetWorkItemQuery{IssueID: "TASK-5"})
	require.NoError(t, err)
	assert.Equal(t, uint(5), dto.ID)
}

func TestGetWorkItem_RequiresIdentifier(t *testing.T) {
	uc := NewGetWorkItemUseCase(&mockWorkItemRepository{}, markdown.NewService(), noopLogger{})

	_, err := uc.Execute(context.Background(), GetWorkItemQuery{})
	assert.True(t, errors.IsValidationError(err))
}
