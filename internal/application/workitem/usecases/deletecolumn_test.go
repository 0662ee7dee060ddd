package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workbase/internal/domain/workitem"
	vo "workbase/internal/domain/workitem/valueobjects"
	"workbase/internal/shared/errors"
)

func reconstructColumn(t *testing.T, id uint, fieldName string, isSystem bool) *workitem.ColumnDefinition {
	t.Helper()
	col, err := workitem.ReconstructColumnDefinition(
		id, 1, fieldName, fieldName, vo.ColumnText, 200, 0, true, isSystem, time.Now())
	require.NoError(t, err)
	return col
}

func TestDeleteColumn_RejectsSystemColumn(t *testing.T) {
	var deleted bool
	repo := &mockColumnRepository{
		GetByIDFunc: func(_ context.Context, id uint) (*workitem.ColumnDefinition, error) {
			return reconstructColumn(t, id, "summary", true), nil
		},
		DeleteFunc: func(_ context.Context, _ uint) error {
			deleted = true
			return nil
		},
	}
	uc := NewDeleteColumnUseCase(repo, noopLogger{})

	err := uc.Execute(context.Background(), DeleteColumnCommand{ColumnID: 2})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
	assert.False(t, deleted)
}

func TestDeleteColumn_DeletesCustomColumn(t *testing.T) {
	var deletedID uint
	repo := &mockColumnRepository{
		GetByIDFunc: func(_ context.Context, id uint) (*workitem.ColumnDefinition, error) {
			return reconstructColumn(t, id, "custom field a", false), nil
		},
		DeleteFunc: func(_ context.Context, id uint) error {
			deletedID = id
			return nil
		},
	}
	uc := NewDeleteColumnUseCase(repo, noopLogger{})

	require.NoError(t, uc.Execute(context.Background(), DeleteColumnCommand{ColumnID: 9}))
	assert.Equal(t, uint(9), deletedID)
}
