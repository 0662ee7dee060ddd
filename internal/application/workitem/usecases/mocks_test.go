package usecases

import (
	"context"
	"fmt"

	"workbase/internal/domain/workitem"
	"workbase/internal/shared/logger"
)

type mockWorkItemRepository struct {
	SaveFunc                   func(ctx context.Context, item *workitem.WorkItem) error
	SaveBatchFunc              func(ctx context.Context, items []*workitem.WorkItem) error
	GetByIDFunc                func(ctx context.Context, id uint) (*workitem.WorkItem, error)
	GetByIssueIDFunc           func(ctx context.Context, issueID string) (*workitem.WorkItem, error)
	ListFunc                   func(ctx context.Context, filter workitem.Filter) ([]*workitem.WorkItem, int64, error)
	DeleteFunc                 func(ctx context.Context, id uint) error
	DeleteByBatchIDFunc        func(ctx context.Context, batchID string) (int64, error)
	RecentIssueIDsFunc         func(ctx context.Context, limit int) ([]string, error)
	FilterExistingIssueIDsFunc func(ctx context.Context, issueIDs []string) (map[string]bool, error)
}

func (m *mockWorkItemRepository) Save(ctx context.Context, item *workitem.WorkItem) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, item)
	}
	return nil
}

func (m *mockWorkItemRepository) SaveBatch(ctx context.Context, items []*workitem.WorkItem) error {
	if m.SaveBatchFunc != nil {
		return m.SaveBatchFunc(ctx, items)
	}
	return nil
}

func (m *mockWorkItemRepository) GetByID(ctx context.Context, id uint) (*workitem.WorkItem, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, fmt.Errorf("not found")
}

func (m *mockWorkItemRepository) GetByIssueID(ctx context.Context, issueID string) (*workitem.WorkItem, error) {
	if m.GetByIssueIDFunc != nil {
		return m.GetByIssueIDFunc(ctx, issueID)
	}
	return nil, fmt.Errorf("not found")
}

func (m *mockWorkItemRepository) List(ctx context.Context, filter workitem.Filter) ([]*workitem.WorkItem, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockWorkItemRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockWorkItemRepository) DeleteByBatchID(ctx context.Context, batchID string) (int64, error) {
	if m.DeleteByBatchIDFunc != nil {
		return m.DeleteByBatchIDFunc(ctx, batchID)
	}
	return 0, nil
}

func (m *mockWorkItemRepository) RecentIssueIDs(ctx context.Context, limit int) ([]string, error) {
	if m.RecentIssueIDsFunc != nil {
		return m.RecentIssueIDsFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockWorkItemRepository) FilterExistingIssueIDs(ctx context.Context, issueIDs []string) (map[string]bool, error) {
	if m.FilterExistingIssueIDsFunc != nil {
		return m.FilterExistingIssueIDsFunc(ctx, issueIDs)
	}
	return map[string]bool{}, nil
}

type mockColumnRepository struct {
	SaveFunc          func(ctx context.Context, column *workitem.ColumnDefinition) error
	GetByIDFunc       func(ctx context.Context, id uint) (*workitem.ColumnDefinition, error)
	ListByProjectFunc func(ctx context.Context, projectID uint) ([]*workitem.ColumnDefinition, error)
	DeleteFunc        func(ctx context.Context, id uint) error
}

func (m *mockColumnRepository) Save(ctx context.Context, column *workitem.ColumnDefinition) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, column)
	}
	return nil
}

func (m *mockColumnRepository) GetByID(ctx context.Context, id uint) (*workitem.ColumnDefinition, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, fmt.Errorf("not found")
}

func (m *mockColumnRepository) ListByProject(ctx context.Context, projectID uint) ([]*workitem.ColumnDefinition, error) {
	if m.ListByProjectFunc != nil {
		return m.ListByProjectFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *mockColumnRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any)            {}
func (noopLogger) Info(string, ...any)             {}
func (noopLogger) Warn(string, ...any)             {}
func (noopLogger) Error(string, ...any)            {}
func (n noopLogger) With(...any) logger.Interface  { return n }
func (n noopLogger) Named(string) logger.Interface { return n }
func (noopLogger) Debugw(string, ...interface{})   {}
func (noopLogger) Infow(string, ...interface{})    {}
func (noopLogger) Warnw(string, ...interface{})    {}
func (noopLogger) Errorw(string, ...interface{})   {}
