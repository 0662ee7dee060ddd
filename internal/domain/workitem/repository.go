package workitem

import (
	"context"

	vo "workbase/internal/domain/workitem/valueobjects"
)

type Repository interface {
	Save(ctx context.Context, item *WorkItem) error
	SaveBatch(ctx context.Context, items []*WorkItem) error
	GetByID(ctx context.Context, id uint) (*WorkItem, error)
	GetByIssueID(ctx context.Context, issueID string) (*WorkItem, error)
	List(ctx context.Context, filter Filter) ([]*WorkItem, int64, error)
	Delete(ctx context.Context, id uint) error
	DeleteByBatchID(ctx context.Context, batchID string) (int64, error)

	// RecentIssueIDs returns the issue ids of the most recently created work
	// items, newest first, bounded by limit. Seeds the number allocator.
	RecentIssueIDs(ctx context.Context, limit int) ([]string, error)

	// FilterExistingIssueIDs returns the subset of ids already present in the
	// store, as a set. One query regardless of input size.
	FilterExistingIssueIDs(ctx context.Context, issueIDs []string) (map[string]bool, error)
}

type Filter struct {
	ProjectID     *uint
	Status        *vo.Status
	Priority      *vo.Priority
	IssueType     *vo.IssueType
	AssigneeID    *uint
	UploadBatchID *string
	Page          int
	PageSize      int
	SortBy        string
	SortOrder     string
}

type ColumnRepository interface {
	Save(ctx context.Context, column *ColumnDefinition) error
	GetByID(ctx context.Context, id uint) (*ColumnDefinition, error)
	ListByProject(ctx context.Context, projectID uint) ([]*ColumnDefinition, error)
	Delete(ctx context.Context, id uint) error
}
