package workitem

import (
	"fmt"
	"time"

	vo "workbase/internal/domain/workitem/valueobjects"
)

// WorkItem is an importable task/issue record. Summary is the only hard
// requirement; every other attribute degrades to a default.
type WorkItem struct {
	id             uint
	issueID        string
	summary        string
	description    string
	issueType      vo.IssueType
	status         vo.Status
	priority       vo.Priority
	resolution     string
	assigneeID     *uint
	reporterID     *uint
	creatorID      *uint
	projectID      uint
	parentTaskID   *uint
	created        time.Time
	updated        time.Time
	resolved       *time.Time
	dueDate        *time.Time
	labels         []string
	customFields   map[string]string
	position       int
	estimatedHours *int
	actualHours    *int
	uploadBatchID  string
	uploadedAt     time.Time
	uploadedBy     uint
}

func NewWorkItem(summary string, projectID uint) (*WorkItem, error) {
	if len(summary) == 0 {
		return nil, fmt.Errorf("summary is required")
	}
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}

	now := time.Now()
	return &WorkItem{
		summary:   summary,
		projectID: projectID,
		issueType: vo.TypeTask,
		status:    vo.StatusTodo,
		priority:  vo.PriorityMedium,
		created:   now,
		updated:   now,
	}, nil
}

// Params carries every persisted attribute for rebuilding a WorkItem from
// storage.
type Params struct {
	ID             uint
	IssueID        string
	Summary        string
	Description    string
	IssueType      vo.IssueType
	Status         vo.Status
	Priority       vo.Priority
	Resolution     string
	AssigneeID     *uint
	ReporterID     *uint
	CreatorID      *uint
	ProjectID      uint
	ParentTaskID   *uint
	Created        time.Time
	Updated        time.Time
	Resolved       *time.Time
	DueDate        *time.Time
	Labels         []string
	CustomFields   map[string]string
	Position       int
	EstimatedHours *int
	ActualHours    *int
	UploadBatchID  string
	UploadedAt     time.Time
	UploadedBy     uint
}

func Reconstruct(p Params) (*WorkItem, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("work item ID cannot be zero")
	}
	if len(p.IssueID) == 0 {
		return nil, fmt.Errorf("issue ID is required")
	}
	if len(p.Summary) == 0 {
		return nil, fmt.Errorf("summary is required")
	}
	if !p.IssueType.IsValid() {
		return nil, fmt.Errorf("invalid issue type: %s", p.IssueType)
	}
	if !p.Status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", p.Status)
	}
	if !p.Priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", p.Priority)
	}

	return &WorkItem{
		id:             p.ID,
		issueID:        p.IssueID,
		summary:        p.Summary,
		description:    p.Description,
		issueType:      p.IssueType,
		status:         p.Status,
		priority:       p.Priority,
		resolution:     p.Resolution,
		assigneeID:     p.AssigneeID,
		reporterID:     p.ReporterID,
		creatorID:      p.CreatorID,
		projectID:      p.ProjectID,
		parentTaskID:   p.ParentTaskID,
		created:        p.Created,
		updated:        p.Updated,
		resolved:       p.Resolved,
		dueDate:        p.DueDate,
		labels:         p.Labels,
		customFields:   p.CustomFields,
		position:       p.Position,
		estimatedHours: p.EstimatedHours,
		actualHours:    p.ActualHours,
		uploadBatchID:  p.UploadBatchID,
		uploadedAt:     p.UploadedAt,
		uploadedBy:     p.UploadedBy,
	}, nil
}

func (w *WorkItem) ID() uint                 { return w.id }
func (w *WorkItem) IssueID() string          { return w.issueID }
func (w *WorkItem) Summary() string          { return w.summary }
func (w *WorkItem) Description() string      { return w.description }
func (w *WorkItem) IssueType() vo.IssueType  { return w.issueType }
func (w *WorkItem) Status() vo.Status        { return w.status }
func (w *WorkItem) Priority() vo.Priority    { return w.priority }
func (w *WorkItem) Resolution() string       { return w.resolution }
func (w *WorkItem) AssigneeID() *uint        { return w.assigneeID }
func (w *WorkItem) ReporterID() *uint        { return w.reporterID }
func (w *WorkItem) CreatorID() *uint         { return w.creatorID }
func (w *WorkItem) ProjectID() uint          { return w.projectID }
func (w *WorkItem) ParentTaskID() *uint      { return w.parentTaskID }
func (w *WorkItem) Created() time.Time       { return w.created }
func (w *WorkItem) Updated() time.Time       { return w.updated }
func (w *WorkItem) Resolved() *time.Time     { return w.resolved }
func (w *WorkItem) DueDate() *time.Time      { return w.dueDate }
func (w *WorkItem) Position() int            { return w.position }
func (w *WorkItem) EstimatedHours() *int     { return w.estimatedHours }
func (w *WorkItem) ActualHours() *int        { return w.actualHours }
func (w *WorkItem) UploadBatchID() string    { return w.uploadBatchID }
func (w *WorkItem) UploadedAt() time.Time    { return w.uploadedAt }
func (w *WorkItem) UploadedBy() uint         { return w.uploadedBy }

func (w *WorkItem) Labels() []string {
	if w.labels == nil {
		return nil
	}
	labelsCopy := make([]string, len(w.labels))
	copy(labelsCopy, w.labels)
	return labelsCopy
}

func (w *WorkItem) CustomFields() map[string]string {
	if w.customFields == nil {
		return nil
	}
	fieldsCopy := make(map[string]string, len(w.customFields))
	for k, v := range w.customFields {
		fieldsCopy[k] = v
	}
	return fieldsCopy
}

func (w *WorkItem) SetID(id uint) error {
	if w.id != 0 {
		return fmt.Errorf("work item ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("work item ID cannot be zero")
	}
	w.id = id
	return nil
}

func (w *WorkItem) SetIssueID(issueID string) error {
	if len(issueID) == 0 {
		return fmt.Errorf("issue ID cannot be empty")
	}
	w.issueID = issueID
	return nil
}

// Classify sets the work item's type, status and priority in one step.
// Invalid values are rejected rather than silently defaulted; normalization
// of raw import text happens before this call.
func (w *WorkItem) Classify(issueType vo.IssueType, status vo.Status, priority vo.Priority) error {
	if !issueType.IsValid() {
		return fmt.Errorf("invalid issue type: %s", issueType)
	}
	if !status.IsValid() {
		return fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", priority)
	}
	w.issueType = issueType
	w.status = status
	w.priority = priority
	return nil
}

func (w *WorkItem) SetDescription(description string) {
	w.description = description
}

func (w *WorkItem) SetResolution(resolution string) {
	w.resolution = resolution
}

func (w *WorkItem) SetAssignee(userID uint) {
	w.assigneeID = &userID
}

func (w *WorkItem) SetReporter(userID uint) {
	w.reporterID = &userID
}

func (w *WorkItem) SetCreator(userID uint) {
	w.creatorID = &userID
}

func (w *WorkItem) SetParentTask(taskID uint) {
	w.parentTaskID = &taskID
}

func (w *WorkItem) SetTimestamps(created, updated time.Time) {
	w.created = created
	w.updated = updated
}

func (w *WorkItem) SetResolvedAt(t time.Time) {
	w.resolved = &t
}

func (w *WorkItem) SetDueDate(t time.Time) {
	w.dueDate = &t
}

func (w *WorkItem) SetLabels(labels []string) {
	w.labels = labels
}

// PutCustomField records a value for an importer-discovered column. The key
// is the original header text, preserved exactly for round-trip display.
func (w *WorkItem) PutCustomField(header, value string) {
	if w.customFields == nil {
		w.customFields = make(map[string]string)
	}
	w.customFields[header] = value
}

func (w *WorkItem) SetPosition(position int) {
	w.position = position
}

func (w *WorkItem) SetEstimatedHours(hours int) {
	w.estimatedHours = &hours
}

func (w *WorkItem) SetActualHours(hours int) {
	w.actualHours = &hours
}

// SetProvenance records which upload created this work item so the whole
// batch can later be deleted as a unit.
func (w *WorkItem) SetProvenance(batchID string, uploadedAt time.Time, uploadedBy uint) {
	w.uploadBatchID = batchID
	w.uploadedAt = uploadedAt
	w.uploadedBy = uploadedBy
}
