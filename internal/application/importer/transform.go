package importer

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"workbase/internal/domain/workitem"
	vo "workbase/internal/domain/workitem/valueobjects"
	"workbase/internal/shared/logger"
)

// compactDateLayout matches tracker exports like "03-Oct-25". Tried first
// because generic parsing misreads its two-digit year.
const compactDateLayout = "02-Jan-06"

var genericDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"01/02/2006 15:04",
	"01/02/2006",
	"02/01/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// dueDateDefaultOffset keeps due dates non-null so date sorting stays
// well-defined for imported rows.
const dueDateDefaultOffset = 7 * 24 * time.Hour

// RowTransformer maps raw rows into WorkItems. One instance serves one
// import: it carries the file's column map, the pre-resolved identity map,
// the issue-id allocator, and the batch provenance stamped onto every item.
type RowTransformer struct {
	columnMap   *ColumnMap
	identities  *IdentityResolver
	allocator   *workitem.NumberAllocator
	existingIDs map[string]bool
	projectID   uint
	batchID     string
	uploadedAt  time.Time
	logger      logger.Interface
	now         func() time.Time
}

func NewRowTransformer(
	columnMap *ColumnMap,
	identities *IdentityResolver,
	allocator *workitem.NumberAllocator,
	existingIDs map[string]bool,
	projectID uint,
	batchID string,
	log logger.Interface,
) *RowTransformer {
	return &RowTransformer{
		columnMap:   columnMap,
		identities:  identities,
		allocator:   allocator,
		existingIDs: existingIDs,
		projectID:   projectID,
		batchID:     batchID,
		uploadedAt:  time.Now(),
		logger:      log,
		now:         time.Now,
	}
}

// Transform builds a WorkItem from one data row. Returns (nil, nil) when the
// row has no summary; summary is the only hard requirement and such rows are
// skipped rather than failing the import.
func (t *RowTransformer) Transform(row []string, rowIndex int) (*workitem.WorkItem, error) {
	summary := t.columnMap.Value(row, FieldSummary)
	if summary == "" {
		return nil, nil
	}

	item, err := workitem.NewWorkItem(summary, t.projectID)
	if err != nil {
		return nil, fmt.Errorf("row %d: %w", rowIndex, err)
	}

	if err := item.SetIssueID(t.resolveIssueID(row, rowIndex)); err != nil {
		return nil, fmt.Errorf("row %d: %w", rowIndex, err)
	}

	issueType := vo.NormalizeIssueType(t.columnMap.Value(row, FieldIssueType))
	status := vo.NormalizeStatus(t.columnMap.Value(row, FieldStatus))
	priority := vo.NormalizePriority(t.columnMap.Value(row, FieldPriority))
	if err := item.Classify(issueType, status, priority); err != nil {
		return nil, fmt.Errorf("row %d: %w", rowIndex, err)
	}

	if desc := t.columnMap.Value(row, FieldDescription); desc != "" {
		item.SetDescription(desc)
	}
	if res := t.columnMap.Value(row, FieldResolution); res != "" {
		item.SetResolution(res)
	}

	t.applyDates(item, row)
	t.applyNumbers(item, row, rowIndex)
	t.applyLabels(item, row)
	t.applyIdentities(item, row)
	t.applyCustomFields(item, row)

	item.SetProvenance(t.batchID, t.uploadedAt, t.identities.ImporterID())
	return item, nil
}

// resolveIssueID keeps a supplied id unless the store already holds it, in
// which case the id gets a timestamp suffix instead of overwriting the
// existing record. Rows without an id draw from the allocator.
func (t *RowTransformer) resolveIssueID(row []string, rowIndex int) string {
	supplied := t.columnMap.Value(row, FieldIssueID)
	if supplied == "" {
		return t.allocator.Next()
	}
	if t.existingIDs[supplied] {
		deduped := fmt.Sprintf("%s-%d", supplied, t.now().UnixMilli())
		t.logger.Warnw("supplied issue id already exists, suffixing to keep row",
			"issue_id", supplied,
			"deduped_id", deduped,
			"row", rowIndex,
		)
		return deduped
	}
	return supplied
}

func (t *RowTransformer) applyDates(item *workitem.WorkItem, row []string) {
	now := t.now()

	created := now
	if parsed, ok := parseDate(t.columnMap.Value(row, FieldCreatedDate)); ok {
		created = parsed
	}
	updated := now
	if parsed, ok := parseDate(t.columnMap.Value(row, FieldUpdatedDate)); ok {
		updated = parsed
	}
	item.SetTimestamps(created, updated)

	if parsed, ok := parseDate(t.columnMap.Value(row, FieldResolvedDate)); ok {
		item.SetResolvedAt(parsed)
	}

	if parsed, ok := parseDate(t.columnMap.Value(row, FieldDueDate)); ok {
		item.SetDueDate(parsed)
	} else {
		item.SetDueDate(now.Add(dueDateDefaultOffset))
	}
}

func (t *RowTransformer) applyNumbers(item *workitem.WorkItem, row []string, rowIndex int) {
	if hours, ok := parseIntCell(t.columnMap.Value(row, FieldEstimatedHours)); ok {
		item.SetEstimatedHours(hours)
	}
	if hours, ok := parseIntCell(t.columnMap.Value(row, FieldActualHours)); ok {
		item.SetActualHours(hours)
	}

	if pos, ok := parseIntCell(t.columnMap.Value(row, FieldPosition)); ok {
		item.SetPosition(pos)
	} else {
		// Gapped default so manual reordering between imported rows does not
		// require renumbering the whole project.
		item.SetPosition((rowIndex + 1) * 1024)
	}
}

// applyLabels accepts either a JSON array or a comma-separated list.
func (t *RowTransformer) applyLabels(item *workitem.WorkItem, row []string) {
	raw := t.columnMap.Value(row, FieldLabels)
	if raw == "" {
		return
	}

	var fromJSON []string
	if err := json.Unmarshal([]byte(raw), &fromJSON); err == nil {
		if labels := trimNonEmpty(fromJSON); len(labels) > 0 {
			item.SetLabels(labels)
		}
		return
	}

	if labels := trimNonEmpty(strings.Split(raw, ",")); len(labels) > 0 {
		item.SetLabels(labels)
	}
}

func (t *RowTransformer) applyIdentities(item *workitem.WorkItem, row []string) {
	item.SetAssignee(t.identities.Resolve(t.columnMap.Value(row, FieldAssignee)))
	item.SetReporter(t.identities.Resolve(t.columnMap.Value(row, FieldReporter)))
	item.SetCreator(t.identities.Resolve(t.columnMap.Value(row, FieldCreator)))
}

// applyCustomFields records non-empty cells of unrecognized headers, keyed by
// the original header text so round-trip display matches the source file.
func (t *RowTransformer) applyCustomFields(item *workitem.WorkItem, row []string) {
	headers := t.columnMap.Headers()
	for i, header := range headers {
		if t.columnMap.IsStandard(i) || strings.TrimSpace(header) == "" {
			continue
		}
		if i >= len(row) {
			continue
		}
		value := strings.TrimSpace(row[i])
		if value == "" {
			continue
		}
		item.PutCustomField(strings.TrimSpace(header), value)
	}
}

func parseDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	if parsed, err := time.Parse(compactDateLayout, raw); err == nil {
		return parsed, true
	}
	for _, layout := range genericDateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

func parseIntCell(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

func trimNonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
