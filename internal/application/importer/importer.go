package importer

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"workbase/internal/domain/project"
	"workbase/internal/domain/user"
	"workbase/internal/domain/workitem"
	"workbase/internal/shared/errors"
	"workbase/internal/shared/logger"
)

// ImportWorkItemsUseCase runs the full import pipeline: parse, filter, map
// columns, extend schema, resolve identities, transform rows, write chunks.
// One synchronous pass per request; ordering matters because schema extension
// must land before any row is transformed and issue ids are allocated
// monotonically within the file.
type ImportWorkItemsUseCase struct {
	items             workitem.Repository
	users             user.Repository
	projects          project.Repository
	schema            *SchemaExtender
	tx                TxRunner
	recentIssueWindow int
	logger            logger.Interface
}

func NewImportWorkItemsUseCase(
	items workitem.Repository,
	users user.Repository,
	projects project.Repository,
	schema *SchemaExtender,
	tx TxRunner,
	recentIssueWindow int,
	log logger.Interface,
) *ImportWorkItemsUseCase {
	if recentIssueWindow <= 0 {
		recentIssueWindow = 500
	}
	return &ImportWorkItemsUseCase{
		items:             items,
		users:             users,
		projects:          projects,
		schema:            schema,
		tx:                tx,
		recentIssueWindow: recentIssueWindow,
		logger:            log,
	}
}

type ImportCommand struct {
	FileName   string
	Data       []byte
	ProjectID  uint
	ImporterID uint
}

type ImportResult struct {
	Message       string `json:"message"`
	UploadBatchID string `json:"upload_batch_id"`
	Count         int    `json:"count"`
	Skipped       int    `json:"skipped"`
}

func (uc *ImportWorkItemsUseCase) Execute(ctx context.Context, cmd ImportCommand) (*ImportResult, error) {
	if len(cmd.Data) == 0 {
		return nil, errors.NewValidationError("file is empty", "upload a file with a header row and at least one data row")
	}

	proj, err := uc.projects.GetByID(ctx, cmd.ProjectID)
	if err != nil {
		return nil, errors.NewNotFoundError("project not found", err.Error())
	}

	delimiter, err := DetectDelimiter(cmd.FileName)
	if err != nil {
		return nil, err
	}

	rows, err := ParseDelimited(cmd.Data, delimiter)
	if err != nil {
		return nil, err
	}
	rows = FilterRows(rows)
	if len(rows) < 2 {
		return nil, errors.NewValidationError("file has no data rows", "expected a header row followed by at least one data row")
	}

	headers, dataRows := rows[0], rows[1:]
	columnMap := NewColumnMap(headers)

	if err := uc.schema.EnsureColumns(ctx, cmd.ProjectID, columnMap); err != nil {
		return nil, errors.NewInternalError("failed to prepare project columns", err.Error())
	}

	identities, err := BuildIdentityResolver(ctx, uc.users, columnMap, dataRows, cmd.ImporterID)
	if err != nil {
		return nil, errors.NewInternalError("failed to resolve identities", err.Error())
	}

	recentIDs, err := uc.items.RecentIssueIDs(ctx, uc.recentIssueWindow)
	if err != nil {
		return nil, errors.NewInternalError("failed to seed issue id allocator", err.Error())
	}
	allocator := workitem.NewNumberAllocator(recentIDs)

	existingIDs, err := uc.lookupSuppliedIDs(ctx, columnMap, dataRows)
	if err != nil {
		return nil, errors.NewInternalError("failed to check existing issue ids", err.Error())
	}

	batchID := newBatchID(proj.Name())
	transformer := NewRowTransformer(columnMap, identities, allocator, existingIDs, cmd.ProjectID, batchID, uc.logger)

	items := make([]*workitem.WorkItem, 0, len(dataRows))
	for i, row := range dataRows {
		item, err := transformer.Transform(row, i)
		if err != nil {
			uc.logger.Warnw("skipping untransformable row", "row", i, "error", err)
			continue
		}
		if item == nil {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, errors.NewValidationError("no importable rows", "every row was blank or missing a summary")
	}

	writer := NewBatchWriter(uc.items, uc.tx, uc.logger)
	written, err := writer.WriteAll(ctx, items)
	if err != nil {
		return nil, errors.NewInternalError("failed to persist work items", err.Error())
	}

	if written.Created == 0 && written.Skipped > 0 {
		return nil, errors.NewConflictError("all rows already exist",
			fmt.Sprintf("%d duplicate rows were skipped", written.Skipped))
	}

	uc.logger.Infow("import completed",
		"project_id", cmd.ProjectID,
		"upload_batch_id", batchID,
		"created", written.Created,
		"skipped", written.Skipped,
	)

	return &ImportResult{
		Message:       fmt.Sprintf("imported %d work items (%d skipped)", written.Created, written.Skipped),
		UploadBatchID: batchID,
		Count:         written.Created,
		Skipped:       written.Skipped,
	}, nil
}

// lookupSuppliedIDs collects the issue ids declared in the file and checks
// which already exist, in one query, so the transformer can disambiguate
// collisions up front.
func (uc *ImportWorkItemsUseCase) lookupSuppliedIDs(ctx context.Context, columnMap *ColumnMap, rows [][]string) (map[string]bool, error) {
	if !columnMap.HasField(FieldIssueID) {
		return map[string]bool{}, nil
	}
	seen := make(map[string]bool)
	var ids []string
	for _, row := range rows {
		id := columnMap.Value(row, FieldIssueID)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return map[string]bool{}, nil
	}
	return uc.items.FilterExistingIssueIDs(ctx, ids)
}

// newBatchID builds a human-traceable batch id: project slug, upload time in
// millis, and a short random suffix against same-millisecond uploads.
func newBatchID(projectName string) string {
	return fmt.Sprintf("%s-%d-%04d", slugify(projectName), time.Now().UnixMilli(), rand.Intn(10000))
}

func slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = "import"
	}
	return slug
}

// DeleteBatchUseCase removes every work item created by one upload, as a
// single operation.
type DeleteBatchUseCase struct {
	items  workitem.Repository
	tx     TxRunner
	logger logger.Interface
}

func NewDeleteBatchUseCase(items workitem.Repository, tx TxRunner, log logger.Interface) *DeleteBatchUseCase {
	return &DeleteBatchUseCase{items: items, tx: tx, logger: log}
}

type DeleteBatchCommand struct {
	UploadBatchID string
}

type DeleteBatchResult struct {
	Deleted int64 `json:"deleted"`
}

func (uc *DeleteBatchUseCase) Execute(ctx context.Context, cmd DeleteBatchCommand) (*DeleteBatchResult, error) {
	if strings.TrimSpace(cmd.UploadBatchID) == "" {
		return nil, errors.NewValidationError("upload batch id is required")
	}

	var deleted int64
	err := uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		n, err := uc.items.DeleteByBatchID(txCtx, cmd.UploadBatchID)
		if err != nil {
			return err
		}
		deleted = n
		return nil
	})
	if err != nil {
		return nil, errors.NewInternalError("failed to delete batch", err.Error())
	}
	if deleted == 0 {
		return nil, errors.NewNotFoundError("no work items found for batch", cmd.UploadBatchID)
	}

	uc.logger.Infow("deleted upload batch", "upload_batch_id", cmd.UploadBatchID, "deleted", deleted)
	return &DeleteBatchResult{Deleted: deleted}, nil
}
