package importer

import (
	"context"

	"workbase/internal/domain/workitem"
	"workbase/internal/shared/errors"
	"workbase/internal/shared/logger"
)

// chunkSize bounds transaction length and memory for large files. Chunked
// commits mean an aborted import leaves prior chunks in place, removable as a
// unit by upload batch id.
const chunkSize = 100

// TxRunner runs a function inside a store transaction.
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// BatchWriter persists transformed work items in fixed-size transactional
// chunks. A failed chunk falls back to row-by-row inserts so one duplicate
// never aborts the whole import.
type BatchWriter struct {
	items  workitem.Repository
	tx     TxRunner
	logger logger.Interface
}

func NewBatchWriter(items workitem.Repository, tx TxRunner, log logger.Interface) *BatchWriter {
	return &BatchWriter{items: items, tx: tx, logger: log}
}

// WriteResult reports what one import's persistence phase did.
type WriteResult struct {
	Created int
	Skipped int
}

// WriteAll commits items in chunks. A chunk that fails as a whole is retried
// one row at a time: a duplicate issue id counts the row as skipped, any
// other row failure is logged and also counted as skipped. No single bad row
// fails the import.
func (w *BatchWriter) WriteAll(ctx context.Context, items []*workitem.WorkItem) (WriteResult, error) {
	var result WriteResult
	for start := 0; start < len(items); start += chunkSize {
		end := start + chunkSize
		if end > len(items) {
			end = len(items)
		}
		chunk := items[start:end]

		err := w.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
			return w.items.SaveBatch(txCtx, chunk)
		})
		if err == nil {
			result.Created += len(chunk)
			continue
		}

		w.logger.Warnw("chunk insert failed, retrying row by row",
			"chunk_start", start,
			"chunk_size", len(chunk),
			"error", err,
		)
		created, skipped := w.writeRows(ctx, chunk)
		result.Created += created
		result.Skipped += skipped
	}
	return result, nil
}

func (w *BatchWriter) writeRows(ctx context.Context, chunk []*workitem.WorkItem) (created, skipped int) {
	for _, item := range chunk {
		err := w.items.Save(ctx, item)
		if err == nil {
			created++
			continue
		}
		skipped++
		if errors.IsDuplicateError(err) {
			w.logger.Infow("skipped duplicate work item", "issue_id", item.IssueID())
			continue
		}
		w.logger.Errorw("failed to save work item, skipping row",
			"issue_id", item.IssueID(),
			"error", err,
		)
	}
	return created, skipped
}
