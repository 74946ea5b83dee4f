// Package worker exports ledger mutations to the configured report sink.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"paisa/internal/amqp"
	"paisa/internal/core"
	"paisa/internal/ledger"
	"paisa/internal/storage"
)

type (
	// TransactionSource is the slice of the SQLite repository the worker
	// needs. *storage.SQLiteRepository satisfies it.
	TransactionSource interface {
		Transaction(ctx context.Context, id int64) (core.Transaction, error)
		Categories(ctx context.Context) ([]core.Category, error)
		PendingExportTransactions(ctx context.Context, limit int) ([]storage.PendingExport, error)
		MarkExported(ctx context.Context, id int64) error
		MarkExportError(ctx context.Context, id int64) error
	}

	// Exporter appends one transaction row to the report.
	Exporter interface {
		AppendTransaction(ctx context.Context, tx core.Transaction, categoryName string) error
	}
)

// ExportWorker resolves ledger events against storage and appends the
// rows to the report. A periodic sweep over still-pending rows backs up
// the event stream, so delivery is at-least-once.
type ExportWorker struct {
	source    TransactionSource
	exporter  Exporter
	batchSize int
}

func NewExportWorker(source TransactionSource, exporter Exporter, batchSize int) *ExportWorker {
	return &ExportWorker{
		source:    source,
		exporter:  exporter,
		batchSize: batchSize,
	}
}

// HandleEvent processes a single ledger event from the broker.
func (w *ExportWorker) HandleEvent(ctx context.Context, msg *amqp.LedgerEventMessage) error {
	slog.InfoContext(ctx, "Processing ledger event", "id", msg.ID, "action", msg.Action)

	if msg.Action == amqp.ActionDeleted {
		// The row is gone; there is nothing to resolve or export. The
		// report keeps the appended history.
		slog.InfoContext(ctx, "Transaction deleted, skipping export", "id", msg.ID)
		return nil
	}

	tx, err := w.source.Transaction(ctx, msg.ID)
	if errors.Is(err, ledger.ErrNotFound) {
		// Deleted between publish and consume; nothing left to export.
		slog.WarnContext(ctx, "Transaction no longer exists, dropping event", "id", msg.ID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("get transaction from storage: %w", err)
	}

	return w.export(ctx, tx)
}

// ProcessPending exports rows whose events never arrived. Called on a
// timer and once at startup.
func (w *ExportWorker) ProcessPending(ctx context.Context) error {
	pending, err := w.source.PendingExportTransactions(ctx, w.batchSize)
	if err != nil {
		return fmt.Errorf("get pending exports: %w", err)
	}
	if len(pending) == 0 {
		return nil
	}

	slog.InfoContext(ctx, "Processing pending exports", "count", len(pending))

	for _, p := range pending {
		tx, err := w.source.Transaction(ctx, p.ID)
		if err != nil {
			slog.ErrorContext(ctx, "Failed to load pending transaction", "id", p.ID, "error", err)
			if err := w.source.MarkExportError(ctx, p.ID); err != nil {
				slog.ErrorContext(ctx, "Failed to mark export error", "id", p.ID, "error", err)
			}
			continue
		}
		if err := w.export(ctx, tx); err != nil {
			slog.ErrorContext(ctx, "Failed to export pending transaction", "id", p.ID, "error", err)
			continue
		}
	}
	return nil
}

// StartupCheck drains a larger pending batch once at boot to recover from
// worker downtime.
func (w *ExportWorker) StartupCheck(ctx context.Context) error {
	pending, err := w.source.PendingExportTransactions(ctx, w.batchSize*5)
	if err != nil {
		return fmt.Errorf("get pending exports for startup check: %w", err)
	}
	if len(pending) == 0 {
		slog.InfoContext(ctx, "No pending exports found on startup")
		return nil
	}

	slog.InfoContext(ctx, "Found pending exports on startup", "count", len(pending))

	exported := 0
	failed := 0
	for _, p := range pending {
		tx, err := w.source.Transaction(ctx, p.ID)
		if err != nil {
			slog.ErrorContext(ctx, "Failed to load transaction for startup export", "id", p.ID, "error", err)
			failed++
			continue
		}
		if err := w.export(ctx, tx); err != nil {
			slog.ErrorContext(ctx, "Failed to export during startup", "id", p.ID, "error", err)
			failed++
			continue
		}
		exported++
	}

	slog.InfoContext(ctx, "Startup export completed",
		"total", len(pending),
		"exported", exported,
		"errors", failed)
	return nil
}

func (w *ExportWorker) export(ctx context.Context, tx core.Transaction) error {
	name := w.categoryName(ctx, tx.CategoryID)
	if err := w.exporter.AppendTransaction(ctx, tx, name); err != nil {
		if markErr := w.source.MarkExportError(ctx, tx.ID); markErr != nil {
			slog.ErrorContext(ctx, "Failed to mark export error", "id", tx.ID, "error", markErr)
		}
		return fmt.Errorf("append to report: %w", err)
	}
	if err := w.source.MarkExported(ctx, tx.ID); err != nil {
		return fmt.Errorf("mark exported: %w", err)
	}
	return nil
}

func (w *ExportWorker) categoryName(ctx context.Context, id int64) string {
	if id == 0 {
		return core.UncategorizedName
	}
	cats, err := w.source.Categories(ctx)
	if err != nil {
		slog.WarnContext(ctx, "Failed to resolve category, using fallback", "category_id", id, "error", err)
		return core.UncategorizedName
	}
	for _, c := range cats {
		if c.ID == id {
			return c.Name
		}
	}
	return core.UncategorizedName
}
