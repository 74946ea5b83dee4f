package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"paisa/internal/core"
	"paisa/internal/ledger"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "paisa.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRepository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestMigrationsSeedCategories(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	cats, err := repo.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(cats) != 16 {
		t.Fatalf("got %d seeded categories, want 16", len(cats))
	}

	saving, err := repo.CategoriesByType(ctx, core.Saving)
	if err != nil {
		t.Fatalf("CategoriesByType: %v", err)
	}
	if len(saving) != 4 {
		t.Fatalf("got %d saving categories, want 4", len(saving))
	}
}

func TestTransactionRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.CreateTransaction(ctx, core.Transaction{
		Amount:      core.Money{Paisa: 2500_00},
		Type:        core.Expense,
		CategoryID:  6,
		Description: "Shopping Mall",
		Date:        time.Date(2024, time.May, 14, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("id not assigned")
	}

	got, err := repo.Transaction(ctx, created.ID)
	if err != nil {
		t.Fatalf("Transaction: %v", err)
	}
	if got.Amount.Paisa != 2500_00 || got.Type != core.Expense || got.Description != "Shopping Mall" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.UserID != 1 {
		t.Fatalf("default user id = %d, want 1", got.UserID)
	}

	got.Description = "edited"
	updated, err := repo.UpdateTransaction(ctx, created.ID, got)
	if err != nil {
		t.Fatalf("UpdateTransaction: %v", err)
	}
	if updated.Description != "edited" {
		t.Fatalf("update not applied: %+v", updated)
	}

	if err := repo.DeleteTransaction(ctx, created.ID); err != nil {
		t.Fatalf("DeleteTransaction: %v", err)
	}
	if _, err := repo.Transaction(ctx, created.ID); !errors.Is(err, ledger.ErrNotFound) {
		t.Fatalf("get deleted err = %v, want ErrNotFound", err)
	}
}

func TestTransactionFilters(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	base := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	for i, tt := range []core.TransactionType{core.Income, core.Expense, core.Expense} {
		if _, err := repo.CreateTransaction(ctx, core.Transaction{
			Amount: core.Money{Paisa: 100_00},
			Type:   tt,
			Date:   base.AddDate(0, 0, i),
		}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	expenses, err := repo.TransactionsByType(ctx, core.Expense)
	if err != nil {
		t.Fatalf("TransactionsByType: %v", err)
	}
	if len(expenses) != 2 {
		t.Fatalf("got %d expenses, want 2", len(expenses))
	}

	recent, err := repo.RecentTransactions(ctx, 2)
	if err != nil {
		t.Fatalf("RecentTransactions: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("got %d recent, want 2", len(recent))
	}
	if recent[0].Date.Before(recent[1].Date) {
		t.Fatalf("recent not ordered newest first")
	}
}

func TestNotFoundMapping(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if _, err := repo.UpdateTransaction(ctx, 99, core.Transaction{Amount: core.Money{Paisa: 1}, Type: core.Income, Date: time.Now()}); !errors.Is(err, ledger.ErrNotFound) {
		t.Fatalf("update err = %v, want ErrNotFound", err)
	}
	if err := repo.DeleteGoal(ctx, 99); !errors.Is(err, ledger.ErrNotFound) {
		t.Fatalf("delete goal err = %v, want ErrNotFound", err)
	}
}

func TestGoalRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.CreateGoal(ctx, core.SavingsGoal{
		Name:     "New Phone",
		Target:   core.Money{Paisa: 50000_00},
		Current:  core.Money{Paisa: 32500_00},
		Icon:     "smartphone",
		Color:    "#3B82F6",
		Deadline: time.Date(2024, time.August, 31, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}

	got, err := repo.Goal(ctx, created.ID)
	if err != nil {
		t.Fatalf("Goal: %v", err)
	}
	if got.Name != "New Phone" || got.Target.Paisa != 50000_00 || got.Deadline.IsZero() {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	// Goal without deadline stores NULL and scans back to zero time.
	noDeadline, err := repo.CreateGoal(ctx, core.SavingsGoal{
		Name:   "Vacation",
		Target: core.Money{Paisa: 1000_00},
	})
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}
	got, err = repo.Goal(ctx, noDeadline.ID)
	if err != nil {
		t.Fatalf("Goal: %v", err)
	}
	if !got.Deadline.IsZero() {
		t.Fatalf("expected zero deadline, got %v", got.Deadline)
	}
}

func TestExportStatusLifecycle(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	tx, err := repo.CreateTransaction(ctx, core.Transaction{
		Amount: core.Money{Paisa: 100_00},
		Type:   core.Expense,
		Date:   time.Now(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	pending, err := repo.PendingExportTransactions(ctx, 10)
	if err != nil {
		t.Fatalf("PendingExportTransactions: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != tx.ID {
		t.Fatalf("pending = %+v, want one entry for id %d", pending, tx.ID)
	}

	if err := repo.MarkExported(ctx, tx.ID); err != nil {
		t.Fatalf("MarkExported: %v", err)
	}
	pending, err = repo.PendingExportTransactions(ctx, 10)
	if err != nil {
		t.Fatalf("PendingExportTransactions: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("got %d pending after export, want 0", len(pending))
	}

	// An update re-queues the row for export.
	tx.Description = "changed"
	if _, err := repo.UpdateTransaction(ctx, tx.ID, tx); err != nil {
		t.Fatalf("update: %v", err)
	}
	pending, _ = repo.PendingExportTransactions(ctx, 10)
	if len(pending) != 1 {
		t.Fatalf("got %d pending after update, want 1", len(pending))
	}
}
