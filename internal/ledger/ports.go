// Package ledger defines the ports between the aggregation engine, the
// HTTP layer and the storage backends.
package ledger

import (
	"context"
	"errors"

	"paisa/internal/core"
)

// ErrNotFound is returned for update/delete/get on an unknown id.
var ErrNotFound = errors.New("not found")

type (
	// TransactionStore owns the transaction ledger. IDs are assigned on
	// create and immutable; UserID is fixed at creation too.
	TransactionStore interface {
		Transactions(ctx context.Context) ([]core.Transaction, error)
		TransactionsByType(ctx context.Context, t core.TransactionType) ([]core.Transaction, error)
		// RecentTransactions returns up to limit transactions, newest
		// date first with id as tiebreak.
		RecentTransactions(ctx context.Context, limit int) ([]core.Transaction, error)
		CreateTransaction(ctx context.Context, tx core.Transaction) (core.Transaction, error)
		UpdateTransaction(ctx context.Context, id int64, tx core.Transaction) (core.Transaction, error)
		DeleteTransaction(ctx context.Context, id int64) error
	}

	// CategoryStore serves the seeded category directory.
	CategoryStore interface {
		Categories(ctx context.Context) ([]core.Category, error)
		CategoriesByType(ctx context.Context, t core.TransactionType) ([]core.Category, error)
	}

	// GoalStore owns the savings goals.
	GoalStore interface {
		Goals(ctx context.Context) ([]core.SavingsGoal, error)
		Goal(ctx context.Context, id int64) (core.SavingsGoal, error)
		CreateGoal(ctx context.Context, g core.SavingsGoal) (core.SavingsGoal, error)
		UpdateGoal(ctx context.Context, id int64, g core.SavingsGoal) (core.SavingsGoal, error)
		DeleteGoal(ctx context.Context, id int64) error
	}

	// Store is the full backend surface the HTTP layer is wired against.
	Store interface {
		TransactionStore
		CategoryStore
		GoalStore
	}
)
