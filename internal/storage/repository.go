// Package storage is the SQLite ledger backend.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"paisa/internal/core"
	"paisa/internal/ledger"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

var _ ledger.Store = (*SQLiteRepository)(nil)

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

const transactionColumns = "id, user_id, amount_paisa, type, category_id, description, date, attachment"

func scanTransaction(row interface{ Scan(...any) error }) (core.Transaction, error) {
	var tx core.Transaction
	var typ string
	err := row.Scan(&tx.ID, &tx.UserID, &tx.Amount.Paisa, &typ, &tx.CategoryID, &tx.Description, &tx.Date, &tx.Attachment)
	if err != nil {
		return core.Transaction{}, err
	}
	tx.Type = core.TransactionType(typ)
	return tx, nil
}

func (r *SQLiteRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		out = append(out, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return out, nil
}

func (r *SQLiteRepository) Transactions(ctx context.Context) ([]core.Transaction, error) {
	return r.queryTransactions(ctx, "SELECT "+transactionColumns+" FROM transactions ORDER BY id")
}

func (r *SQLiteRepository) TransactionsByType(ctx context.Context, t core.TransactionType) ([]core.Transaction, error) {
	return r.queryTransactions(ctx, "SELECT "+transactionColumns+" FROM transactions WHERE type = ? ORDER BY id", string(t))
}

func (r *SQLiteRepository) RecentTransactions(ctx context.Context, limit int) ([]core.Transaction, error) {
	return r.queryTransactions(ctx, "SELECT "+transactionColumns+" FROM transactions ORDER BY date DESC, id DESC LIMIT ?", limit)
}

// Transaction fetches a single row by id; the export worker uses this to
// resolve event messages into full rows.
func (r *SQLiteRepository) Transaction(ctx context.Context, id int64) (core.Transaction, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+transactionColumns+" FROM transactions WHERE id = ?", id)
	tx, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Transaction{}, ledger.ErrNotFound
	}
	if err != nil {
		return core.Transaction{}, fmt.Errorf("get transaction: %w", err)
	}
	return tx, nil
}

func (r *SQLiteRepository) CreateTransaction(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}
	if tx.UserID == 0 {
		tx.UserID = 1
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (user_id, amount_paisa, type, category_id, description, date, attachment)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		tx.UserID, tx.Amount.Paisa, string(tx.Type), tx.CategoryID, tx.Description, tx.Date, tx.Attachment)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.Transaction{}, fmt.Errorf("last insert id: %w", err)
	}
	tx.ID = id
	return tx, nil
}

func (r *SQLiteRepository) UpdateTransaction(ctx context.Context, id int64, tx core.Transaction) (core.Transaction, error) {
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE transactions
		 SET amount_paisa = ?, type = ?, category_id = ?, description = ?, date = ?, attachment = ?, export_status = 'pending'
		 WHERE id = ?`,
		tx.Amount.Paisa, string(tx.Type), tx.CategoryID, tx.Description, tx.Date, tx.Attachment, id)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("update transaction: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return core.Transaction{}, fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return core.Transaction{}, ledger.ErrNotFound
	}
	return r.Transaction(ctx, id)
}

func (r *SQLiteRepository) DeleteTransaction(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM transactions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ledger.ErrNotFound
	}
	return nil
}

func (r *SQLiteRepository) Categories(ctx context.Context) ([]core.Category, error) {
	return r.queryCategories(ctx, "SELECT id, name, type, icon, color FROM categories ORDER BY id")
}

func (r *SQLiteRepository) CategoriesByType(ctx context.Context, t core.TransactionType) ([]core.Category, error) {
	return r.queryCategories(ctx, "SELECT id, name, type, icon, color FROM categories WHERE type = ? ORDER BY id", string(t))
}

func (r *SQLiteRepository) queryCategories(ctx context.Context, query string, args ...any) ([]core.Category, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var out []core.Category
	for rows.Next() {
		var c core.Category
		var typ string
		if err := rows.Scan(&c.ID, &c.Name, &typ, &c.Icon, &c.Color); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		c.Type = core.TransactionType(typ)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return out, nil
}

const goalColumns = "id, user_id, name, target_paisa, current_paisa, icon, color, deadline"

func scanGoal(row interface{ Scan(...any) error }) (core.SavingsGoal, error) {
	var g core.SavingsGoal
	var deadline sql.NullTime
	err := row.Scan(&g.ID, &g.UserID, &g.Name, &g.Target.Paisa, &g.Current.Paisa, &g.Icon, &g.Color, &deadline)
	if err != nil {
		return core.SavingsGoal{}, err
	}
	if deadline.Valid {
		g.Deadline = deadline.Time
	}
	return g, nil
}

func (r *SQLiteRepository) Goals(ctx context.Context) ([]core.SavingsGoal, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+goalColumns+" FROM savings_goals ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query goals: %w", err)
	}
	defer rows.Close()

	var out []core.SavingsGoal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate goals: %w", err)
	}
	return out, nil
}

func (r *SQLiteRepository) Goal(ctx context.Context, id int64) (core.SavingsGoal, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+goalColumns+" FROM savings_goals WHERE id = ?", id)
	g, err := scanGoal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.SavingsGoal{}, ledger.ErrNotFound
	}
	if err != nil {
		return core.SavingsGoal{}, fmt.Errorf("get goal: %w", err)
	}
	return g, nil
}

func (r *SQLiteRepository) CreateGoal(ctx context.Context, g core.SavingsGoal) (core.SavingsGoal, error) {
	if err := g.Validate(); err != nil {
		return core.SavingsGoal{}, err
	}
	if g.UserID == 0 {
		g.UserID = 1
	}
	var deadline any
	if !g.Deadline.IsZero() {
		deadline = g.Deadline
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO savings_goals (user_id, name, target_paisa, current_paisa, icon, color, deadline)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		g.UserID, g.Name, g.Target.Paisa, g.Current.Paisa, g.Icon, g.Color, deadline)
	if err != nil {
		return core.SavingsGoal{}, fmt.Errorf("insert goal: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.SavingsGoal{}, fmt.Errorf("last insert id: %w", err)
	}
	g.ID = id
	return g, nil
}

func (r *SQLiteRepository) UpdateGoal(ctx context.Context, id int64, g core.SavingsGoal) (core.SavingsGoal, error) {
	if err := g.Validate(); err != nil {
		return core.SavingsGoal{}, err
	}
	var deadline any
	if !g.Deadline.IsZero() {
		deadline = g.Deadline
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE savings_goals
		 SET name = ?, target_paisa = ?, current_paisa = ?, icon = ?, color = ?, deadline = ?
		 WHERE id = ?`,
		g.Name, g.Target.Paisa, g.Current.Paisa, g.Icon, g.Color, deadline, id)
	if err != nil {
		return core.SavingsGoal{}, fmt.Errorf("update goal: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return core.SavingsGoal{}, fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return core.SavingsGoal{}, ledger.ErrNotFound
	}
	return r.Goal(ctx, id)
}

func (r *SQLiteRepository) DeleteGoal(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM savings_goals WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ledger.ErrNotFound
	}
	return nil
}

// PendingExport is the minimal row shape queued for the export sweep.
type PendingExport struct {
	ID        int64
	CreatedAt time.Time
}

// PendingExportTransactions lists rows not yet exported, oldest first.
// This backs the periodic sweep that catches events lost by the broker.
func (r *SQLiteRepository) PendingExportTransactions(ctx context.Context, limit int) ([]PendingExport, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, created_at FROM transactions WHERE export_status = 'pending' ORDER BY created_at LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("query pending exports: %w", err)
	}
	defer rows.Close()

	var out []PendingExport
	for rows.Next() {
		var p PendingExport
		if err := rows.Scan(&p.ID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan pending export: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pending exports: %w", err)
	}
	return out, nil
}

func (r *SQLiteRepository) MarkExported(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "UPDATE transactions SET export_status = 'exported' WHERE id = ?", id); err != nil {
		return fmt.Errorf("mark exported: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) MarkExportError(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "UPDATE transactions SET export_status = 'error' WHERE id = ?", id); err != nil {
		return fmt.Errorf("mark export error: %w", err)
	}
	return nil
}
