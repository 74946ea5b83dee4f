// Package services orchestrates ledger mutations across storage and the
// event broker.
package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"paisa/internal/amqp"
	"paisa/internal/core"
	"paisa/internal/ledger"
)

// EventPublisher publishes ledger mutation events. *amqp.Client satisfies
// it; tests use fakes.
type EventPublisher interface {
	PublishLedgerEvent(ctx context.Context, id int64, action string) error
}

// LedgerService decorates a ledger.Store with event publishing. Mutations
// commit to storage first; a publish failure is logged and swallowed so
// the request never fails after the write landed. The periodic export
// sweep picks up anything the broker lost.
type LedgerService struct {
	store     ledger.Store
	publisher EventPublisher
}

var _ ledger.Store = (*LedgerService)(nil)

func NewLedgerService(store ledger.Store, publisher EventPublisher) *LedgerService {
	return &LedgerService{
		store:     store,
		publisher: publisher,
	}
}

func (s *LedgerService) CreateTransaction(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	created, err := s.store.CreateTransaction(ctx, tx)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}
	s.publish(ctx, created.ID, amqp.ActionCreated)
	return created, nil
}

func (s *LedgerService) UpdateTransaction(ctx context.Context, id int64, tx core.Transaction) (core.Transaction, error) {
	updated, err := s.store.UpdateTransaction(ctx, id, tx)
	if err != nil {
		return core.Transaction{}, err
	}
	s.publish(ctx, id, amqp.ActionCreated)
	return updated, nil
}

func (s *LedgerService) DeleteTransaction(ctx context.Context, id int64) error {
	if err := s.store.DeleteTransaction(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, id, amqp.ActionDeleted)
	return nil
}

func (s *LedgerService) publish(ctx context.Context, id int64, action string) {
	if s.publisher == nil {
		slog.DebugContext(ctx, "No event publisher configured, skipping ledger event", "id", id)
		return
	}
	if err := s.publisher.PublishLedgerEvent(ctx, id, action); err != nil {
		slog.ErrorContext(ctx, "Failed to publish ledger event",
			"id", id, "action", action, "error", err)
	}
}

// Reads pass straight through to the store.

func (s *LedgerService) Transactions(ctx context.Context) ([]core.Transaction, error) {
	return s.store.Transactions(ctx)
}

func (s *LedgerService) TransactionsByType(ctx context.Context, t core.TransactionType) ([]core.Transaction, error) {
	return s.store.TransactionsByType(ctx, t)
}

func (s *LedgerService) RecentTransactions(ctx context.Context, limit int) ([]core.Transaction, error) {
	return s.store.RecentTransactions(ctx, limit)
}

func (s *LedgerService) Categories(ctx context.Context) ([]core.Category, error) {
	return s.store.Categories(ctx)
}

func (s *LedgerService) CategoriesByType(ctx context.Context, t core.TransactionType) ([]core.Category, error) {
	return s.store.CategoriesByType(ctx, t)
}

func (s *LedgerService) Goals(ctx context.Context) ([]core.SavingsGoal, error) {
	return s.store.Goals(ctx)
}

func (s *LedgerService) Goal(ctx context.Context, id int64) (core.SavingsGoal, error) {
	return s.store.Goal(ctx, id)
}

func (s *LedgerService) CreateGoal(ctx context.Context, g core.SavingsGoal) (core.SavingsGoal, error) {
	return s.store.CreateGoal(ctx, g)
}

func (s *LedgerService) UpdateGoal(ctx context.Context, id int64, g core.SavingsGoal) (core.SavingsGoal, error) {
	return s.store.UpdateGoal(ctx, id, g)
}

func (s *LedgerService) DeleteGoal(ctx context.Context, id int64) error {
	return s.store.DeleteGoal(ctx, id)
}

// Close closes the underlying store and publisher when they hold
// resources.
func (s *LedgerService) Close() error {
	var errs []error

	if closer, ok := s.store.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("storage: %w", err))
		}
	}
	if closer, ok := s.publisher.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("publisher: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("close ledger service: %v", errs)
	}
	return nil
}
