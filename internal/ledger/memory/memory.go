// Package memory is the default ledger backend: maps guarded by a mutex
// with per-entity auto-increment counters. Readers get copies, so
// aggregation always runs against a point-in-time snapshot.
package memory

import (
	"context"
	"sort"
	"sync"

	"paisa/internal/core"
	"paisa/internal/ledger"
)

type Store struct {
	mu sync.Mutex

	categories   map[int64]core.Category
	transactions map[int64]core.Transaction
	goals        map[int64]core.SavingsGoal

	nextCategoryID    int64
	nextTransactionID int64
	nextGoalID        int64
}

var _ ledger.Store = (*Store)(nil)

// New returns a store seeded with the default category directory.
func New() *Store {
	s := &Store{
		categories:        make(map[int64]core.Category),
		transactions:      make(map[int64]core.Transaction),
		goals:             make(map[int64]core.SavingsGoal),
		nextCategoryID:    1,
		nextTransactionID: 1,
		nextGoalID:        1,
	}
	for _, c := range defaultCategories() {
		s.addCategory(c)
	}
	return s
}

func (s *Store) addCategory(c core.Category) core.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.nextCategoryID
	s.nextCategoryID++
	s.categories[c.ID] = c
	return c
}

func (s *Store) Categories(_ context.Context) ([]core.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) CategoriesByType(ctx context.Context, t core.TransactionType) ([]core.Category, error) {
	all, err := s.Categories(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]core.Category, 0, len(all))
	for _, c := range all {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *Store) Transactions(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Transaction, 0, len(s.transactions))
	for _, tx := range s.transactions {
		out = append(out, tx)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) TransactionsByType(ctx context.Context, t core.TransactionType) ([]core.Transaction, error) {
	all, err := s.Transactions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]core.Transaction, 0, len(all))
	for _, tx := range all {
		if tx.Type == t {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (s *Store) RecentTransactions(ctx context.Context, limit int) ([]core.Transaction, error) {
	all, err := s.Transactions(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].Date.Equal(all[j].Date) {
			return all[i].Date.After(all[j].Date)
		}
		return all[i].ID > all[j].ID
	})
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (s *Store) CreateTransaction(_ context.Context, tx core.Transaction) (core.Transaction, error) {
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	tx.ID = s.nextTransactionID
	s.nextTransactionID++
	if tx.UserID == 0 {
		tx.UserID = 1
	}
	s.transactions[tx.ID] = tx
	return tx, nil
}

func (s *Store) UpdateTransaction(_ context.Context, id int64, tx core.Transaction) (core.Transaction, error) {
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.transactions[id]
	if !ok {
		return core.Transaction{}, ledger.ErrNotFound
	}
	// ID and UserID are immutable.
	tx.ID = existing.ID
	tx.UserID = existing.UserID
	s.transactions[id] = tx
	return tx, nil
}

func (s *Store) DeleteTransaction(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.transactions[id]; !ok {
		return ledger.ErrNotFound
	}
	delete(s.transactions, id)
	return nil
}

func (s *Store) Goals(_ context.Context) ([]core.SavingsGoal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.SavingsGoal, 0, len(s.goals))
	for _, g := range s.goals {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) Goal(_ context.Context, id int64) (core.SavingsGoal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.goals[id]
	if !ok {
		return core.SavingsGoal{}, ledger.ErrNotFound
	}
	return g, nil
}

func (s *Store) CreateGoal(_ context.Context, g core.SavingsGoal) (core.SavingsGoal, error) {
	if err := g.Validate(); err != nil {
		return core.SavingsGoal{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	g.ID = s.nextGoalID
	s.nextGoalID++
	if g.UserID == 0 {
		g.UserID = 1
	}
	s.goals[g.ID] = g
	return g, nil
}

func (s *Store) UpdateGoal(_ context.Context, id int64, g core.SavingsGoal) (core.SavingsGoal, error) {
	if err := g.Validate(); err != nil {
		return core.SavingsGoal{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.goals[id]
	if !ok {
		return core.SavingsGoal{}, ledger.ErrNotFound
	}
	g.ID = existing.ID
	g.UserID = existing.UserID
	s.goals[id] = g
	return g, nil
}

func (s *Store) DeleteGoal(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.goals[id]; !ok {
		return ledger.ErrNotFound
	}
	delete(s.goals, id)
	return nil
}
