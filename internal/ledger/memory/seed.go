package memory

import (
	"context"
	"time"

	"paisa/internal/core"
)

// defaultCategories is the category directory seeded into every store.
func defaultCategories() []core.Category {
	return []core.Category{
		{Name: "Salary", Type: core.Income, Icon: "briefcase", Color: "#10B981"},
		{Name: "Freelance", Type: core.Income, Icon: "code", Color: "#3B82F6"},
		{Name: "Investments", Type: core.Income, Icon: "trending-up", Color: "#8B5CF6"},
		{Name: "Gifts", Type: core.Income, Icon: "gift", Color: "#EC4899"},
		{Name: "Other Income", Type: core.Income, Icon: "plus-circle", Color: "#6366F1"},

		{Name: "Shopping", Type: core.Expense, Icon: "shopping-bag", Color: "#EF4444"},
		{Name: "Food & Dining", Type: core.Expense, Icon: "utensils", Color: "#8B5CF6"},
		{Name: "Bills & Utilities", Type: core.Expense, Icon: "file-text", Color: "#F59E0B"},
		{Name: "Transportation", Type: core.Expense, Icon: "car", Color: "#10B981"},
		{Name: "Entertainment", Type: core.Expense, Icon: "film", Color: "#EC4899"},

		{Name: "Emergency Fund", Type: core.Saving, Icon: "shield", Color: "#3B82F6"},
		{Name: "Vacation", Type: core.Saving, Icon: "plane", Color: "#F59E0B"},
		{Name: "New Phone", Type: core.Saving, Icon: "smartphone", Color: "#6366F1"},
		{Name: "Home", Type: core.Saving, Icon: "home", Color: "#10B981"},

		{Name: "Pocket Money", Type: core.Extra, Icon: "wallet", Color: "#8B5CF6"},
		{Name: "Gifts", Type: core.Extra, Icon: "gift", Color: "#EC4899"},
	}
}

// SeedDemoData loads a small sample ledger and one goal, used behind the
// DEMO_DATA flag so a fresh instance has something to render.
func (s *Store) SeedDemoData(ctx context.Context) error {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	txs := []core.Transaction{
		{Amount: core.Money{Paisa: 45000_00}, Type: core.Income, CategoryID: 1, Description: "Monthly salary", Date: date(2023, time.May, 15)},
		{Amount: core.Money{Paisa: 2500_00}, Type: core.Expense, CategoryID: 6, Description: "Shopping Mall", Date: date(2023, time.May, 14)},
		{Amount: core.Money{Paisa: 1200_00}, Type: core.Expense, CategoryID: 7, Description: "Food & Dining", Date: date(2023, time.May, 12)},
		{Amount: core.Money{Paisa: 10000_00}, Type: core.Saving, CategoryID: 13, Description: "Savings Deposit", Date: date(2023, time.May, 10)},
		{Amount: core.Money{Paisa: 3850_00}, Type: core.Expense, CategoryID: 8, Description: "Electricity Bill", Date: date(2023, time.May, 8)},
	}
	for _, tx := range txs {
		if _, err := s.CreateTransaction(ctx, tx); err != nil {
			return err
		}
	}
	_, err := s.CreateGoal(ctx, core.SavingsGoal{
		Name:     "New Phone",
		Target:   core.Money{Paisa: 50000_00},
		Current:  core.Money{Paisa: 32500_00},
		Icon:     "smartphone",
		Color:    "#3B82F6",
		Deadline: date(2023, time.August, 31),
	})
	return err
}
