package core

import (
	"errors"
	"time"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
	Saving  TransactionType = "saving"
	Extra   TransactionType = "extra"
)

type (
	// TransactionType is the closed set of ledger entry kinds.
	TransactionType string

	// Transaction is a single ledger entry. ID is assigned by the store
	// and immutable afterwards.
	Transaction struct {
		ID          int64
		UserID      int64
		Amount      Money
		Type        TransactionType
		CategoryID  int64 // 0 means uncategorized
		Description string
		Date        time.Time
		Attachment  string
	}

	// Category is reference data seeded at startup and read-only afterwards.
	Category struct {
		ID    int64
		Name  string
		Type  TransactionType
		Icon  string
		Color string
	}

	// SavingsGoal tracks a manually funded target. Current may exceed
	// Target; progress above 100% is legitimate.
	SavingsGoal struct {
		ID       int64
		UserID   int64
		Name     string
		Target   Money
		Current  Money
		Icon     string
		Color    string
		Deadline time.Time // zero when no deadline is set
	}
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrUnknownType     = errors.New("unknown transaction type")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidTarget   = errors.New("invalid goal target")
	ErrNegativeCurrent = errors.New("negative goal current")
	ErrEmptyName       = errors.New("empty name")
)

// AllTransactionTypes lists the four variants in display order.
func AllTransactionTypes() []TransactionType {
	return []TransactionType{Income, Expense, Saving, Extra}
}

// ParseTransactionType validates a wire value against the closed set.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case Income, Expense, Saving, Extra:
		return TransactionType(s), nil
	}
	return "", ErrUnknownType
}

func (t TransactionType) Valid() bool {
	_, err := ParseTransactionType(string(t))
	return err == nil
}

func (t TransactionType) String() string {
	return string(t)
}

func (tx Transaction) Validate() error {
	if tx.Amount.Paisa <= 0 {
		return ErrInvalidAmount
	}
	if !tx.Type.Valid() {
		return ErrUnknownType
	}
	return nil
}

func (g SavingsGoal) Validate() error {
	if g.Name == "" {
		return ErrEmptyName
	}
	if g.Target.Paisa <= 0 {
		return ErrInvalidTarget
	}
	if g.Current.Paisa < 0 {
		return ErrNegativeCurrent
	}
	return nil
}
