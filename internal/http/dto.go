package http

import (
	"bytes"
	"fmt"
	"time"

	"paisa/internal/core"
)

// decimalAmount accepts amounts as either a JSON string ("2500.00") or a
// bare number. Parsing to paisa happens later, in one place.
type decimalAmount string

func (d *decimalAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	*d = decimalAmount(data)
	return nil
}

type transactionRequest struct {
	Amount      decimalAmount `json:"amount"`
	Type        string        `json:"type"`
	CategoryID  *int64        `json:"categoryId"`
	Description string        `json:"description"`
	Date        string        `json:"date"`
	Attachment  string        `json:"attachment"`
}

// toTransaction parses the wire shape into a domain transaction. An empty
// date defaults to now; a missing categoryId means uncategorized.
func (req transactionRequest) toTransaction() (core.Transaction, error) {
	amount, err := core.ParseMoney(string(req.Amount))
	if err != nil {
		return core.Transaction{}, err
	}
	txType, err := core.ParseTransactionType(req.Type)
	if err != nil {
		return core.Transaction{}, err
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return core.Transaction{}, err
	}

	tx := core.Transaction{
		Amount:      amount,
		Type:        txType,
		Description: req.Description,
		Date:        date,
		Attachment:  req.Attachment,
	}
	if req.CategoryID != nil {
		tx.CategoryID = *req.CategoryID
	}
	return tx, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", core.ErrInvalidDate, s)
}

type transactionResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"userId"`
	Amount      string `json:"amount"`
	Type        string `json:"type"`
	CategoryID  *int64 `json:"categoryId"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	Attachment  string `json:"attachment,omitempty"`
}

func toTransactionResponse(tx core.Transaction) transactionResponse {
	resp := transactionResponse{
		ID:          tx.ID,
		UserID:      tx.UserID,
		Amount:      tx.Amount.String(),
		Type:        tx.Type.String(),
		Description: tx.Description,
		Date:        tx.Date.Format(time.RFC3339),
		Attachment:  tx.Attachment,
	}
	if tx.CategoryID != 0 {
		id := tx.CategoryID
		resp.CategoryID = &id
	}
	return resp
}

func toTransactionResponses(txs []core.Transaction) []transactionResponse {
	out := make([]transactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, toTransactionResponse(tx))
	}
	return out
}

type categoryResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Icon  string `json:"icon,omitempty"`
	Color string `json:"color,omitempty"`
}

func toCategoryResponses(cats []core.Category) []categoryResponse {
	out := make([]categoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, categoryResponse{
			ID:    c.ID,
			Name:  c.Name,
			Type:  c.Type.String(),
			Icon:  c.Icon,
			Color: c.Color,
		})
	}
	return out
}

type goalRequest struct {
	Name          string        `json:"name"`
	TargetAmount  decimalAmount `json:"targetAmount"`
	CurrentAmount decimalAmount `json:"currentAmount"`
	Icon          string        `json:"icon"`
	Color         string        `json:"color"`
	Deadline      string        `json:"deadline"`
}

func (req goalRequest) toGoal() (core.SavingsGoal, error) {
	target, err := core.ParseMoney(string(req.TargetAmount))
	if err != nil {
		return core.SavingsGoal{}, fmt.Errorf("target amount: %w", core.ErrInvalidTarget)
	}

	// Current defaults to zero; goals start unfunded.
	var current core.Money
	if req.CurrentAmount != "" {
		current, err = core.ParseNonNegativeMoney(string(req.CurrentAmount))
		if err != nil {
			return core.SavingsGoal{}, fmt.Errorf("current amount: %w", err)
		}
	}

	var deadline time.Time
	if req.Deadline != "" {
		deadline, err = parseDate(req.Deadline)
		if err != nil {
			return core.SavingsGoal{}, err
		}
	}

	return core.SavingsGoal{
		Name:     req.Name,
		Target:   target,
		Current:  current,
		Icon:     req.Icon,
		Color:    req.Color,
		Deadline: deadline,
	}, nil
}

type goalResponse struct {
	ID            int64  `json:"id"`
	UserID        int64  `json:"userId"`
	Name          string `json:"name"`
	TargetAmount  string `json:"targetAmount"`
	CurrentAmount string `json:"currentAmount"`
	Icon          string `json:"icon,omitempty"`
	Color         string `json:"color,omitempty"`
	Deadline      string `json:"deadline,omitempty"`
	Progress      int    `json:"progress"`
	Remaining     string `json:"remaining"`
}

func toGoalResponse(g core.SavingsGoal) goalResponse {
	resp := goalResponse{
		ID:            g.ID,
		UserID:        g.UserID,
		Name:          g.Name,
		TargetAmount:  g.Target.String(),
		CurrentAmount: g.Current.String(),
		Icon:          g.Icon,
		Color:         g.Color,
		Progress:      core.GoalProgress(g.Current, g.Target),
		Remaining:     core.GoalRemaining(g.Current, g.Target).String(),
	}
	if !g.Deadline.IsZero() {
		resp.Deadline = g.Deadline.Format("2006-01-02")
	}
	return resp
}

func toGoalResponses(goals []core.SavingsGoal) []goalResponse {
	out := make([]goalResponse, 0, len(goals))
	for _, g := range goals {
		out = append(out, toGoalResponse(g))
	}
	return out
}

type summaryResponse struct {
	Balance   float64 `json:"balance"`
	Income    float64 `json:"income"`
	Expense   float64 `json:"expense"`
	Savings   float64 `json:"savings"`
	ExtraCash float64 `json:"extraCash"`
}

func toSummaryResponse(s core.FinancialSummary) summaryResponse {
	return summaryResponse{
		Balance:   s.Balance.Rupees(),
		Income:    s.Income.Rupees(),
		Expense:   s.Expense.Rupees(),
		Savings:   s.Savings.Rupees(),
		ExtraCash: s.ExtraCash.Rupees(),
	}
}

type breakdownEntry struct {
	CategoryID int64   `json:"categoryId"`
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	Amount     float64 `json:"amount"`
	Percentage int     `json:"percentage"`
}

func toBreakdownEntries(shares []core.CategoryShare) []breakdownEntry {
	out := make([]breakdownEntry, 0, len(shares))
	for _, s := range shares {
		out = append(out, breakdownEntry{
			CategoryID: s.CategoryID,
			Name:       s.Name,
			Color:      s.Color,
			Amount:     s.Amount.Rupees(),
			Percentage: s.Percentage,
		})
	}
	return out
}

type trendPoint struct {
	Year    int     `json:"year"`
	Month   int     `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Saving  float64 `json:"saving"`
	Extra   float64 `json:"extra"`
	Net     float64 `json:"net"`
}

func toTrendPoints(s core.MonthlySeries) []trendPoint {
	net := s.Net()
	out := make([]trendPoint, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		out = append(out, trendPoint{
			Year:    s.Years[i],
			Month:   s.Months[i],
			Income:  s.Income[i].Rupees(),
			Expense: s.Expense[i].Rupees(),
			Saving:  s.Saving[i].Rupees(),
			Extra:   s.Extra[i].Rupees(),
			Net:     net[i].Rupees(),
		})
	}
	return out
}
