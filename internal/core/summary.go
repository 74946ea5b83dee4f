package core

// FinancialSummary is derived from the full ledger on every read, never
// stored. Balance = Income - Expense; Savings and ExtraCash are reported
// as-is and not netted against the balance.
type FinancialSummary struct {
	Balance   Money
	Income    Money
	Expense   Money
	Savings   Money
	ExtraCash Money
}

// CategoryShare is one slice of a percentage breakdown.
type CategoryShare struct {
	CategoryID int64
	Name       string
	Color      string
	Amount     Money
	Percentage int // 0-100, rounded to nearest integer
}

// MonthlySeries holds aligned per-month sums, oldest month first. All
// slices have the same length.
type MonthlySeries struct {
	Years   []int
	Months  []int // 1-12, aligned with Years
	Income  []Money
	Expense []Money
	Saving  []Money
	Extra   []Money
}

// Net returns the derived cash-flow series, income minus expense per bucket.
func (s MonthlySeries) Net() []Money {
	net := make([]Money, len(s.Income))
	for i := range s.Income {
		net[i] = Money{Paisa: s.Income[i].Paisa - s.Expense[i].Paisa}
	}
	return net
}

// Len returns the number of month buckets.
func (s MonthlySeries) Len() int {
	return len(s.Months)
}
