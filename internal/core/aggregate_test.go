package core

import (
	"testing"
	"time"
)

func rupees(r int64) Money { return Money{Paisa: r * 100} }

func TestSummarize(t *testing.T) {
	txs := []Transaction{
		{Type: Income, Amount: rupees(45000)},
		{Type: Expense, Amount: rupees(2500)},
		{Type: Expense, Amount: rupees(1200)},
		{Type: Saving, Amount: rupees(10000)},
		{Type: Expense, Amount: rupees(3850)},
	}
	s := Summarize(txs)
	if s.Income != rupees(45000) {
		t.Errorf("income = %v, want 45000", s.Income)
	}
	if s.Expense != rupees(7550) {
		t.Errorf("expense = %v, want 7550", s.Expense)
	}
	if s.Savings != rupees(10000) {
		t.Errorf("savings = %v, want 10000", s.Savings)
	}
	if s.ExtraCash != rupees(0) {
		t.Errorf("extraCash = %v, want 0", s.ExtraCash)
	}
	if s.Balance != rupees(37450) {
		t.Errorf("balance = %v, want 37450", s.Balance)
	}
}

func TestSummarizeBalanceIdentity(t *testing.T) {
	txs := []Transaction{
		{Type: Income, Amount: rupees(100)},
		{Type: Income, Amount: rupees(250)},
		{Type: Expense, Amount: rupees(475)},
		{Type: Extra, Amount: rupees(50)},
	}
	s := Summarize(txs)
	if s.Balance.Paisa != s.Income.Paisa-s.Expense.Paisa {
		t.Fatalf("balance %d != income %d - expense %d", s.Balance.Paisa, s.Income.Paisa, s.Expense.Paisa)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s != (FinancialSummary{}) {
		t.Fatalf("empty ledger summary = %+v, want all zeros", s)
	}
}

func TestBreakdown(t *testing.T) {
	cats := []Category{
		{ID: 6, Name: "Shopping", Type: Expense, Color: "#EF4444"},
		{ID: 7, Name: "Food & Dining", Type: Expense, Color: "#8B5CF6"},
		{ID: 8, Name: "Bills & Utilities", Type: Expense, Color: "#F59E0B"},
	}
	txs := []Transaction{
		{Type: Expense, CategoryID: 6, Amount: rupees(2500)},
		{Type: Expense, CategoryID: 7, Amount: rupees(1200)},
		{Type: Expense, CategoryID: 8, Amount: rupees(3850)},
		{Type: Income, CategoryID: 1, Amount: rupees(45000)}, // other types excluded
	}
	shares := Breakdown(txs, cats, Expense)
	if len(shares) != 3 {
		t.Fatalf("got %d shares, want 3", len(shares))
	}
	want := []struct {
		name string
		pct  int
	}{
		{"Bills & Utilities", 51},
		{"Shopping", 33},
		{"Food & Dining", 16},
	}
	sum := 0
	for i, w := range want {
		if shares[i].Name != w.name || shares[i].Percentage != w.pct {
			t.Errorf("share[%d] = %s/%d%%, want %s/%d%%", i, shares[i].Name, shares[i].Percentage, w.name, w.pct)
		}
		sum += shares[i].Percentage
	}
	if sum < 99 || sum > 101 {
		t.Errorf("percentages sum to %d, want 100 +/- 1", sum)
	}
}

func TestBreakdownUnknownCategory(t *testing.T) {
	txs := []Transaction{
		{Type: Expense, CategoryID: 0, Amount: rupees(30)},
		{Type: Expense, CategoryID: 99, Amount: rupees(70)},
	}
	shares := Breakdown(txs, nil, Expense)
	if len(shares) != 2 {
		t.Fatalf("got %d shares, want 2", len(shares))
	}
	for _, s := range shares {
		if s.Name != UncategorizedName || s.Color != UncategorizedColor {
			t.Errorf("unresolved category rendered as %s/%s", s.Name, s.Color)
		}
	}
	if shares[0].Percentage != 70 || shares[1].Percentage != 30 {
		t.Errorf("percentages = %d,%d, want 70,30", shares[0].Percentage, shares[1].Percentage)
	}
}

func TestBreakdownZeroTotal(t *testing.T) {
	// Amounts are required positive at ingestion, but a zero total must
	// still degrade to 0% rather than NaN.
	txs := []Transaction{
		{Type: Expense, CategoryID: 1, Amount: Money{}},
		{Type: Expense, CategoryID: 2, Amount: Money{}},
	}
	for _, s := range Breakdown(txs, nil, Expense) {
		if s.Percentage != 0 {
			t.Fatalf("zero total produced %d%%", s.Percentage)
		}
	}
}

func TestBreakdownStableTies(t *testing.T) {
	txs := []Transaction{
		{Type: Expense, CategoryID: 3, Amount: rupees(50)},
		{Type: Expense, CategoryID: 1, Amount: rupees(50)},
	}
	shares := Breakdown(txs, nil, Expense)
	if shares[0].CategoryID != 1 || shares[1].CategoryID != 3 {
		t.Fatalf("tie order = %d,%d, want ascending ids 1,3", shares[0].CategoryID, shares[1].CategoryID)
	}
}

func TestMonthlyTrend(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	txs := []Transaction{
		{Type: Income, Amount: rupees(1000), Date: now},                          // last bucket
		{Type: Expense, Amount: rupees(200), Date: now.AddDate(0, -1, 0)},        // previous month
		{Type: Saving, Amount: rupees(300), Date: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)}, // oldest in window
		{Type: Extra, Amount: rupees(400), Date: time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)}, // outside, dropped
		{Type: Income, Amount: rupees(500), Date: now.AddDate(0, 1, 0)},          // future, dropped
	}
	s := MonthlyTrend(txs, 6, now)
	if s.Len() != 6 {
		t.Fatalf("series length = %d, want 6", s.Len())
	}
	if s.Months[0] != 1 || s.Months[5] != 6 {
		t.Fatalf("month labels = %v, want Jan..Jun", s.Months)
	}
	if s.Income[5] != rupees(1000) {
		t.Errorf("income[last] = %v, want 1000", s.Income[5])
	}
	if s.Expense[4] != rupees(200) {
		t.Errorf("expense[prev] = %v, want 200", s.Expense[4])
	}
	if s.Saving[0] != rupees(300) {
		t.Errorf("saving[oldest] = %v, want 300", s.Saving[0])
	}
	var extraTotal int64
	for _, m := range s.Extra {
		extraTotal += m.Paisa
	}
	if extraTotal != 0 {
		t.Errorf("out-of-window extra leaked into buckets: %d", extraTotal)
	}
	net := s.Net()
	if net[5] != rupees(1000) || net[4] != rupees(-200) {
		t.Errorf("net = %v,%v, want 1000,-200", net[5], net[4])
	}
}

func TestMonthlyTrendMonthEndLabels(t *testing.T) {
	// Stepping back from March 31 must label January and February, not
	// normalize through their missing day 31 back into March.
	now := time.Date(2024, time.March, 31, 12, 0, 0, 0, time.UTC)
	txs := []Transaction{
		{Type: Expense, Amount: rupees(100), Date: time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)},
	}
	s := MonthlyTrend(txs, 3, now)
	wantMonths := []int{1, 2, 3}
	for i, want := range wantMonths {
		if s.Months[i] != want || s.Years[i] != 2024 {
			t.Fatalf("bucket %d = %d-%d, want 2024-%d (labels: %v)", i, s.Years[i], s.Months[i], want, s.Months)
		}
	}
	if s.Expense[1] != rupees(100) {
		t.Fatalf("february expense = %v, want 100 under the February label", s.Expense[1])
	}
	if s.Expense[2] != rupees(0) {
		t.Fatalf("march bucket = %v, want empty", s.Expense[2])
	}
}

func TestMonthlyTrendYearBoundary(t *testing.T) {
	now := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	txs := []Transaction{
		{Type: Expense, Amount: rupees(100), Date: time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC)},
	}
	s := MonthlyTrend(txs, 3, now)
	if s.Years[0] != 2023 || s.Months[0] != 12 {
		t.Fatalf("oldest bucket = %d-%d, want 2023-12", s.Years[0], s.Months[0])
	}
	if s.Expense[0] != rupees(100) {
		t.Fatalf("december expense = %v, want 100", s.Expense[0])
	}
}
