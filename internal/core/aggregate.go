package core

import (
	"math"
	"sort"
	"time"
)

// Fallback label and color used when a transaction has no category or
// references one that cannot be resolved.
const (
	UncategorizedName  = "Uncategorized"
	UncategorizedColor = "#9CA3AF"
)

// Summarize partitions transactions by type and sums each bucket. An
// empty ledger yields the all-zero summary, which callers must treat as a
// valid "no data yet" state.
func Summarize(transactions []Transaction) FinancialSummary {
	var s FinancialSummary
	for _, tx := range transactions {
		switch tx.Type {
		case Income:
			s.Income.Paisa += tx.Amount.Paisa
		case Expense:
			s.Expense.Paisa += tx.Amount.Paisa
		case Saving:
			s.Savings.Paisa += tx.Amount.Paisa
		case Extra:
			s.ExtraCash.Paisa += tx.Amount.Paisa
		}
	}
	s.Balance.Paisa = s.Income.Paisa - s.Expense.Paisa
	return s
}

// Breakdown filters transactions to one type, groups amounts by category
// and normalizes them to whole percentages of the type's total, resolving
// names and colors through the given categories. When the total is zero
// every share reports 0%. The result is sorted descending by percentage;
// equal percentages keep ascending category id order.
func Breakdown(transactions []Transaction, categories []Category, txType TransactionType) []CategoryShare {
	sums := make(map[int64]int64)
	for _, tx := range transactions {
		if tx.Type != txType {
			continue
		}
		sums[tx.CategoryID] += tx.Amount.Paisa
	}
	if len(sums) == 0 {
		return nil
	}

	var total int64
	ids := make([]int64, 0, len(sums))
	for id, amount := range sums {
		total += amount
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	byID := make(map[int64]Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	shares := make([]CategoryShare, 0, len(ids))
	for _, id := range ids {
		amount := sums[id]
		share := CategoryShare{
			CategoryID: id,
			Name:       UncategorizedName,
			Color:      UncategorizedColor,
			Amount:     Money{Paisa: amount},
		}
		if c, ok := byID[id]; ok {
			share.Name = c.Name
			share.Color = c.Color
		}
		if total > 0 {
			share.Percentage = int(math.Round(float64(amount) / float64(total) * 100))
		}
		shares = append(shares, share)
	}
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Percentage > shares[j].Percentage
	})
	return shares
}

// MonthlyTrend buckets transactions into monthCount calendar months ending
// at now, oldest first. Bucketing uses calendar-month difference, not
// 30-day windows: a transaction dated now lands in the last bucket, one
// dated monthCount months back falls outside and is dropped.
func MonthlyTrend(transactions []Transaction, monthCount int, now time.Time) MonthlySeries {
	if monthCount < 1 {
		monthCount = 1
	}
	s := MonthlySeries{
		Years:   make([]int, monthCount),
		Months:  make([]int, monthCount),
		Income:  make([]Money, monthCount),
		Expense: make([]Money, monthCount),
		Saving:  make([]Money, monthCount),
		Extra:   make([]Money, monthCount),
	}
	for i := 0; i < monthCount; i++ {
		// Anchor to the first of the month so stepping back from a day
		// the target month does not have (e.g. March 31) cannot
		// normalize into the wrong label.
		m := time.Date(now.Year(), now.Month()-time.Month(monthCount-1-i), 1, 0, 0, 0, 0, now.Location())
		s.Years[i] = m.Year()
		s.Months[i] = int(m.Month())
	}
	for _, tx := range transactions {
		diff := (now.Year()-tx.Date.Year())*12 + int(now.Month()) - int(tx.Date.Month())
		if diff < 0 || diff >= monthCount {
			continue
		}
		i := monthCount - 1 - diff
		switch tx.Type {
		case Income:
			s.Income[i].Paisa += tx.Amount.Paisa
		case Expense:
			s.Expense[i].Paisa += tx.Amount.Paisa
		case Saving:
			s.Saving[i].Paisa += tx.Amount.Paisa
		case Extra:
			s.Extra[i].Paisa += tx.Amount.Paisa
		}
	}
	return s
}
