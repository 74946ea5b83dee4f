package http

import (
	"net/http"
	"time"

	"paisa/internal/core"
)

const (
	defaultTrendMonths = 6
	maxTrendMonths     = 24
)

// handleSummary recomputes the financial summary from the full ledger on
// every request.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	txs, err := s.store.Transactions(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSummaryResponse(core.Summarize(txs)))
}

// handleBreakdown returns the per-category percentage split for one
// transaction type, expenses by default.
func (s *Server) handleBreakdown(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	txType := core.Expense
	if raw := r.URL.Query().Get("type"); raw != "" {
		parsed, err := core.ParseTransactionType(raw)
		if err != nil {
			respondError(w, r, err)
			return
		}
		txType = parsed
	}

	txs, err := s.store.Transactions(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	cats, err := s.store.Categories(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toBreakdownEntries(core.Breakdown(txs, cats, txType)))
}

// handleTrends returns the monthly series for the trailing ?months window.
func (s *Server) handleTrends(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	months := queryInt(r.URL.Query().Get("months"), defaultTrendMonths, 1, maxTrendMonths)

	txs, err := s.store.Transactions(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTrendPoints(core.MonthlyTrend(txs, months, time.Now())))
}
