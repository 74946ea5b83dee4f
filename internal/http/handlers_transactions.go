package http

import (
	"encoding/json"
	"net/http"

	"paisa/internal/core"
)

const (
	defaultRecentLimit = 10
	maxRecentLimit     = 100
)

// handleTransactions dispatches the /api/transactions subtree:
//
//	GET    /api/transactions          all transactions
//	POST   /api/transactions          create
//	GET    /api/transactions/recent   newest first, ?limit
//	GET    /api/transactions/{type}   filtered by type
//	PUT    /api/transactions/{id}     update
//	DELETE /api/transactions/{id}     delete
func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	seg := pathSegment(r.URL.Path, "/api/transactions")

	switch {
	case seg == "":
		switch r.Method {
		case http.MethodGet:
			s.listTransactions(w, r)
		case http.MethodPost:
			s.createTransaction(w, r)
		default:
			methodNotAllowed(w)
		}
	case seg == "recent":
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		s.recentTransactions(w, r)
	default:
		if id, ok := parseID(seg); ok {
			switch r.Method {
			case http.MethodPut:
				s.updateTransaction(w, r, id)
			case http.MethodDelete:
				s.deleteTransaction(w, r, id)
			default:
				methodNotAllowed(w)
			}
			return
		}
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		s.listTransactionsByType(w, r, seg)
	}
}

func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := s.store.Transactions(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTransactionResponses(txs))
}

func (s *Server) listTransactionsByType(w http.ResponseWriter, r *http.Request, raw string) {
	txType, err := core.ParseTransactionType(raw)
	if err != nil {
		respondError(w, r, err)
		return
	}
	txs, err := s.store.TransactionsByType(r.Context(), txType)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTransactionResponses(txs))
}

func (s *Server) recentTransactions(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r.URL.Query().Get("limit"), defaultRecentLimit, 1, maxRecentLimit)
	txs, err := s.store.RecentTransactions(r.Context(), limit)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTransactionResponses(txs))
}

func (s *Server) createTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	tx, err := req.toTransaction()
	if err != nil {
		respondError(w, r, err)
		return
	}
	created, err := s.store.CreateTransaction(r.Context(), tx)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTransactionResponse(created))
}

func (s *Server) updateTransaction(w http.ResponseWriter, r *http.Request, id int64) {
	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	tx, err := req.toTransaction()
	if err != nil {
		respondError(w, r, err)
		return
	}
	updated, err := s.store.UpdateTransaction(r.Context(), id, tx)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTransactionResponse(updated))
}

func (s *Server) deleteTransaction(w http.ResponseWriter, r *http.Request, id int64) {
	if err := s.store.DeleteTransaction(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
