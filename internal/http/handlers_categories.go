package http

import (
	"net/http"

	"paisa/internal/core"
)

// handleCategories serves the seeded category directory, optionally
// filtered by transaction type via /api/categories/{type}.
func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	seg := pathSegment(r.URL.Path, "/api/categories")
	if seg == "" {
		cats, err := s.store.Categories(r.Context())
		if err != nil {
			respondError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toCategoryResponses(cats))
		return
	}

	txType, err := core.ParseTransactionType(seg)
	if err != nil {
		respondError(w, r, err)
		return
	}
	cats, err := s.store.CategoriesByType(r.Context(), txType)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponses(cats))
}
