package http

import (
	"encoding/json"
	"net/http"
)

// handleGoals dispatches the /api/savings-goals subtree:
//
//	GET    /api/savings-goals        all goals with progress
//	POST   /api/savings-goals        create
//	GET    /api/savings-goals/{id}   single goal
//	PUT    /api/savings-goals/{id}   update
//	DELETE /api/savings-goals/{id}   delete
func (s *Server) handleGoals(w http.ResponseWriter, r *http.Request) {
	seg := pathSegment(r.URL.Path, "/api/savings-goals")

	if seg == "" {
		switch r.Method {
		case http.MethodGet:
			s.listGoals(w, r)
		case http.MethodPost:
			s.createGoal(w, r)
		default:
			methodNotAllowed(w)
		}
		return
	}

	id, ok := parseID(seg)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid goal id")
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.getGoal(w, r, id)
	case http.MethodPut:
		s.updateGoal(w, r, id)
	case http.MethodDelete:
		s.deleteGoal(w, r, id)
	default:
		methodNotAllowed(w)
	}
}

func (s *Server) listGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := s.store.Goals(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toGoalResponses(goals))
}

func (s *Server) getGoal(w http.ResponseWriter, r *http.Request, id int64) {
	goal, err := s.store.Goal(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toGoalResponse(goal))
}

func (s *Server) createGoal(w http.ResponseWriter, r *http.Request) {
	var req goalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	goal, err := req.toGoal()
	if err != nil {
		respondError(w, r, err)
		return
	}
	created, err := s.store.CreateGoal(r.Context(), goal)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toGoalResponse(created))
}

func (s *Server) updateGoal(w http.ResponseWriter, r *http.Request, id int64) {
	var req goalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	goal, err := req.toGoal()
	if err != nil {
		respondError(w, r, err)
		return
	}
	updated, err := s.store.UpdateGoal(r.Context(), id, goal)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toGoalResponse(updated))
}

func (s *Server) deleteGoal(w http.ResponseWriter, r *http.Request, id int64) {
	if err := s.store.DeleteGoal(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
