package httpapi

import (
	"net/http"

	"github.com/fintrackhq/fintrack/internal/server/models"
	"github.com/fintrackhq/fintrack/internal/server/repositories/goals"
	"github.com/gorilla/mux"
)

func (s *Server) handleListGoals(w http.ResponseWriter, r *http.Request) {
	items, err := s.goals.List(r.Context(), userID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	var g models.Goal
	if !decodeJSON(w, r, &g) {
		return
	}

	created, err := s.goals.Create(r.Context(), userID(r), &g)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	var upd goals.Update
	if !decodeJSON(w, r, &upd) {
		return
	}

	updated, err := s.goals.Update(r.Context(), mux.Vars(r)["id"], userID(r), upd)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	if err := s.goals.Delete(r.Context(), mux.Vars(r)["id"], userID(r)); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "goal deleted"})
}
