package httpapi

import (
	"net/http"

	"github.com/fintrackhq/fintrack/internal/server/models"
	"github.com/fintrackhq/fintrack/internal/server/repositories/transactions"
	"github.com/gorilla/mux"
)

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	items, err := s.transactions.List(r.Context(), userID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var t models.Transaction
	if !decodeJSON(w, r, &t) {
		return
	}

	created, err := s.transactions.Create(r.Context(), userID(r), &t)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	var upd transactions.Update
	if !decodeJSON(w, r, &upd) {
		return
	}

	updated, err := s.transactions.Update(r.Context(), mux.Vars(r)["id"], userID(r), upd)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if err := s.transactions.Delete(r.Context(), mux.Vars(r)["id"], userID(r)); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "transaction deleted"})
}
