package httpapi

import (
	"net/http"

	"github.com/fintrackhq/fintrack/internal/server/models"
	"github.com/fintrackhq/fintrack/internal/server/repositories/bills"
	"github.com/gorilla/mux"
)

func (s *Server) handleListBills(w http.ResponseWriter, r *http.Request) {
	items, err := s.bills.List(r.Context(), userID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleCreateBill(w http.ResponseWriter, r *http.Request) {
	var b models.Bill
	if !decodeJSON(w, r, &b) {
		return
	}

	created, err := s.bills.Create(r.Context(), userID(r), &b)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateBill(w http.ResponseWriter, r *http.Request) {
	var upd bills.Update
	if !decodeJSON(w, r, &upd) {
		return
	}

	updated, err := s.bills.Update(r.Context(), mux.Vars(r)["id"], userID(r), upd)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteBill(w http.ResponseWriter, r *http.Request) {
	if err := s.bills.Delete(r.Context(), mux.Vars(r)["id"], userID(r)); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "bill deleted"})
}
