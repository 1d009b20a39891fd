package http

import (
	"context"
	"net/http"

	"smartspend/internal/core"
)

type createDebtRequest struct {
	PersonName string `json:"personName"`
	Amount     string `json:"amount"` // decimal string
	Type       string `json:"type"`   // "lent" or "borrowed"
	Date       string `json:"date"`   // YYYY-MM-DD, defaults to today
	Notes      string `json:"notes"`
}

func (s *Server) handleListDebts(w http.ResponseWriter, r *http.Request) {
	lent, borrowed := s.debts.Totals()
	writeJSON(w, http.StatusOK, map[string]any{
		"debts":         s.debts.List(),
		"totalLent":     lent,
		"totalBorrowed": borrowed,
	})
}

func (s *Server) handleCreateDebt(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	var req createDebtRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	amount, err := core.ParseMoney(req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}
	date, err := parseDateOrToday(req.Date)
	if err != nil {
		writeError(w, err)
		return
	}

	d, err := s.debts.Add(ctx, req.PersonName, amount, core.DebtType(req.Type), date, req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, d)
}

func (s *Server) handleSettleDebt(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	d, err := s.debts.Settle(ctx, r.PathValue("id"), parseConfirm(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleDeleteDebt(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	if err := s.debts.Delete(ctx, r.PathValue("id"), parseConfirm(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
