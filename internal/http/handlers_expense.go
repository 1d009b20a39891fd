package http

import (
	"context"
	"net/http"

	"smartspend/internal/core"
)

type createExpenseRequest struct {
	Description string `json:"description"`
	Amount      string `json:"amount"` // decimal string, e.g. "300.50"
	Date        string `json:"date"`   // YYYY-MM-DD, defaults to today
	CategoryID  string `json:"categoryId"`
}

type quickAddRequest struct {
	Text       string `json:"text"`
	Date       string `json:"date"`       // YYYY-MM-DD, defaults to today
	CategoryID string `json:"categoryId"` // fallback when nothing is inferred
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	ref := parseRefDate(r)
	category := r.URL.Query().Get("category")

	expenses := s.expenses.List(ref, category)
	writeJSON(w, http.StatusOK, map[string]any{
		"expenses": expenses,
		"count":    len(expenses),
	})
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	var req createExpenseRequest
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

	e, err := s.expenses.Create(ctx, req.Description, amount, date, req.CategoryID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func (s *Server) handleQuickAdd(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	var req quickAddRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	date, err := parseDateOrToday(req.Date)
	if err != nil {
		writeError(w, err)
		return
	}

	e, err := s.expenses.QuickAdd(ctx, req.Text, date, req.CategoryID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	if err := s.expenses.Delete(ctx, r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
