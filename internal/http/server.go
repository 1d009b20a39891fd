// Package http exposes the tracker as a JSON API.
package http

import (
	"net/http"

	"smartspend/internal/services"
	"smartspend/internal/store"
)

// Server bundles the services behind the API routes.
type Server struct {
	expenses   *services.ExpenseService
	categories *services.CategoryService
	debts      *services.DebtService
	session    *services.SessionService
	insights   *services.InsightService
	store      *store.Store

	currencySymbol string
}

func NewServer(
	expenses *services.ExpenseService,
	categories *services.CategoryService,
	debts *services.DebtService,
	session *services.SessionService,
	insights *services.InsightService,
	st *store.Store,
	currencySymbol string,
) *Server {
	return &Server{
		expenses:       expenses,
		categories:     categories,
		debts:          debts,
		session:        session,
		insights:       insights,
		store:          st,
		currencySymbol: currencySymbol,
	}
}

// Handler builds the route table wrapped in the request logging middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealth)

	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.HandleFunc("POST /api/logout", s.handleLogout)
	mux.HandleFunc("GET /api/session", s.handleSession)

	mux.HandleFunc("GET /api/expenses", s.handleListExpenses)
	mux.HandleFunc("POST /api/expenses", s.handleCreateExpense)
	mux.HandleFunc("POST /api/expenses/quick", s.handleQuickAdd)
	mux.HandleFunc("DELETE /api/expenses/{id}", s.handleDeleteExpense)

	mux.HandleFunc("GET /api/stats", s.handleStats)
	mux.HandleFunc("GET /api/trend", s.handleTrend)
	mux.HandleFunc("GET /api/insight", s.handleInsight)
	mux.HandleFunc("GET /api/export", s.handleExport)

	mux.HandleFunc("GET /api/categories", s.handleListCategories)
	mux.HandleFunc("POST /api/categories", s.handleCreateCategory)
	mux.HandleFunc("PUT /api/categories/{id}", s.handleUpdateCategory)
	mux.HandleFunc("DELETE /api/categories/{id}", s.handleDeleteCategory)
	mux.HandleFunc("POST /api/categories/reset", s.handleResetCategories)

	mux.HandleFunc("GET /api/debts", s.handleListDebts)
	mux.HandleFunc("POST /api/debts", s.handleCreateDebt)
	mux.HandleFunc("POST /api/debts/{id}/settle", s.handleSettleDebt)
	mux.HandleFunc("DELETE /api/debts/{id}", s.handleDeleteDebt)

	mux.HandleFunc("GET /api/theme", s.handleGetTheme)
	mux.HandleFunc("PUT /api/theme", s.handleSetTheme)

	return RequestLogger(mux)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
