package http

import (
	"context"
	"net/http"
	"time"

	"smartspend/internal/core"
	"smartspend/internal/export"
)

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	ref := parseRefDate(r)
	stats := s.expenses.Stats(ref)

	writeJSON(w, http.StatusOK, map[string]any{
		"year":         ref.Year(),
		"month":        ref.Month(),
		"monthLabel":   core.MonthNames[ref.Month()-1],
		"stats":        stats,
		"dailyAverage": core.DailyAverage(stats.Total),
	})
}

func (s *Server) handleTrend(w http.ResponseWriter, r *http.Request) {
	ref := parseRefDate(r)
	writeJSON(w, http.StatusOK, map[string]any{
		"points": s.expenses.Trend(ref),
	})
}

func (s *Server) handleInsight(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	ref := parseRefDate(r)
	writeJSON(w, http.StatusOK, map[string]any{
		"insight": s.insights.Monthly(ctx, ref),
	})
}

// handleExport streams a CSV download of all expenses or one month.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var (
		expenses []core.Expense
		filename string
	)
	switch r.URL.Query().Get("scope") {
	case "month":
		ref := parseRefDate(r)
		expenses = s.expenses.List(ref, "")
		filename = export.MonthFilename(ref)
	default:
		expenses = s.expenses.AllExpenses()
		filename = export.DefaultFilename(time.Now())
	}
	if name := r.URL.Query().Get("filename"); name != "" {
		filename = name
	}

	doc := export.ExpensesToCSV(expenses, s.categories.List(), s.currencySymbol)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}
