package services

import (
	"context"

	"smartspend/internal/core"
	"smartspend/internal/oracle"
	"smartspend/internal/store"
)

// InsightService produces the natural-language monthly summary. All failure
// modes are absorbed by the oracle; the result is always displayable text.
type InsightService struct {
	store  *store.Store
	oracle oracle.Oracle
}

func NewInsightService(st *store.Store, ora oracle.Oracle) *InsightService {
	if ora == nil {
		ora = oracle.Disabled{}
	}
	return &InsightService{store: st, oracle: ora}
}

// Monthly returns a short insight for the month of ref.
func (s *InsightService) Monthly(ctx context.Context, ref core.Date) string {
	monthExpenses := core.ExpensesInMonth(s.store.Expenses(), ref)
	monthLabel := core.MonthNames[ref.Month()-1]
	return s.oracle.MonthlyInsight(ctx, monthExpenses, s.store.Categories(), monthLabel)
}
