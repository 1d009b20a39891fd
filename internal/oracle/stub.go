package oracle

import (
	"context"

	"smartspend/internal/core"
)

// Stub is a deterministic oracle for tests. It honors the same empty-input
// and offline short-circuits as the real client.
type Stub struct {
	Offline     bool
	CategoryID  string // returned by SuggestCategory when set
	InsightText string // returned by MonthlyInsight when set

	SuggestCalls int
	InsightCalls int
}

func (s *Stub) SuggestCategory(_ context.Context, description string, _ core.Money, _ []core.Category) (string, bool) {
	if s.Offline || len(description) < 3 {
		return "", false
	}
	s.SuggestCalls++
	if s.CategoryID == "" {
		return "", false
	}
	return s.CategoryID, true
}

func (s *Stub) MonthlyInsight(_ context.Context, expenses []core.Expense, _ []core.Category, _ string) string {
	if len(expenses) == 0 {
		return InsightNoExpenses
	}
	if s.Offline {
		return InsightOffline
	}
	s.InsightCalls++
	if s.InsightText == "" {
		return InsightDefault
	}
	return s.InsightText
}
