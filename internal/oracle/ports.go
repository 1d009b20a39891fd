// Package oracle defines the boundary to the external AI suggestion and
// insight service. The oracle is an optional enhancement: every failure path
// degrades to "no suggestion" or a fixed fallback string, never to an error
// the caller has to handle.
package oracle

import (
	"context"

	"smartspend/internal/core"
)

// Fixed insight strings. The first two short-circuit without issuing any
// request; the last two cover request failure and an empty response body.
const (
	InsightNoExpenses = "No expenses yet. Start spending (wisely)! 😉"
	InsightOffline    = "Connect to internet for AI tips! 🌐"
	InsightFailure    = "AI is taking a quick nap. 😴"
	InsightDefault    = "You're doing great! Keep it up! 🚀"
)

// Oracle is the capability interface for AI-backed enhancements.
type Oracle interface {
	// SuggestCategory returns the id of the category matching the
	// description, or ok=false when offline, the description is too short,
	// or the service fails or returns an unknown name.
	SuggestCategory(ctx context.Context, description string, amount core.Money, categories []core.Category) (categoryID string, ok bool)

	// MonthlyInsight returns a short natural-language observation about a
	// month's expenses. It always returns usable text.
	MonthlyInsight(ctx context.Context, expenses []core.Expense, categories []core.Category, monthLabel string) string
}

// Disabled is the oracle used when no API key is configured. It behaves
// like a permanently offline service.
type Disabled struct{}

func (Disabled) SuggestCategory(context.Context, string, core.Money, []core.Category) (string, bool) {
	return "", false
}

func (Disabled) MonthlyInsight(_ context.Context, expenses []core.Expense, _ []core.Category, _ string) string {
	if len(expenses) == 0 {
		return InsightNoExpenses
	}
	return InsightOffline
}
