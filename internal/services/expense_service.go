// Package services orchestrates store mutations, oracle calls, and change
// events. Confirmation gates for destructive actions live here so every
// transport goes through the same checks.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"smartspend/internal/core"
	"smartspend/internal/events"
	"smartspend/internal/oracle"
	"smartspend/internal/quickadd"
	"smartspend/internal/store"
)

// ExpenseService handles expense creation, deletion, and the derived
// monthly views.
type ExpenseService struct {
	store     *store.Store
	oracle    oracle.Oracle
	publisher *events.Publisher
}

func NewExpenseService(st *store.Store, ora oracle.Oracle, publisher *events.Publisher) *ExpenseService {
	if ora == nil {
		ora = oracle.Disabled{}
	}
	return &ExpenseService{store: st, oracle: ora, publisher: publisher}
}

// Create validates and stores a fully-specified expense.
func (s *ExpenseService) Create(ctx context.Context, description string, amount core.Money, date core.Date, categoryID string) (core.Expense, error) {
	e := core.Expense{
		ID:          uuid.NewString(),
		Description: description,
		Amount:      amount,
		Date:        date,
		CategoryID:  categoryID,
	}
	if err := e.Validate(); err != nil {
		return core.Expense{}, fmt.Errorf("validate expense: %w", err)
	}

	s.store.AddExpense(ctx, e)
	s.publishChange(ctx, events.EntityExpense, events.ActionCreated, e.ID)
	return e, nil
}

// QuickAdd parses free text into an expense. The oracle may override the
// inferred category; when it stays silent the inference or the supplied
// fallback wins. The oracle call is bounded by ctx and never fails the add.
func (s *ExpenseService) QuickAdd(ctx context.Context, input string, date core.Date, fallbackCategoryID string) (core.Expense, error) {
	categories := s.store.Categories()

	parsed := quickadd.Parse(input, categories)
	if !parsed.HasAmount {
		return core.Expense{}, core.ErrInvalidAmount
	}
	if parsed.Description == "" {
		return core.Expense{}, core.ErrEmptyDescription
	}

	categoryID := parsed.CategoryID
	if categoryID == "" {
		categoryID = fallbackCategoryID
	}
	if suggested, ok := s.oracle.SuggestCategory(ctx, parsed.Description, parsed.Amount, categories); ok {
		categoryID = suggested
	}

	return s.Create(ctx, parsed.Description, parsed.Amount, date, categoryID)
}

// Delete removes an expense permanently.
func (s *ExpenseService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteExpense(ctx, id); err != nil {
		return err
	}
	s.publishChange(ctx, events.EntityExpense, events.ActionDeleted, id)
	return nil
}

// List returns the expenses of the reference month, optionally narrowed to
// one category name. The narrowing is a view filter; stats are unaffected.
func (s *ExpenseService) List(ref core.Date, categoryName string) []core.Expense {
	monthExpenses := core.ExpensesInMonth(s.store.Expenses(), ref)
	return core.FilterByCategoryName(monthExpenses, s.store.Categories(), categoryName)
}

// Stats recomputes the month's aggregates from the current collections.
func (s *ExpenseService) Stats(ref core.Date) core.MonthlyStats {
	return core.ComputeMonthlyStats(s.store.Expenses(), s.store.Categories(), ref)
}

// Trend recomputes the 6-month rolling window anchored at ref.
func (s *ExpenseService) Trend(ref core.Date) []core.TrendPoint {
	return core.ComputeTrend(s.store.Expenses(), ref)
}

// AllExpenses returns the full collection, newest first.
func (s *ExpenseService) AllExpenses() []core.Expense {
	return s.store.Expenses()
}

func (s *ExpenseService) publishChange(ctx context.Context, entity, action, id string) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishChange(ctx, entity, action, id); err != nil {
		// The mutation already succeeded locally; the event stream is
		// best effort.
		slog.ErrorContext(ctx, "Failed to publish change event",
			"entity", entity, "action", action, "id", id, "error", err)
	}
}
