package export

import (
	"strings"
	"testing"
	"time"

	"smartspend/internal/core"
)

func TestExpensesToCSV(t *testing.T) {
	categories := []core.Category{{ID: "cat_food", Name: "Food & Dining"}}
	expenses := []core.Expense{
		{ID: "e1", Description: "Lunch", Amount: core.Money{Cents: 15000}, Date: core.NewDate(2024, 3, 10), CategoryID: "cat_food"},
		{ID: "e2", Description: `He said "hi"`, Amount: core.Money{Cents: 500}, Date: core.NewDate(2024, 3, 11), CategoryID: "cat_gone"},
	}

	got := ExpensesToCSV(expenses, categories, "₹")
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines:\n%s", len(lines), got)
	}
	if lines[0] != "Date,Description,Category,Amount,Currency" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != `2024-03-10,"Lunch",Food & Dining,150.00,₹` {
		t.Errorf("row 1 = %q", lines[1])
	}
	// Dangling category resolves to Unknown; embedded quotes are doubled.
	if lines[2] != `2024-03-11,"He said ""hi""",Unknown,5.00,₹` {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestExpensesToCSVEmpty(t *testing.T) {
	got := ExpensesToCSV(nil, nil, "")
	if got != "Date,Description,Category,Amount,Currency\n" {
		t.Fatalf("empty export = %q", got)
	}
}

func TestExpensesToCSVDefaultCurrency(t *testing.T) {
	expenses := []core.Expense{
		{ID: "e1", Description: "Lunch", Amount: core.Money{Cents: 100}, Date: core.NewDate(2024, 3, 10)},
	}
	got := ExpensesToCSV(expenses, nil, "")
	if !strings.HasSuffix(got, ","+DefaultCurrencySymbol) {
		t.Errorf("expected default currency symbol, got %q", got)
	}
}

func TestFilenames(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	if got := DefaultFilename(now); got != "smartspend_export_2024-03-15.csv" {
		t.Errorf("DefaultFilename = %q", got)
	}
	if got := MonthFilename(core.NewDate(2024, 3, 1)); got != "smartspend_March_2024.csv" {
		t.Errorf("MonthFilename = %q", got)
	}
}
