package core

import "sort"

// UnknownCategoryName is the bucket for expenses whose category reference
// dangles after the category was deleted.
const UnknownCategoryName = "Unknown"

// unknownCategoryColor is the display color for the Unknown bucket.
const unknownCategoryColor = "#cbd5e1"

// daysPerMonth is the fixed divisor for the daily average. The average is
// intentionally not calendar-aware.
const daysPerMonth = 30

type (
	// CategoryBreakdown is one per-category slice of a month's spending.
	CategoryBreakdown struct {
		Name   string `json:"name"`
		Value  Money  `json:"value"`
		Color  string `json:"color"`
		Budget *Money `json:"budget,omitempty"`
	}

	// MonthlyStats summarizes one calendar month. It is derived on every
	// read from the current collections and never cached.
	MonthlyStats struct {
		Total      Money               `json:"total"`
		ByCategory []CategoryBreakdown `json:"byCategory"`
	}
)

// OverBudget reports whether the summed value strictly exceeds the budget
// limit. Equal-to-limit is not over budget. Categories without a budget are
// never over budget.
func (b CategoryBreakdown) OverBudget() bool {
	return b.Budget != nil && b.Value.Cents > b.Budget.Cents
}

// ResolveCategoryName maps a category reference to its display name, falling
// back to the Unknown bucket for dangling references. All aggregation goes
// through this single resolution point.
func ResolveCategoryName(categories []Category, categoryID string) string {
	for _, c := range categories {
		if c.ID == categoryID {
			return c.Name
		}
	}
	return UnknownCategoryName
}

func findCategoryByName(categories []Category, name string) (Category, bool) {
	for _, c := range categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// ExpensesInMonth filters expenses to those whose date falls in the same
// calendar month and year as ref.
func ExpensesInMonth(expenses []Expense, ref Date) []Expense {
	var out []Expense
	for _, e := range expenses {
		if e.Date.SameMonth(ref) {
			out = append(out, e)
		}
	}
	return out
}

// FilterByCategoryName narrows expenses to those resolving to the named
// category. An empty name returns the input unchanged. This is a view-level
// filter only; MonthlyStats is always computed over the full month.
func FilterByCategoryName(expenses []Expense, categories []Category, name string) []Expense {
	if name == "" {
		return expenses
	}
	var out []Expense
	for _, e := range expenses {
		if ResolveCategoryName(categories, e.CategoryID) == name {
			out = append(out, e)
		}
	}
	return out
}

// ComputeMonthlyStats derives the per-category totals for the month of ref.
// Breakdown entries are sorted by descending value; ties keep encounter
// order, where encounter is the first appearance in expense iteration order.
// The sum of the breakdown values always equals the total.
func ComputeMonthlyStats(expenses []Expense, categories []Category, ref Date) MonthlyStats {
	monthExpenses := ExpensesInMonth(expenses, ref)

	var total Money
	sums := make(map[string]int64)
	var order []string
	for _, e := range monthExpenses {
		total = total.Add(e.Amount)
		name := ResolveCategoryName(categories, e.CategoryID)
		if _, seen := sums[name]; !seen {
			order = append(order, name)
		}
		sums[name] += e.Amount.Cents
	}

	byCategory := make([]CategoryBreakdown, 0, len(order))
	for _, name := range order {
		entry := CategoryBreakdown{
			Name:  name,
			Value: Money{Cents: sums[name]},
			Color: unknownCategoryColor,
		}
		if cat, ok := findCategoryByName(categories, name); ok {
			entry.Color = cat.Color
			entry.Budget = cat.Budget
		}
		byCategory = append(byCategory, entry)
	}
	sort.SliceStable(byCategory, func(i, j int) bool {
		return byCategory[i].Value.Cents > byCategory[j].Value.Cents
	})

	return MonthlyStats{Total: total, ByCategory: byCategory}
}

// DailyAverage divides the monthly total by a fixed 30 days.
func DailyAverage(total Money) Money {
	return Money{Cents: total.Cents / daysPerMonth}
}
