// Package export renders expense collections as CSV documents.
package export

import (
	"fmt"
	"strings"
	"time"

	"smartspend/internal/core"
)

// DefaultCurrencySymbol is used when no symbol is configured.
const DefaultCurrencySymbol = "₹"

var header = []string{"Date", "Description", "Category", "Amount", "Currency"}

// ExpensesToCSV renders one row per expense under the fixed header.
// Descriptions are always quote-wrapped with internal quotes doubled;
// category references resolve through the Unknown fallback.
func ExpensesToCSV(expenses []core.Expense, categories []core.Category, currencySymbol string) string {
	if currencySymbol == "" {
		currencySymbol = DefaultCurrencySymbol
	}

	var b strings.Builder
	b.WriteString(strings.Join(header, ","))
	b.WriteString("\n")

	for i, e := range expenses {
		if i > 0 {
			b.WriteString("\n")
		}
		desc := `"` + strings.ReplaceAll(e.Description, `"`, `""`) + `"`
		name := core.ResolveCategoryName(categories, e.CategoryID)
		b.WriteString(strings.Join([]string{
			e.Date.String(), desc, name, e.Amount.String(), currencySymbol,
		}, ","))
	}

	return b.String()
}

// DefaultFilename returns the date-stamped export filename used when the
// caller does not supply one.
func DefaultFilename(now time.Time) string {
	return fmt.Sprintf("smartspend_export_%s.csv", now.Format("2006-01-02"))
}

// MonthFilename returns the filename for a single-month export.
func MonthFilename(ref core.Date) string {
	return fmt.Sprintf("smartspend_%s_%d.csv", core.MonthNames[ref.Month()-1], ref.Year())
}
