// Package quickadd implements the free-text splitter behind the quick-add
// input: "Taxi 300.50" becomes description "Taxi", amount 300.50, and a
// category inferred by substring match.
package quickadd

import (
	"regexp"
	"strings"

	"smartspend/internal/core"
)

// trailingAmount matches a decimal number with up to two fractional digits
// at the end of the input, dot or comma separated.
var trailingAmount = regexp.MustCompile(`(\d+(?:[.,]\d{1,2})?)\s*$`)

// Result is the outcome of parsing one quick-add input string.
type Result struct {
	Description string
	Amount      core.Money
	HasAmount   bool
	CategoryID  string // inferred, empty when no category name matched
}

// Parse splits raw input into description and trailing amount, then infers a
// category whose full name occurs case-insensitively in the description;
// the first category in iteration order wins. Without a trailing number the
// whole input is the description and no inference runs.
//
// Parse is pure and idempotent: it runs on every keystroke, and re-parsing
// the joined "description amount" output yields the same amount.
func Parse(input string, categories []core.Category) Result {
	match := trailingAmount.FindStringSubmatch(input)
	if match == nil {
		return Result{Description: input}
	}

	amount, err := core.ParseMoney(match[1])
	if err != nil {
		// Trailing zeros ("0", "0.00") match the regex but are not a
		// valid amount; treat the input as description-only.
		return Result{Description: input}
	}

	desc := strings.TrimSpace(strings.TrimSuffix(input, match[0]))
	result := Result{
		Description: desc,
		Amount:      amount,
		HasAmount:   true,
	}

	lower := strings.ToLower(desc)
	for _, c := range categories {
		if strings.Contains(lower, strings.ToLower(c.Name)) {
			result.CategoryID = c.ID
			break
		}
	}
	return result
}
