package core

import (
	"fmt"
	"time"
)

// TrendWindow is the fixed number of months in the rolling spending chart.
const TrendWindow = 6

// TrendPoint is one month of the rolling trend series.
type TrendPoint struct {
	Label     string `json:"label"`     // short month name, e.g. "Mar"
	FullLabel string `json:"fullLabel"` // e.g. "March 2024"
	Total     Money  `json:"total"`
	Anchor    Date   `json:"anchor"` // first day of the point's month
	Current   bool   `json:"isCurrent"`
}

// ComputeTrend derives the 6-month rolling window ending at the month of
// ref: the 5 preceding calendar months followed by the reference month.
// Each point's total is summed independently over the full expense
// collection; exactly one point is flagged current.
func ComputeTrend(expenses []Expense, ref Date) []TrendPoint {
	points := make([]TrendPoint, 0, TrendWindow)
	for i := TrendWindow - 1; i >= 0; i-- {
		anchor := Date{Time: time.Date(ref.Year(), time.Month(ref.Month()-i), 1, 0, 0, 0, 0, time.UTC)}

		var total Money
		for _, e := range expenses {
			if e.Date.SameMonth(anchor) {
				total = total.Add(e.Amount)
			}
		}

		name := MonthNames[anchor.Month()-1]
		points = append(points, TrendPoint{
			Label:     name[:3],
			FullLabel: fmt.Sprintf("%s %d", name, anchor.Year()),
			Total:     total,
			Anchor:    anchor,
			Current:   anchor.SameMonth(ref),
		})
	}
	return points
}
