package core

// OutstandingTotals derives the running balance per debt direction. Settled
// debts are excluded from both totals regardless of direction.
func OutstandingTotals(debts []Debt) (lent, borrowed Money) {
	for _, d := range debts {
		if d.Settled {
			continue
		}
		switch d.Type {
		case Lent:
			lent = lent.Add(d.Amount)
		case Borrowed:
			borrowed = borrowed.Add(d.Amount)
		}
	}
	return lent, borrowed
}
