package report

import "pennywise/internal/transaction"

// Summary holds the financial totals of a transaction collection, in
// cents. CategoryTotals covers expense transactions only: the breakdown
// answers "where did money go".
type Summary struct {
	TotalIncome    int64
	TotalExpenses  int64
	Balance        int64
	CategoryTotals map[string]int64
}

// Aggregate reduces the collection into totals, summing in input order.
// An empty input yields a zero summary with an empty, non-nil map.
func Aggregate(txs []*transaction.Transaction) Summary {
	s := Summary{CategoryTotals: make(map[string]int64)}

	for _, tx := range txs {
		switch tx.Type {
		case transaction.TypeIncome:
			s.TotalIncome += tx.Amount
		case transaction.TypeExpense:
			s.TotalExpenses += tx.Amount
			s.CategoryTotals[tx.Category] += tx.Amount
		}
	}

	s.Balance = s.TotalIncome - s.TotalExpenses

	return s
}
