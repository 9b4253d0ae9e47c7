package report

import (
	"slices"

	"pennywise/internal/transaction"
)

// Recent returns up to n transactions sorted by date descending. The
// sort is stable, so same-day transactions keep their input order.
// n <= 0 yields an empty result.
func Recent(txs []*transaction.Transaction, n int) []*transaction.Transaction {
	if n <= 0 {
		return nil
	}

	sorted := slices.Clone(txs)
	slices.SortStableFunc(sorted, func(a, b *transaction.Transaction) int {
		return b.Date.Compare(a.Date)
	})

	if len(sorted) > n {
		sorted = sorted[:n:n]
	}

	return sorted
}
