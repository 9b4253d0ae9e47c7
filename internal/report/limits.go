package report

import (
	"pennywise/internal/limit"
	"pennywise/internal/transaction"
)

// Exceeded reports one category whose spending went over its limit.
// Amounts are in cents.
type Exceeded struct {
	Category string
	Spent    int64
	Limit    int64
}

// CheckLimits compares expense spending per category against the
// configured limits and returns every limit that was strictly exceeded;
// spending exactly at the limit does not count. Results follow the
// order of the limits input. When a category appears more than once in
// limits, only its first entry is considered.
func CheckLimits(txs []*transaction.Transaction, limits []limit.Limit) []Exceeded {
	seen := make(map[string]struct{}, len(limits))

	var exceeded []Exceeded

	for _, l := range limits {
		if _, ok := seen[l.Category]; ok {
			continue
		}

		seen[l.Category] = struct{}{}

		var spent int64

		for _, tx := range txs {
			if tx.Type == transaction.TypeExpense && tx.Category == l.Category {
				spent += tx.Amount
			}
		}

		if spent > l.Limit {
			exceeded = append(exceeded, Exceeded{
				Category: l.Category,
				Spent:    spent,
				Limit:    l.Limit,
			})
		}
	}

	return exceeded
}
