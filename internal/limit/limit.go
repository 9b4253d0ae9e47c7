// Package limit tracks per-category spending thresholds used to flag
// overspending on expense categories.
package limit

import "errors"

var (
	ErrNotFound        = errors.New("limit not found")
	ErrInvalidLimit    = errors.New("limit must not be negative")
	ErrInvalidCategory = errors.New("limits apply to expense categories only")
)

// Limit is the spending threshold for one expense category, in cents.
type Limit struct {
	Category string
	Limit    int64
}

// Defaults returns the starting limit for every expense category.
func Defaults() []Limit {
	return []Limit{
		{Category: "Rent/Mortgage", Limit: 100000},
		{Category: "Groceries", Limit: 40000},
		{Category: "Entertainment", Limit: 20000},
		{Category: "Transportation", Limit: 30000},
		{Category: "Debt Repayment", Limit: 50000},
	}
}

// For returns the threshold for a category. When the slice carries
// duplicate entries for a category, the first one wins.
func For(limits []Limit, category string) (int64, bool) {
	for _, l := range limits {
		if l.Category == category {
			return l.Limit, true
		}
	}

	return 0, false
}

// Exceeds reports whether spending amount cents in the category would go
// over its configured threshold. Categories without a limit never exceed.
func Exceeds(limits []Limit, category string, amount int64) bool {
	threshold, ok := For(limits, category)
	return ok && amount > threshold
}
