// Package report contains the pure computations behind the dashboard:
// filtering a transaction snapshot, totalling it, bucketing expenses
// into a daily trend, checking spending limits and selecting the most
// recent entries. Nothing here holds state or reads the clock; callers
// pass the snapshot and a reference time in.
package report

import (
	"time"

	"pennywise/internal/category"
	"pennywise/internal/transaction"
)

// DateRange narrows transactions relative to a reference time.
type DateRange string

const (
	DateRangeToday DateRange = "today"
	DateRangeWeek  DateRange = "week"
	DateRangeMonth DateRange = "month"
	DateRangeYear  DateRange = "year"
)

// FilterSpec is a set of optional constraints. A zero field means no
// constraint on that dimension; the zero FilterSpec matches everything.
type FilterSpec struct {
	Category      string
	Type          transaction.Type
	PaymentMethod category.PaymentMethod
	DateRange     DateRange
}

// Matches reports whether tx passes every set dimension of the filter.
// now is the reference for date-range classification; callers should
// sample it once per filter pass, not once per transaction, so the week
// cutoff cannot drift mid-pass.
func Matches(tx *transaction.Transaction, f FilterSpec, now time.Time) bool {
	if f.Type != "" && tx.Type != f.Type {
		return false
	}

	if f.Category != "" && tx.Category != f.Category {
		return false
	}

	if f.PaymentMethod != "" && tx.PaymentMethod != f.PaymentMethod {
		return false
	}

	switch f.DateRange {
	case DateRangeToday:
		ty, tm, td := tx.Date.Date()
		ny, nm, nd := now.Date()

		if ty != ny || tm != nm || td != nd {
			return false
		}
	case DateRangeWeek:
		// Inclusive boundary, compared as instants.
		if tx.Date.Before(now.AddDate(0, 0, -7)) {
			return false
		}
	case DateRangeMonth:
		if tx.Date.Month() != now.Month() || tx.Date.Year() != now.Year() {
			return false
		}
	case DateRangeYear:
		if tx.Date.Year() != now.Year() {
			return false
		}
	}
	// Unrecognized range values impose no constraint.

	return true
}

// Apply returns the transactions matching the filter, in input order.
func Apply(txs []*transaction.Transaction, f FilterSpec, now time.Time) []*transaction.Transaction {
	matched := make([]*transaction.Transaction, 0, len(txs))

	for _, tx := range txs {
		if Matches(tx, f, now) {
			matched = append(matched, tx)
		}
	}

	return matched
}
