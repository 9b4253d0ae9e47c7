package report

import (
	"time"

	"pennywise/internal/transaction"
)

// TrendPoint is one day's expense total, labelled "Jan 02".
type TrendPoint struct {
	Label  string
	Amount int64
}

// DailyExpenseTrend buckets expense transactions by calendar day and
// sums each bucket. Points appear in first-occurrence order of the
// input, not chronological order; consumers sort if they need to.
// Bucket keys include the year, so the same month and day in different
// years stay separate points even though their labels render the same.
func DailyExpenseTrend(txs []*transaction.Transaction) []TrendPoint {
	type day struct {
		year  int
		month time.Month
		day   int
	}

	index := make(map[day]int)

	var points []TrendPoint

	for _, tx := range txs {
		if tx.Type != transaction.TypeExpense {
			continue
		}

		y, m, d := tx.Date.Date()
		k := day{year: y, month: m, day: d}

		if i, ok := index[k]; ok {
			points[i].Amount += tx.Amount
			continue
		}

		index[k] = len(points)
		points = append(points, TrendPoint{
			Label:  tx.Date.Format("Jan 02"),
			Amount: tx.Amount,
		})
	}

	return points
}
