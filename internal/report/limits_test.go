package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pennywise/internal/limit"
	"pennywise/internal/report"
	"pennywise/internal/transaction"
)

func TestCheckLimits(t *testing.T) {
	groceries := []limit.Limit{{Category: "Groceries", Limit: 40000}}

	t.Run("OverLimitIsReported", func(t *testing.T) {
		txs := []*transaction.Transaction{
			expense("Groceries", 45000, date(2024, time.March, 3)),
		}

		got := report.CheckLimits(txs, groceries)

		require.Len(t, got, 1)
		assert.Equal(t, report.Exceeded{Category: "Groceries", Spent: 45000, Limit: 40000}, got[0])
	})

	t.Run("ExactlyAtLimitIsNotExceeded", func(t *testing.T) {
		txs := []*transaction.Transaction{
			expense("Groceries", 40000, date(2024, time.March, 3)),
		}

		assert.Empty(t, report.CheckLimits(txs, groceries))
	})

	t.Run("SpendSumsAcrossTransactions", func(t *testing.T) {
		txs := []*transaction.Transaction{
			expense("Groceries", 25000, date(2024, time.March, 3)),
			expense("Groceries", 20000, date(2024, time.March, 10)),
		}

		got := report.CheckLimits(txs, groceries)

		require.Len(t, got, 1)
		assert.Equal(t, int64(45000), got[0].Spent)
	})

	t.Run("IncomeDoesNotCountAsSpend", func(t *testing.T) {
		// An income record cannot carry an expense category past the
		// boundary validation, but the checker must not rely on that.
		txs := []*transaction.Transaction{
			income("Groceries", 99999, date(2024, time.March, 3)),
		}

		assert.Empty(t, report.CheckLimits(txs, groceries))
	})

	t.Run("ResultsFollowLimitsOrder", func(t *testing.T) {
		limits := []limit.Limit{
			{Category: "Entertainment", Limit: 1000},
			{Category: "Groceries", Limit: 2000},
		}
		txs := []*transaction.Transaction{
			expense("Groceries", 5000, date(2024, time.March, 1)),
			expense("Entertainment", 5000, date(2024, time.March, 2)),
		}

		got := report.CheckLimits(txs, limits)

		require.Len(t, got, 2)
		assert.Equal(t, "Entertainment", got[0].Category)
		assert.Equal(t, "Groceries", got[1].Category)
	})

	t.Run("DuplicateLimitEntryIgnored", func(t *testing.T) {
		limits := []limit.Limit{
			{Category: "Groceries", Limit: 40000},
			{Category: "Groceries", Limit: 1},
		}
		txs := []*transaction.Transaction{
			expense("Groceries", 30000, date(2024, time.March, 3)),
		}

		// First entry wins: 30000 <= 40000, so nothing is exceeded even
		// though the duplicate's threshold would trip.
		assert.Empty(t, report.CheckLimits(txs, limits))
	})

	t.Run("NoTransactions", func(t *testing.T) {
		assert.Empty(t, report.CheckLimits(nil, limit.Defaults()))
	})

	t.Run("ZeroLimitExceededByAnySpend", func(t *testing.T) {
		limits := []limit.Limit{{Category: "Entertainment", Limit: 0}}
		txs := []*transaction.Transaction{
			expense("Entertainment", 1, date(2024, time.March, 3)),
		}

		got := report.CheckLimits(txs, limits)

		require.Len(t, got, 1)
		assert.Equal(t, int64(1), got[0].Spent)
	})
}
