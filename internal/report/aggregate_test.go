package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pennywise/internal/report"
	"pennywise/internal/transaction"
)

func TestAggregate(t *testing.T) {
	t.Run("IncomeAndExpense", func(t *testing.T) {
		txs := []*transaction.Transaction{
			income("Salary", 300000, date(2024, time.March, 1)),
			expense("Rent/Mortgage", 80000, date(2024, time.March, 2)),
		}

		got := report.Aggregate(txs)

		assert.Equal(t, int64(300000), got.TotalIncome)
		assert.Equal(t, int64(80000), got.TotalExpenses)
		assert.Equal(t, int64(220000), got.Balance)
		assert.Equal(t, map[string]int64{"Rent/Mortgage": 80000}, got.CategoryTotals)
	})

	t.Run("Empty", func(t *testing.T) {
		got := report.Aggregate(nil)

		assert.Equal(t, report.Summary{CategoryTotals: map[string]int64{}}, got)
		assert.NotNil(t, got.CategoryTotals)
	})

	t.Run("IncomeCategoriesExcludedFromBreakdown", func(t *testing.T) {
		txs := []*transaction.Transaction{
			income("Salary", 100, date(2024, time.March, 1)),
			income("Freelance Earnings", 200, date(2024, time.March, 1)),
		}

		got := report.Aggregate(txs)

		assert.Empty(t, got.CategoryTotals)
		assert.Equal(t, int64(300), got.TotalIncome)
	})

	t.Run("SameCategorySums", func(t *testing.T) {
		txs := []*transaction.Transaction{
			expense("Groceries", 20000, date(2024, time.March, 3)),
			expense("Groceries", 5000, date(2024, time.March, 7)),
			expense("Entertainment", 15000, date(2024, time.March, 5)),
		}

		got := report.Aggregate(txs)

		assert.Equal(t, map[string]int64{
			"Groceries":     25000,
			"Entertainment": 15000,
		}, got.CategoryTotals)
	})

	t.Run("NegativeBalance", func(t *testing.T) {
		txs := []*transaction.Transaction{
			income("Salary", 100, date(2024, time.March, 1)),
			expense("Groceries", 300, date(2024, time.March, 2)),
		}

		assert.Equal(t, int64(-200), report.Aggregate(txs).Balance)
	})

	t.Run("BalanceIdentityHolds", func(t *testing.T) {
		txs := []*transaction.Transaction{
			income("Salary", 12345, date(2024, time.January, 1)),
			expense("Groceries", 678, date(2024, time.January, 2)),
			income("Investments", 90, date(2024, time.January, 3)),
			expense("Transportation", 1500, date(2024, time.January, 4)),
		}

		got := report.Aggregate(txs)
		assert.Equal(t, got.TotalIncome-got.TotalExpenses, got.Balance)
		assert.GreaterOrEqual(t, got.TotalIncome, int64(0))
		assert.GreaterOrEqual(t, got.TotalExpenses, int64(0))
	})

	t.Run("PureOverRepeatedCalls", func(t *testing.T) {
		txs := []*transaction.Transaction{
			income("Salary", 300000, date(2024, time.March, 1)),
			expense("Groceries", 45000, date(2024, time.March, 3)),
		}

		assert.Equal(t, report.Aggregate(txs), report.Aggregate(txs))
	})
}
