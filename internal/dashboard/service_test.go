package dashboard_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pennywise/internal/category"
	"pennywise/internal/dashboard"
	"pennywise/internal/limit"
	limitStore "pennywise/internal/limit/store"
	"pennywise/internal/report"
	"pennywise/internal/transaction"
	txStore "pennywise/internal/transaction/store"
)

func newFixture(t *testing.T, now time.Time) (*dashboard.Service, *transaction.Service, *limit.Service) {
	t.Helper()

	txSvc := transaction.NewService(txStore.New(), nil)
	limitSvc := limit.NewService(limitStore.New())
	dashSvc := dashboard.NewService(txSvc, limitSvc, func() time.Time { return now })

	return dashSvc, txSvc, limitSvc
}

func seed(t *testing.T, svc *transaction.Service, params ...transaction.CreateParams) {
	t.Helper()

	for _, p := range params {
		_, err := svc.Create(context.Background(), p)
		require.NoError(t, err)
	}
}

func TestService_Overview(t *testing.T) {
	now := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	dashSvc, txSvc, _ := newFixture(t, now)
	ctx := context.Background()

	seed(t, txSvc,
		transaction.CreateParams{
			Amount:        300000,
			Type:          transaction.TypeIncome,
			Category:      "Salary",
			Description:   "Monthly Salary",
			Date:          time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			PaymentMethod: category.PaymentBankTransfer,
		},
		transaction.CreateParams{
			Amount:        80000,
			Type:          transaction.TypeExpense,
			Category:      "Rent/Mortgage",
			Description:   "Monthly Rent",
			Date:          time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC),
			PaymentMethod: category.PaymentBankTransfer,
		},
		transaction.CreateParams{
			Amount:        45000,
			Type:          transaction.TypeExpense,
			Category:      "Groceries",
			Description:   "Weekly Groceries",
			Date:          time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC),
			PaymentMethod: category.PaymentCreditCard,
		},
	)

	got, err := dashSvc.Overview(ctx, report.FilterSpec{}, 5)
	require.NoError(t, err)

	assert.Equal(t, int64(300000), got.Summary.TotalIncome)
	assert.Equal(t, int64(125000), got.Summary.TotalExpenses)
	assert.Equal(t, int64(175000), got.Summary.Balance)
	assert.Equal(t, map[string]int64{
		"Rent/Mortgage": 80000,
		"Groceries":     45000,
	}, got.Summary.CategoryTotals)

	assert.Equal(t, []report.TrendPoint{
		{Label: "Mar 02", Amount: 80000},
		{Label: "Mar 03", Amount: 45000},
	}, got.Trend)

	// Groceries is over its 400.00 default; Rent/Mortgage is under 1000.00.
	require.Len(t, got.Exceeded, 1)
	assert.Equal(t, report.Exceeded{Category: "Groceries", Spent: 45000, Limit: 40000}, got.Exceeded[0])

	require.Len(t, got.Recent, 3)
	assert.Equal(t, "Weekly Groceries", got.Recent[0].Description)
	assert.Equal(t, "Monthly Rent", got.Recent[1].Description)
	assert.Equal(t, "Monthly Salary", got.Recent[2].Description)
}

func TestService_OverviewAppliesFilterBeforeEverything(t *testing.T) {
	now := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	dashSvc, txSvc, _ := newFixture(t, now)

	seed(t, txSvc,
		transaction.CreateParams{
			Amount:   45000,
			Type:     transaction.TypeExpense,
			Category: "Groceries",
			Date:     time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC),
		},
		transaction.CreateParams{
			Amount:   45000,
			Type:     transaction.TypeExpense,
			Category: "Groceries",
			Date:     time.Date(2023, time.December, 20, 0, 0, 0, 0, time.UTC),
		},
	)

	got, err := dashSvc.Overview(context.Background(), report.FilterSpec{DateRange: report.DateRangeYear}, 5)
	require.NoError(t, err)

	// Only the 2024 purchase is in view, so spend stays above the limit
	// by that purchase alone and the trend has a single bucket.
	assert.Equal(t, int64(45000), got.Summary.TotalExpenses)
	require.Len(t, got.Exceeded, 1)
	assert.Equal(t, int64(45000), got.Exceeded[0].Spent)
	assert.Len(t, got.Trend, 1)
	assert.Len(t, got.Recent, 1)
}

func TestService_OverviewEmpty(t *testing.T) {
	dashSvc, _, _ := newFixture(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC))

	got, err := dashSvc.Overview(context.Background(), report.FilterSpec{}, 5)
	require.NoError(t, err)

	assert.Zero(t, got.Summary.TotalIncome)
	assert.Zero(t, got.Summary.TotalExpenses)
	assert.Zero(t, got.Summary.Balance)
	assert.Empty(t, got.Summary.CategoryTotals)
	assert.Empty(t, got.Trend)
	assert.Empty(t, got.Exceeded)
	assert.Empty(t, got.Recent)
}

func TestService_OverviewSeesUpdatedLimit(t *testing.T) {
	now := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	dashSvc, txSvc, limitSvc := newFixture(t, now)
	ctx := context.Background()

	seed(t, txSvc, transaction.CreateParams{
		Amount:   45000,
		Type:     transaction.TypeExpense,
		Category: "Groceries",
		Date:     time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, limitSvc.Update(ctx, "Groceries", 50000))

	got, err := dashSvc.Overview(ctx, report.FilterSpec{}, 5)
	require.NoError(t, err)
	assert.Empty(t, got.Exceeded)
}

func TestService_Filtered(t *testing.T) {
	now := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	dashSvc, txSvc, _ := newFixture(t, now)

	seed(t, txSvc,
		transaction.CreateParams{
			Amount:        100,
			Type:          transaction.TypeExpense,
			Category:      "Groceries",
			Date:          time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC),
			PaymentMethod: category.PaymentCash,
		},
		transaction.CreateParams{
			Amount:        200,
			Type:          transaction.TypeExpense,
			Category:      "Entertainment",
			Date:          time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC),
			PaymentMethod: category.PaymentCreditCard,
		},
	)

	got, err := dashSvc.Filtered(context.Background(), report.FilterSpec{PaymentMethod: category.PaymentCash})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "Groceries", got[0].Category)
}
