package transaction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pennywise/internal/category"
	"pennywise/internal/transaction"
)

func TestService_Create(t *testing.T) {
	date := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	type testCase struct {
		name      string
		params    transaction.CreateParams
		setupMock func(m *transaction.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			params: transaction.CreateParams{
				Amount:        80000,
				Type:          transaction.TypeExpense,
				Category:      "Rent/Mortgage",
				Description:   "Monthly Rent",
				Date:          date,
				PaymentMethod: category.PaymentBankTransfer,
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
						tx.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name: "RecurringWithInterval",
			params: transaction.CreateParams{
				Amount:            300000,
				Type:              transaction.TypeIncome,
				Category:          "Salary",
				Date:              date,
				Recurring:         true,
				RecurringInterval: category.IntervalMonthly,
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "NegativeAmount",
			params: transaction.CreateParams{
				Amount:   -100,
				Type:     transaction.TypeExpense,
				Category: "Groceries",
				Date:     date,
			},
			wantErr: transaction.ErrInvalidAmount,
		},
		{
			name: "UnknownType",
			params: transaction.CreateParams{
				Amount:   100,
				Type:     "transfer",
				Category: "Groceries",
				Date:     date,
			},
			wantErr: transaction.ErrInvalidType,
		},
		{
			name: "IncomeCategoryOnExpense",
			params: transaction.CreateParams{
				Amount:   100,
				Type:     transaction.TypeExpense,
				Category: "Salary",
				Date:     date,
			},
			wantErr: transaction.ErrInvalidCategory,
		},
		{
			name: "EmptyCategory",
			params: transaction.CreateParams{
				Amount: 100,
				Type:   transaction.TypeIncome,
				Date:   date,
			},
			wantErr: transaction.ErrInvalidCategory,
		},
		{
			name: "UnknownPaymentMethod",
			params: transaction.CreateParams{
				Amount:        100,
				Type:          transaction.TypeExpense,
				Category:      "Groceries",
				Date:          date,
				PaymentMethod: "Barter",
			},
			wantErr: transaction.ErrInvalidPaymentMethod,
		},
		{
			name: "RecurringWithoutInterval",
			params: transaction.CreateParams{
				Amount:    100,
				Type:      transaction.TypeExpense,
				Category:  "Groceries",
				Date:      date,
				Recurring: true,
			},
			wantErr: transaction.ErrInvalidInterval,
		},
		{
			name: "IntervalWithoutRecurring",
			params: transaction.CreateParams{
				Amount:            100,
				Type:              transaction.TypeExpense,
				Category:          "Groceries",
				Date:              date,
				RecurringInterval: category.IntervalWeekly,
			},
			wantErr: transaction.ErrInvalidInterval,
		},
		{
			name: "ZeroDate",
			params: transaction.CreateParams{
				Amount:   100,
				Type:     transaction.TypeExpense,
				Category: "Groceries",
			},
			wantErr: transaction.ErrInvalidDate,
		},
		{
			name: "RepoError",
			params: transaction.CreateParams{
				Amount:   100,
				Type:     transaction.TypeExpense,
				Category: "Groceries",
				Date:     date,
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					Return(errors.New("store error"))
			},
			wantErr: errors.New("store error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := transaction.NewService(repo, nil)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.NotEqual(t, uuid.Nil, got.ID)
			assert.Equal(t, tt.params.Amount, got.Amount)
			assert.Equal(t, tt.params.Category, got.Category)
		})
	}
}

func TestService_Create_UsesInjectedID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	want := uuid.New()
	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)

	svc := transaction.NewService(repo, func() uuid.UUID { return want })
	got, err := svc.Create(context.Background(), transaction.CreateParams{
		Amount:   100,
		Type:     transaction.TypeExpense,
		Category: "Groceries",
		Date:     time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, want, got.ID)
}

func TestService_CreateBatch(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := transaction.NewService(transaction.NewMockRepository(ctrl), nil)
		txs, err := svc.CreateBatch(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, txs)
	})

	t.Run("AllValid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := transaction.NewMockRepository(ctrl)
		repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		svc := transaction.NewService(repo, nil)
		txs, err := svc.CreateBatch(context.Background(), []transaction.CreateParams{
			{Amount: 300000, Type: transaction.TypeIncome, Category: "Salary", Date: date},
			{Amount: 20000, Type: transaction.TypeExpense, Category: "Groceries", Date: date},
		})

		require.NoError(t, err)
		assert.Len(t, txs, 2)
	})

	t.Run("BadRowRejectsBatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// No CreateTransaction call expected: the batch fails validation first.
		repo := transaction.NewMockRepository(ctrl)

		svc := transaction.NewService(repo, nil)
		txs, err := svc.CreateBatch(context.Background(), []transaction.CreateParams{
			{Amount: 300000, Type: transaction.TypeIncome, Category: "Salary", Date: date},
			{Amount: -1, Type: transaction.TypeExpense, Category: "Groceries", Date: date},
		})

		assert.ErrorIs(t, err, transaction.ErrInvalidAmount)
		assert.ErrorContains(t, err, "entry 2")
		assert.Nil(t, txs)
	})
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		ListTransactions(gomock.Any()).
		Return([]*transaction.Transaction{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	svc := transaction.NewService(repo, nil)
	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
}
