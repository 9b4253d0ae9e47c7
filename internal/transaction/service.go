package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pennywise/internal/category"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error)
	ListTransactions(ctx context.Context) ([]*Transaction, error)
}

// IDFunc produces a unique identifier for a new transaction.
type IDFunc func() uuid.UUID

type Service struct {
	repo  Repository
	newID IDFunc
}

// NewService creates a transaction service. newID may be nil, in which
// case random UUIDs are used.
func NewService(repo Repository, newID IDFunc) *Service {
	if newID == nil {
		newID = uuid.New
	}

	return &Service{repo: repo, newID: newID}
}

type CreateParams struct {
	Amount            int64
	Type              Type
	Category          string
	Description       string
	Date              time.Time
	Recurring         bool
	RecurringInterval category.Interval
	PaymentMethod     category.PaymentMethod
}

// Validate checks the creation preconditions. Violations surface here,
// at the boundary, so aggregation code only ever sees well-formed
// records.
func (p CreateParams) Validate() error {
	if p.Amount < 0 {
		return ErrInvalidAmount
	}

	if !p.Type.Valid() {
		return ErrInvalidType
	}

	switch p.Type {
	case TypeIncome:
		if !category.IsIncome(p.Category) {
			return ErrInvalidCategory
		}
	case TypeExpense:
		if !category.IsExpense(p.Category) {
			return ErrInvalidCategory
		}
	}

	if p.PaymentMethod != "" && !p.PaymentMethod.Valid() {
		return ErrInvalidPaymentMethod
	}

	if p.Recurring && !p.RecurringInterval.Valid() {
		return ErrInvalidInterval
	}

	if !p.Recurring && p.RecurringInterval != "" {
		return ErrInvalidInterval
	}

	if p.Date.IsZero() {
		return ErrInvalidDate
	}

	return nil
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	tx := &Transaction{
		ID:                s.newID(),
		Amount:            params.Amount,
		Type:              params.Type,
		Category:          params.Category,
		Description:       params.Description,
		Date:              params.Date,
		Recurring:         params.Recurring,
		RecurringInterval: params.RecurringInterval,
		PaymentMethod:     params.PaymentMethod,
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

// CreateBatch validates every entry before creating any of them, so one
// bad row rejects the whole batch instead of recording half of it.
func (s *Service) CreateBatch(ctx context.Context, params []CreateParams) ([]*Transaction, error) {
	if len(params) == 0 {
		return nil, nil
	}

	for i, p := range params {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
	}

	txs := make([]*Transaction, 0, len(params))

	for _, p := range params {
		tx, err := s.Create(ctx, p)
		if err != nil {
			return nil, err
		}

		txs = append(txs, tx)
	}

	return txs, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, id)
}

// List returns a snapshot of all recorded transactions in insertion order.
func (s *Service) List(ctx context.Context) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx)
}
