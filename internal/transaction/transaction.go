package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"pennywise/internal/category"
)

// Type represents the direction of a transaction (income or expense).
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

var (
	ErrNotFound             = errors.New("transaction not found")
	ErrInvalidAmount        = errors.New("amount must not be negative")
	ErrInvalidType          = errors.New("type must be income or expense")
	ErrInvalidCategory      = errors.New("category does not match transaction type")
	ErrInvalidPaymentMethod = errors.New("unknown payment method")
	ErrInvalidInterval      = errors.New("unknown recurring interval")
	ErrInvalidDate          = errors.New("invalid date")
)

// Transaction represents a single recorded income or expense event.
// Records are immutable once created; the amount is always non-negative
// and direction is carried by Type alone.
type Transaction struct {
	ID                uuid.UUID
	Amount            int64 // Amount in cents
	Type              Type
	Category          string
	Description       string
	Date              time.Time
	Recurring         bool
	RecurringInterval category.Interval // set only when Recurring
	PaymentMethod     category.PaymentMethod
	CreatedAt         time.Time
}
