package transaction

import (
	"time"

	"github.com/google/uuid"

	"pennywise/internal/money"
	"pennywise/internal/transaction"
)

type transactionResponse struct {
	ID                uuid.UUID        `json:"id"`
	Amount            string           `json:"amount"`
	Type              transaction.Type `json:"type"`
	Category          string           `json:"category"`
	Description       string           `json:"description"`
	Date              string           `json:"date"`
	Recurring         bool             `json:"recurring,omitempty"`
	RecurringInterval string           `json:"recurring_interval,omitempty"`
	PaymentMethod     string           `json:"payment_method,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:                tx.ID,
		Amount:            money.FormatCents(tx.Amount),
		Type:              tx.Type,
		Category:          tx.Category,
		Description:       tx.Description,
		Date:              tx.Date.Format(time.DateOnly),
		Recurring:         tx.Recurring,
		RecurringInterval: string(tx.RecurringInterval),
		PaymentMethod:     string(tx.PaymentMethod),
		CreatedAt:         tx.CreatedAt,
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
