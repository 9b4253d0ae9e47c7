// Package export writes a filtered transaction view out as CSV.
package export

import (
	"context"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"pennywise/internal/dashboard"
	"pennywise/internal/money"
	"pennywise/internal/report"
	"pennywise/internal/transaction"
)

// row mirrors the import format plus the record id, so exports can be
// re-imported elsewhere.
type row struct {
	ID                string `csv:"id"`
	Date              string `csv:"date"`
	Amount            string `csv:"amount"`
	Type              string `csv:"type"`
	Category          string `csv:"category"`
	Description       string `csv:"description"`
	PaymentMethod     string `csv:"payment_method"`
	Recurring         string `csv:"recurring"`
	RecurringInterval string `csv:"recurring_interval"`
}

type Service struct {
	dashboards *dashboard.Service
}

func NewService(dashSvc *dashboard.Service) *Service {
	return &Service{dashboards: dashSvc}
}

// WriteCSV writes the transactions matching the filter to w and returns
// how many were written.
func (s *Service) WriteCSV(ctx context.Context, f report.FilterSpec, w io.Writer) (int, error) {
	txs, err := s.dashboards.Filtered(ctx, f)
	if err != nil {
		return 0, fmt.Errorf("filtering transactions: %w", err)
	}

	rows := make([]row, len(txs))
	for i, tx := range txs {
		rows[i] = toRow(tx)
	}

	if err := gocsv.Marshal(&rows, w); err != nil {
		return 0, fmt.Errorf("writing csv: %w", err)
	}

	return len(rows), nil
}

func toRow(tx *transaction.Transaction) row {
	r := row{
		ID:            tx.ID.String(),
		Date:          tx.Date.Format("2006-01-02"),
		Amount:        money.FormatCents(tx.Amount),
		Type:          string(tx.Type),
		Category:      tx.Category,
		Description:   tx.Description,
		PaymentMethod: string(tx.PaymentMethod),
	}

	if tx.Recurring {
		r.Recurring = "true"
		r.RecurringInterval = string(tx.RecurringInterval)
	}

	return r
}
