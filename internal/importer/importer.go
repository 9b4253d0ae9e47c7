// Package importer parses CSV files into transaction create parameters
// for bulk recording.
package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"pennywise/internal/category"
	"pennywise/internal/encoding"
	"pennywise/internal/money"
	"pennywise/internal/transaction"
)

// Row is one line of the import format. Amount is a decimal string;
// recurring columns and payment_method may be left blank.
type Row struct {
	Date              string `csv:"date"`
	Amount            string `csv:"amount"`
	Type              string `csv:"type"`
	Category          string `csv:"category"`
	Description       string `csv:"description"`
	PaymentMethod     string `csv:"payment_method"`
	Recurring         string `csv:"recurring"`
	RecurringInterval string `csv:"recurring_interval"`
}

// Date formats accepted on import, tried in order.
var dateFormats = []string{
	time.DateOnly,
	"02.01.2006",
	"02/01/2006",
	"2 Jan 2006",
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Parse reads a CSV file and converts every row. The input is
// normalized to UTF-8 first. A malformed row fails the whole parse with
// its line position; nothing is partially converted.
func (s *Service) Parse(r io.Reader) ([]transaction.CreateParams, error) {
	utf8r, err := encoding.Normalize(r)
	if err != nil {
		return nil, fmt.Errorf("normalizing input: %w", err)
	}

	var rows []Row
	if err := gocsv.Unmarshal(utf8r, &rows); err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}

	params := make([]transaction.CreateParams, 0, len(rows))

	for i, row := range rows {
		p, err := convertRow(row)
		if err != nil {
			// Row 1 is the header line.
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}

		params = append(params, p)
	}

	return params, nil
}

func convertRow(row Row) (transaction.CreateParams, error) {
	date, err := parseDate(row.Date)
	if err != nil {
		return transaction.CreateParams{}, err
	}

	cents, err := money.ParseCents(row.Amount)
	if err != nil {
		return transaction.CreateParams{}, fmt.Errorf("%w: %q", err, row.Amount)
	}

	recurring := false
	if v := strings.TrimSpace(row.Recurring); v != "" {
		recurring, err = strconv.ParseBool(v)
		if err != nil {
			return transaction.CreateParams{}, fmt.Errorf("invalid recurring flag %q", row.Recurring)
		}
	}

	return transaction.CreateParams{
		Amount:            cents,
		Type:              transaction.Type(strings.TrimSpace(strings.ToLower(row.Type))),
		Category:          strings.TrimSpace(row.Category),
		Description:       strings.TrimSpace(row.Description),
		Date:              date,
		Recurring:         recurring,
		RecurringInterval: category.Interval(strings.TrimSpace(strings.ToLower(row.RecurringInterval))),
		PaymentMethod:     category.PaymentMethod(strings.TrimSpace(row.PaymentMethod)),
	}, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", transaction.ErrInvalidDate, s)
}
