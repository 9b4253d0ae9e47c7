// Package money converts between display amounts and the cent values
// stored on transactions and limits.
package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

var hundred = decimal.NewFromInt(100)

// ParseCents parses a decimal amount string into cents.
// Examples: "450.50" -> 45050, "3000" -> 300000.
func ParseCents(s string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrInvalidAmount
	}

	return d.Mul(hundred).Round(0).IntPart(), nil
}

// FormatCents formats cents as a fixed two-decimal string.
// Example: 45050 -> "450.50".
func FormatCents(cents int64) string {
	return decimal.NewFromInt(cents).Div(hundred).StringFixed(2)
}
