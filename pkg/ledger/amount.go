// Package ledger defines the in-memory directive model produced by a ledger
// loader: transactions with postings, account lifecycle records, price points
// and the other flat directive kinds. Values are immutable once constructed;
// consumers derive new copies instead of mutating in place.
package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a number paired with a currency, e.g. "520.0 USD".
// decimal.Decimal preserves the scale it was parsed with, so a price read as
// "520.0" renders back as "520.0" and not "520".
type Amount struct {
	Number   decimal.Decimal
	Currency string
}

// NewAmount creates an Amount from a decimal string.
// It panics on an invalid number; use ParseAmount for untrusted input.
func NewAmount(number, currency string) Amount {
	return Amount{Number: decimal.RequireFromString(number), Currency: currency}
}

// ParseAmount parses a "<number> <currency>" string, e.g. "-2939.46 CAD".
func ParseAmount(s string) (Amount, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Amount{}, fmt.Errorf("invalid amount %q: expected \"<number> <currency>\"", s)
	}

	number, err := decimal.NewFromString(fields[0])
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	return Amount{Number: number, Currency: fields[1]}, nil
}

// Neg returns the amount with its sign flipped.
func (a Amount) Neg() Amount {
	return Amount{Number: a.Number.Neg(), Currency: a.Currency}
}

// IsZero reports whether the number is exactly zero.
func (a Amount) IsZero() bool {
	return a.Number.IsZero()
}

// String renders the amount as "<number> <currency>".
func (a Amount) String() string {
	return a.Number.String() + " " + a.Currency
}
