// Package money defines the integer minor-unit amount used by the ledger.
//
// All arithmetic on Amount is exact integer arithmetic. Floating point never
// touches a stored or computed amount; decimal text from users is converted
// with shopspring/decimal at the edge.
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MinorDigits is the number of decimal places in one major unit (paise per rupee).
const MinorDigits = 2

// DefaultSymbol is the display symbol used when none is configured.
const DefaultSymbol = "₹"

var ErrInvalidAmount = errors.New("invalid amount")

// Amount is a signed quantity of minor currency units (e.g. paise).
type Amount int64

// Zero is the zero amount.
const Zero Amount = 0

// FromMinor wraps a raw minor-unit integer.
func FromMinor(units int64) Amount {
	return Amount(units)
}

// Minor returns the raw minor-unit integer.
func (a Amount) Minor() int64 {
	return int64(a)
}

// IsPositive reports whether a > 0.
func (a Amount) IsPositive() bool {
	return a > 0
}

// Abs returns the magnitude of a.
func (a Amount) Abs() Amount {
	if a < 0 {
		return -a
	}
	return a
}

// Sum adds all amounts.
func Sum(amounts []Amount) Amount {
	var total Amount
	for _, a := range amounts {
		total += a
	}
	return total
}

// Parse converts decimal text such as "900", "900.5" or "1,250.75" into minor
// units. Extra precision is rounded half away from zero.
func Parse(s string) (Amount, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	minor := d.Shift(MinorDigits).Round(0)
	if !minor.IsInteger() || minor.Abs().GreaterThan(decimal.NewFromInt(1<<62)) {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidAmount, s)
	}
	return Amount(minor.IntPart()), nil
}

// Decimal returns a as a major-unit decimal (90050 -> 900.50).
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -MinorDigits)
}

// Format renders a with the given currency symbol, e.g. "₹900.50" or "-₹3.00".
func (a Amount) Format(symbol string) string {
	sign := ""
	if a < 0 {
		sign = "-"
	}
	return sign + symbol + a.Abs().Decimal().StringFixed(MinorDigits)
}

// String renders a with DefaultSymbol.
func (a Amount) String() string {
	return a.Format(DefaultSymbol)
}
