package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Cents is a monetary amount in integer minor units (cents). All ledger
// arithmetic happens on this type; decimal strings exist only at the wire
// and configuration boundaries.
type Cents int64

// Sentinel errors shared by the parsing functions. Their messages are sent
// verbatim in validation responses.
var (
	ErrNotDecimal      = errors.New("amount must be a decimal number (e.g., '12.34')")
	ErrNotPositive     = errors.New("amount must be positive")
	ErrTooManyDecimals = errors.New("amount must have at most 2 decimal places")
	ErrNegativeBalance = errors.New("balance must not be negative")
)

// ParseAmount parses a request amount string into cents. The amount must be
// a valid decimal, strictly positive, with at most 2 fractional digits.
// "1.230" is rejected the same as "1.234": the digits written are what count.
func ParseAmount(s string) (Cents, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrNotDecimal
	}
	if d.LessThanOrEqual(decimal.Zero) {
		return 0, ErrNotPositive
	}
	if d.Exponent() < -2 {
		return 0, ErrTooManyDecimals
	}
	return Cents(d.Shift(2).IntPart()), nil
}

// ParseBalance parses a seed balance string into cents. Unlike request
// amounts, balances may be zero and carry any precision; values are
// quantized half-up to two places before conversion.
func ParseBalance(s string) (Cents, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotDecimal, s)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: %q", ErrNegativeBalance, s)
	}
	return Cents(d.Round(2).Shift(2).IntPart()), nil
}

// FormatCents renders cents as a canonical two-decimal string, e.g.
// 100550 -> "1005.50". Negative values cannot be produced by the ledger but
// are formatted correctly anyway.
func FormatCents(c Cents) string {
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}
