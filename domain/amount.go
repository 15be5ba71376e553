package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// AmountFromFloat converts a UI-supplied number into an exact decimal.
// NaN and infinities are rejected; sign is left for the caller to check.
func AmountFromFloat(v float64) (decimal.Decimal, error) {
	if math.IsNaN(v) {
		return decimal.Decimal{}, &InvalidAmountError{Reason: "not a number"}
	}
	if math.IsInf(v, 0) {
		return decimal.Decimal{}, &InvalidAmountError{Reason: "not finite"}
	}
	return decimal.NewFromFloat(v), nil
}

// RequireNonNegative returns an InvalidAmountError for amounts below zero.
func RequireNonNegative(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return &InvalidAmountError{Reason: "must not be negative"}
	}
	return nil
}
