package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FormulaKind names the estimate formula a product (or bank policy) drives.
type FormulaKind string

const (
	FormulaTurnoverDivisor FormulaKind = "turnover_divisor"
	FormulaAdvanceRate     FormulaKind = "advance_rate"
)

// Valid reports whether k is a known formula.
func (k FormulaKind) Valid() bool {
	return k == FormulaTurnoverDivisor || k == FormulaAdvanceRate
}

// BankPolicy is a financing partner's lending policy. Exactly one of
// AdvanceRate and TurnoverDivisor is set; the other is zero.
type BankPolicy struct {
	ID              string
	DisplayName     string
	MaxLimit        decimal.Decimal
	AdvanceRate     decimal.Decimal
	TurnoverDivisor decimal.Decimal
}

// Variant returns the formula the policy parameterises.
func (p BankPolicy) Variant() FormulaKind {
	if p.AdvanceRate.IsPositive() {
		return FormulaAdvanceRate
	}
	return FormulaTurnoverDivisor
}

// Validate checks the policy invariants.
func (p BankPolicy) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("bank policy: id is required")
	}
	if !p.MaxLimit.IsPositive() {
		return fmt.Errorf("bank policy %q: max_limit must be positive", p.ID)
	}
	if !p.MaxLimit.IsInteger() {
		return fmt.Errorf("bank policy %q: max_limit must be a whole amount", p.ID)
	}

	hasRate := !p.AdvanceRate.IsZero()
	hasDivisor := !p.TurnoverDivisor.IsZero()
	if hasRate == hasDivisor {
		return fmt.Errorf("bank policy %q: exactly one of advance_rate and turnover_divisor must be set", p.ID)
	}
	if hasRate && (!p.AdvanceRate.IsPositive() || p.AdvanceRate.GreaterThan(decimal.NewFromInt(1))) {
		return fmt.Errorf("bank policy %q: advance_rate must be in (0, 1]", p.ID)
	}
	if hasDivisor && !p.TurnoverDivisor.IsPositive() {
		return fmt.Errorf("bank policy %q: turnover_divisor must be positive", p.ID)
	}
	return nil
}
