package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ProductRange is the allowed input range of a financing product together
// with the formula and parameters that turn an input into an estimate.
//
// GlobalCeiling is required for turnover-divisor products and optional for
// advance-rate products, where zero means no ceiling beyond the bank cap.
type ProductRange struct {
	ProductID       string
	DisplayName     string
	Formula         FormulaKind
	MinInput        decimal.Decimal
	MaxInput        decimal.Decimal
	Step            decimal.Decimal
	GlobalCeiling   decimal.Decimal
	TurnoverDivisor decimal.Decimal
	DefaultBankID   string
}

// HasCeiling reports whether the product declares a global ceiling.
func (p ProductRange) HasCeiling() bool {
	return p.GlobalCeiling.IsPositive()
}

// Validate checks the range invariants. Whether DefaultBankID exists is
// checked by the catalog, which knows the registered banks.
func (p ProductRange) Validate() error {
	if p.ProductID == "" {
		return fmt.Errorf("product: id is required")
	}
	if !p.Formula.Valid() {
		return fmt.Errorf("product %q: unknown formula %q", p.ProductID, p.Formula)
	}
	if p.MinInput.IsNegative() {
		return fmt.Errorf("product %q: min_input must not be negative", p.ProductID)
	}
	if !p.MinInput.LessThan(p.MaxInput) {
		return fmt.Errorf("product %q: min_input must be less than max_input", p.ProductID)
	}
	if !p.Step.IsPositive() {
		return fmt.Errorf("product %q: step must be positive", p.ProductID)
	}
	if p.GlobalCeiling.IsNegative() {
		return fmt.Errorf("product %q: global_ceiling must not be negative", p.ProductID)
	}
	if !p.GlobalCeiling.IsInteger() {
		return fmt.Errorf("product %q: global_ceiling must be a whole amount", p.ProductID)
	}

	if p.Formula == FormulaTurnoverDivisor {
		if !p.TurnoverDivisor.IsPositive() {
			return fmt.Errorf("product %q: turnover_divisor must be positive", p.ProductID)
		}
		if !p.HasCeiling() {
			return fmt.Errorf("product %q: global_ceiling is required for %s", p.ProductID, p.Formula)
		}
	}
	return nil
}
