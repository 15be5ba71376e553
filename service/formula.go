package service

import (
	"github.com/shopspring/decimal"

	"eligibility-engine/domain"
)

// Formula turns an input amount into an estimate for one product. policy is
// nil when no bank applies.
type Formula interface {
	Estimate(
		input decimal.Decimal,
		product domain.ProductRange,
		policy *domain.BankPolicy,
	) (domain.EligibilityResult, error)
}

// DefaultFormulas returns the built-in strategies keyed by kind.
func DefaultFormulas() map[domain.FormulaKind]Formula {
	return map[domain.FormulaKind]Formula{
		domain.FormulaTurnoverDivisor: TurnoverDivisorFormula{},
		domain.FormulaAdvanceRate:     AdvanceRateFormula{},
	}
}

// TurnoverDivisorFormula estimates input / divisor, bounded by the product's
// global ceiling. A turnover-divisor bank policy overrides the product's
// divisor and tags the result; any other bank takes no part.
type TurnoverDivisorFormula struct{}

func (TurnoverDivisorFormula) Estimate(
	input decimal.Decimal,
	product domain.ProductRange,
	policy *domain.BankPolicy,
) (domain.EligibilityResult, error) {
	divisor := product.TurnoverDivisor
	applied := policy != nil && policy.Variant() == domain.FormulaTurnoverDivisor
	if applied {
		divisor = policy.TurnoverDivisor
	}

	// Integer quotient truncates, which for non-negative input is a floor.
	raw, _ := input.QuoRem(divisor, 0)

	result := capAt(raw, product.GlobalCeiling, domain.CapSourceGlobal)
	if applied {
		result.BankID = policy.ID
	}
	return result, nil
}

// AdvanceRateFormula estimates input * advance rate, bounded by the bank cap
// and, when the product declares one, its global ceiling.
type AdvanceRateFormula struct{}

func (AdvanceRateFormula) Estimate(
	input decimal.Decimal,
	product domain.ProductRange,
	policy *domain.BankPolicy,
) (domain.EligibilityResult, error) {
	if policy == nil {
		return domain.EligibilityResult{}, &domain.UnknownBankError{}
	}
	if policy.Variant() != domain.FormulaAdvanceRate {
		return domain.EligibilityResult{}, &domain.PolicyMismatchError{
			BankID:    policy.ID,
			ProductID: product.ProductID,
		}
	}

	raw := input.Mul(policy.AdvanceRate).Floor()

	result := capAt(raw, policy.MaxLimit, domain.CapSourceBank)
	if ceiling := product.GlobalCeiling.Floor(); product.HasCeiling() && result.CappedAmount.GreaterThan(ceiling) {
		result.CappedAmount = ceiling
		result.CapSource = domain.CapSourceGlobal
	}
	result.BankID = policy.ID
	return result, nil
}

// capAt bounds raw by limit. The limit is floored so a binding cap never
// yields a fractional estimate.
func capAt(raw, limit decimal.Decimal, source domain.CapSource) domain.EligibilityResult {
	limit = limit.Floor()
	if raw.GreaterThan(limit) {
		return domain.EligibilityResult{
			RawAmount:    raw,
			CappedAmount: limit,
			CapSource:    source,
		}
	}
	return domain.EligibilityResult{
		RawAmount:    raw,
		CappedAmount: raw,
		CapSource:    domain.CapSourceNone,
	}
}
