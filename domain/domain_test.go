package domain

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBankPolicy_Validate(t *testing.T) {
	rate := decimal.RequireFromString("0.8")

	tests := []struct {
		name    string
		policy  BankPolicy
		wantErr bool
	}{
		{"advance rate", BankPolicy{ID: "a", MaxLimit: decimal.NewFromInt(1), AdvanceRate: rate}, false},
		{"divisor", BankPolicy{ID: "a", MaxLimit: decimal.NewFromInt(1), TurnoverDivisor: decimal.NewFromInt(8)}, false},
		{"rate of one", BankPolicy{ID: "a", MaxLimit: decimal.NewFromInt(1), AdvanceRate: decimal.NewFromInt(1)}, false},
		{"missing id", BankPolicy{MaxLimit: decimal.NewFromInt(1), AdvanceRate: rate}, true},
		{"zero limit", BankPolicy{ID: "a", AdvanceRate: rate}, true},
		{"neither parameter", BankPolicy{ID: "a", MaxLimit: decimal.NewFromInt(1)}, true},
		{"both parameters", BankPolicy{ID: "a", MaxLimit: decimal.NewFromInt(1), AdvanceRate: rate, TurnoverDivisor: decimal.NewFromInt(8)}, true},
		{"rate above one", BankPolicy{ID: "a", MaxLimit: decimal.NewFromInt(1), AdvanceRate: decimal.RequireFromString("1.2")}, true},
		{"negative rate", BankPolicy{ID: "a", MaxLimit: decimal.NewFromInt(1), AdvanceRate: decimal.RequireFromString("-0.2")}, true},
		{"fractional limit", BankPolicy{ID: "a", MaxLimit: decimal.RequireFromString("1000000.5"), AdvanceRate: rate}, true},
		{"negative divisor", BankPolicy{ID: "a", MaxLimit: decimal.NewFromInt(1), TurnoverDivisor: decimal.NewFromInt(-8)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBankPolicy_Variant(t *testing.T) {
	assert.Equal(t, FormulaAdvanceRate, BankPolicy{AdvanceRate: decimal.RequireFromString("0.5")}.Variant())
	assert.Equal(t, FormulaTurnoverDivisor, BankPolicy{TurnoverDivisor: decimal.NewFromInt(4)}.Variant())
}

func validProduct() ProductRange {
	return ProductRange{
		ProductID:       "business-loan",
		Formula:         FormulaTurnoverDivisor,
		MinInput:        decimal.NewFromInt(500_000),
		MaxInput:        decimal.NewFromInt(100_000_000),
		Step:            decimal.NewFromInt(50_000),
		GlobalCeiling:   decimal.NewFromInt(3_000_000),
		TurnoverDivisor: decimal.NewFromInt(8),
	}
}

func TestProductRange_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *ProductRange)
		wantErr bool
	}{
		{"valid", func(p *ProductRange) {}, false},
		{"advance rate without ceiling", func(p *ProductRange) {
			p.Formula = FormulaAdvanceRate
			p.GlobalCeiling = decimal.Zero
			p.TurnoverDivisor = decimal.Zero
		}, false},
		{"missing id", func(p *ProductRange) { p.ProductID = "" }, true},
		{"unknown formula", func(p *ProductRange) { p.Formula = "flat" }, true},
		{"min equals max", func(p *ProductRange) { p.MaxInput = p.MinInput }, true},
		{"negative min", func(p *ProductRange) { p.MinInput = decimal.NewFromInt(-1) }, true},
		{"zero step", func(p *ProductRange) { p.Step = decimal.Zero }, true},
		{"turnover without divisor", func(p *ProductRange) { p.TurnoverDivisor = decimal.Zero }, true},
		{"fractional ceiling", func(p *ProductRange) { p.GlobalCeiling = decimal.RequireFromString("3000000.25") }, true},
		{"turnover without ceiling", func(p *ProductRange) { p.GlobalCeiling = decimal.Zero }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProduct()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestErrors_MatchSentinels(t *testing.T) {
	wrapped := fmt.Errorf("calculate: %w", &UnknownBankError{BankID: "x"})
	assert.True(t, errors.Is(wrapped, ErrUnknownBank))
	assert.False(t, errors.Is(wrapped, ErrUnknownProduct))

	assert.ErrorIs(t, &UnknownProductError{ProductID: "x"}, ErrUnknownProduct)
	assert.ErrorIs(t, &InvalidAmountError{Reason: "x"}, ErrInvalidAmount)
	assert.ErrorIs(t, &PolicyMismatchError{BankID: "a", ProductID: "b"}, ErrPolicyMismatch)

	assert.Equal(t, "bank id is required", (&UnknownBankError{}).Error())
	assert.Equal(t, `unknown bank "x"`, (&UnknownBankError{BankID: "x"}).Error())
}

func TestAmountFromFloat(t *testing.T) {
	v, err := AmountFromFloat(5_000_000)
	require.NoError(t, err)
	assert.True(t, v.Equal(decimal.NewFromInt(5_000_000)))

	_, err = AmountFromFloat(math.NaN())
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = AmountFromFloat(math.Inf(1))
	assert.ErrorIs(t, err, ErrInvalidAmount)

	assert.ErrorIs(t, RequireNonNegative(decimal.NewFromInt(-1)), ErrInvalidAmount)
	assert.NoError(t, RequireNonNegative(decimal.Zero))
}
