package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eligibility-engine/domain"
)

func TestClamp(t *testing.T) {
	v := NewInputBoundsValidator(newTestCatalog(t))

	tests := []struct {
		name        string
		raw         decimal.Decimal
		want        int64
		wantClamped bool
	}{
		{"below minimum", d(100), 500_000, true},
		{"negative", d(-5), 500_000, true},
		{"above maximum", d(250_000_000), 100_000_000, true},
		{"at minimum", d(500_000), 500_000, false},
		{"at maximum", d(100_000_000), 100_000_000, false},
		{"on step grid", d(1_250_000), 1_250_000, false},
		{"snapped down to step", d(1_299_999), 1_250_000, false},
		{"fraction snapped down", decimal.RequireFromString("549999.99"), 500_000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.Clamp("business-loan", tt.raw)
			require.NoError(t, err)
			assert.True(t, got.Value.Equal(d(tt.want)), "value = %s", got.Value)
			assert.Equal(t, tt.wantClamped, got.WasClamped)
		})
	}
}

func TestClamp_UnknownProduct(t *testing.T) {
	v := NewInputBoundsValidator(newTestCatalog(t))

	_, err := v.Clamp("turnoverProduct", d(100))
	assert.ErrorIs(t, err, domain.ErrUnknownProduct)
}

func TestClamp_ResultStaysInRange(t *testing.T) {
	v := NewInputBoundsValidator(newTestCatalog(t))

	for raw := int64(0); raw <= 12_000_000; raw += 7_777 {
		got, err := v.Clamp("pos-finance", d(raw))
		require.NoError(t, err)
		assert.True(t, got.Value.GreaterThanOrEqual(d(100_000)))
		assert.True(t, got.Value.LessThanOrEqual(d(10_000_000)))
		assert.True(t, got.Value.LessThanOrEqual(d(raw)) || got.WasClamped)
	}
}
