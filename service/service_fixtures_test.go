package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"eligibility-engine/domain"
	"eligibility-engine/repository"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func newTestCatalog(t *testing.T) *repository.CatalogMemory {
	t.Helper()

	policies := []domain.BankPolicy{
		{ID: "enbd", DisplayName: "Emirates NBD", MaxLimit: d(1_000_000), AdvanceRate: decimal.RequireFromString("0.8")},
		{ID: "mashreq", DisplayName: "Mashreq", MaxLimit: d(5_000_000), AdvanceRate: decimal.RequireFromString("0.8")},
		{ID: "divisor-bank", DisplayName: "Divisor Bank", MaxLimit: d(2_000_000), TurnoverDivisor: d(10)},
	}
	products := []domain.ProductRange{
		{
			ProductID:       "business-loan",
			Formula:         domain.FormulaTurnoverDivisor,
			MinInput:        d(500_000),
			MaxInput:        d(100_000_000),
			Step:            d(50_000),
			GlobalCeiling:   d(3_000_000),
			TurnoverDivisor: d(8),
		},
		{
			ProductID: "pos-finance",
			Formula:   domain.FormulaAdvanceRate,
			MinInput:  d(100_000),
			MaxInput:  d(10_000_000),
			Step:      d(10_000),
		},
		{
			ProductID:     "pos-finance-capped",
			Formula:       domain.FormulaAdvanceRate,
			MinInput:      d(100_000),
			MaxInput:      d(10_000_000),
			Step:          d(10_000),
			GlobalCeiling: d(2_000_000),
			DefaultBankID: "mashreq",
		},
	}

	c, err := repository.NewCatalogMemory(policies, products)
	require.NoError(t, err)
	return c
}

type countingCache struct {
	*repository.MemoryCache
	gets, sets int
}

func (c *countingCache) Get(key string) (string, bool) {
	c.gets++
	return c.MemoryCache.Get(key)
}

func (c *countingCache) Set(key, value string) error {
	c.sets++
	return c.MemoryCache.Set(key, value)
}

type recordingMetrics struct {
	estimates map[domain.CapSource]int
	hits      int
	misses    int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{estimates: map[domain.CapSource]int{}}
}

func (m *recordingMetrics) ObserveEstimate(_ string, source domain.CapSource) {
	m.estimates[source]++
}

func (m *recordingMetrics) ObserveCacheLookup(hit bool) {
	if hit {
		m.hits++
		return
	}
	m.misses++
}
