package service

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"eligibility-engine/domain"
	"eligibility-engine/repository"
)

// EstimateRecorder receives one observation per calculated estimate.
type EstimateRecorder interface {
	ObserveEstimate(productID string, capSource domain.CapSource)
	ObserveCacheLookup(hit bool)
}

type noopRecorder struct{}

func (noopRecorder) ObserveEstimate(string, domain.CapSource) {}
func (noopRecorder) ObserveCacheLookup(bool)                  {}

// EligibilityService applies a product's formula and the selected bank's
// policy to produce an estimate.
type EligibilityService struct {
	catalog  repository.CatalogRepository
	cache    repository.CacheRepository
	metrics  EstimateRecorder
	formulas map[domain.FormulaKind]Formula
}

// NewEligibilityService creates a new EligibilityService. cache and metrics
// may be nil.
func NewEligibilityService(
	catalog repository.CatalogRepository,
	cache repository.CacheRepository,
	metrics EstimateRecorder,
) *EligibilityService {
	if metrics == nil {
		metrics = noopRecorder{}
	}
	return &EligibilityService{
		catalog:  catalog,
		cache:    cache,
		metrics:  metrics,
		formulas: DefaultFormulas(),
	}
}

// CalculateEligibility computes the estimate for req. The input is expected
// to have been clamped into the product's range already.
func (s *EligibilityService) CalculateEligibility(
	req domain.EligibilityRequest,
) (domain.EligibilityResult, error) {

	if err := domain.RequireNonNegative(req.InputAmount); err != nil {
		return domain.EligibilityResult{}, err
	}

	// An explicit bank is resolved first so a bad bank id is reported even
	// when the product is unknown too.
	var policy *domain.BankPolicy
	if req.BankID != "" {
		p, err := s.catalog.GetPolicy(req.BankID)
		if err != nil {
			return domain.EligibilityResult{}, err
		}
		policy = &p
	}

	product, err := s.catalog.GetProduct(req.ProductID)
	if err != nil {
		return domain.EligibilityResult{}, err
	}

	if policy == nil && product.DefaultBankID != "" {
		p, err := s.catalog.GetPolicy(product.DefaultBankID)
		if err != nil {
			return domain.EligibilityResult{}, err
		}
		policy = &p
	}

	bankID := ""
	if policy != nil {
		bankID = policy.ID
	}

	key := cacheKey(product.ProductID, bankID, req.InputAmount)
	if result, ok := s.cached(key); ok {
		s.metrics.ObserveEstimate(product.ProductID, result.CapSource)
		return result, nil
	}

	formula, ok := s.formulas[product.Formula]
	if !ok {
		return domain.EligibilityResult{}, fmt.Errorf("product %q: no formula registered for %q", product.ProductID, product.Formula)
	}

	result, err := formula.Estimate(req.InputAmount, product, policy)
	if err != nil {
		return domain.EligibilityResult{}, err
	}

	s.metrics.ObserveEstimate(product.ProductID, result.CapSource)
	s.store(key, result)

	return result, nil
}

// ListBankPolicies returns the financing partners in catalog order.
func (s *EligibilityService) ListBankPolicies() []domain.BankPolicy {
	return s.catalog.ListPolicies()
}

// ListProductRanges returns the products in catalog order.
func (s *EligibilityService) ListProductRanges() []domain.ProductRange {
	return s.catalog.ListProducts()
}

func cacheKey(productID, bankID string, input decimal.Decimal) string {
	return fmt.Sprintf("%s:%s:%s:%s", cacheKeyPrefix, productID, bankID, input.String())
}

func (s *EligibilityService) cached(key string) (domain.EligibilityResult, bool) {
	if s.cache == nil {
		return domain.EligibilityResult{}, false
	}

	raw, ok := s.cache.Get(key)
	s.metrics.ObserveCacheLookup(ok)
	if !ok {
		return domain.EligibilityResult{}, false
	}

	var result domain.EligibilityResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		slog.Warn("discarding corrupt cached estimate", "key", key, "error", err)
		return domain.EligibilityResult{}, false
	}
	return result, true
}

// store is best effort; a cache failure never fails a calculation.
func (s *EligibilityService) store(key string, result domain.EligibilityResult) {
	if s.cache == nil {
		return
	}

	payload, err := json.Marshal(result)
	if err != nil {
		slog.Warn("failed to encode estimate for cache", "key", key, "error", err)
		return
	}
	if err := s.cache.Set(key, string(payload)); err != nil {
		slog.Warn("failed to cache estimate", "key", key, "error", err)
	}
}
