package repository

import (
	"fmt"

	"eligibility-engine/domain"
)

// CatalogMemory is an in-memory implementation of CatalogRepository.
// It is built once at startup and never mutated, so concurrent reads need
// no locking.
type CatalogMemory struct {
	policies     []domain.BankPolicy
	policyIndex  map[string]int
	products     []domain.ProductRange
	productIndex map[string]int
}

// NewCatalogMemory validates the given entries and builds the catalog.
// Declaration order is kept for listing.
func NewCatalogMemory(
	policies []domain.BankPolicy,
	products []domain.ProductRange,
) (*CatalogMemory, error) {
	c := &CatalogMemory{
		policies:     make([]domain.BankPolicy, 0, len(policies)),
		policyIndex:  make(map[string]int, len(policies)),
		products:     make([]domain.ProductRange, 0, len(products)),
		productIndex: make(map[string]int, len(products)),
	}

	for _, p := range policies {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.policyIndex[p.ID]; dup {
			return nil, fmt.Errorf("duplicate bank policy %q", p.ID)
		}
		c.policyIndex[p.ID] = len(c.policies)
		c.policies = append(c.policies, p)
	}

	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.productIndex[p.ProductID]; dup {
			return nil, fmt.Errorf("duplicate product %q", p.ProductID)
		}
		if p.DefaultBankID != "" {
			if _, ok := c.policyIndex[p.DefaultBankID]; !ok {
				return nil, fmt.Errorf("product %q: default bank: %w", p.ProductID,
					&domain.UnknownBankError{BankID: p.DefaultBankID})
			}
		}
		c.productIndex[p.ProductID] = len(c.products)
		c.products = append(c.products, p)
	}

	return c, nil
}

// GetPolicy returns the policy registered under bankID.
func (c *CatalogMemory) GetPolicy(bankID string) (domain.BankPolicy, error) {
	i, ok := c.policyIndex[bankID]
	if !ok {
		return domain.BankPolicy{}, &domain.UnknownBankError{BankID: bankID}
	}
	return c.policies[i], nil
}

// ListPolicies returns the policies in declaration order.
func (c *CatalogMemory) ListPolicies() []domain.BankPolicy {
	out := make([]domain.BankPolicy, len(c.policies))
	copy(out, c.policies)
	return out
}

func (c *CatalogMemory) GetProduct(productID string) (domain.ProductRange, error) {
	i, ok := c.productIndex[productID]
	if !ok {
		return domain.ProductRange{}, &domain.UnknownProductError{ProductID: productID}
	}
	return c.products[i], nil
}

func (c *CatalogMemory) ListProducts() []domain.ProductRange {
	out := make([]domain.ProductRange, len(c.products))
	copy(out, c.products)
	return out
}
