package repository

import "eligibility-engine/domain"

// CatalogRepository exposes the read-only bank policies and product ranges.
type CatalogRepository interface {
	GetPolicy(bankID string) (domain.BankPolicy, error)
	ListPolicies() []domain.BankPolicy
	GetProduct(productID string) (domain.ProductRange, error)
	ListProducts() []domain.ProductRange
}
