package service

import (
	"github.com/shopspring/decimal"

	"eligibility-engine/domain"
	"eligibility-engine/repository"
)

// InputBoundsValidator clamps raw slider input into a product's range.
type InputBoundsValidator struct {
	catalog repository.CatalogRepository
}

func NewInputBoundsValidator(catalog repository.CatalogRepository) *InputBoundsValidator {
	return &InputBoundsValidator{catalog: catalog}
}

// Clamp bounds raw to [MinInput, MaxInput]. In-range values are snapped
// down to the step grid anchored at MinInput; snapping does not count as
// clamping.
func (v *InputBoundsValidator) Clamp(
	productID string,
	raw decimal.Decimal,
) (domain.ClampResult, error) {
	product, err := v.catalog.GetProduct(productID)
	if err != nil {
		return domain.ClampResult{}, err
	}

	switch {
	case raw.LessThan(product.MinInput):
		return domain.ClampResult{Value: product.MinInput, WasClamped: true}, nil
	case raw.GreaterThan(product.MaxInput):
		return domain.ClampResult{Value: product.MaxInput, WasClamped: true}, nil
	case raw.Equal(product.MaxInput):
		return domain.ClampResult{Value: product.MaxInput}, nil
	}

	steps, _ := raw.Sub(product.MinInput).QuoRem(product.Step, 0)
	snapped := product.MinInput.Add(steps.Mul(product.Step))
	return domain.ClampResult{Value: snapped}, nil
}
