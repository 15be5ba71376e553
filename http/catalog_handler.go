package http

import (
	"encoding/json"
	"net/http"

	"eligibility-engine/domain"
	"eligibility-engine/service"
)

type bankPolicyView struct {
	ID          string      `json:"id"`
	DisplayName string      `json:"displayName"`
	MaxLimit    json.Number `json:"maxLimit"`
}

type productRangeView struct {
	ID            string             `json:"id"`
	DisplayName   string             `json:"displayName"`
	Formula       domain.FormulaKind `json:"formula"`
	MinInput      json.Number        `json:"minInput"`
	MaxInput      json.Number        `json:"maxInput"`
	Step          json.Number        `json:"step"`
	GlobalCeiling json.Number        `json:"globalCeiling,omitempty"`
	DefaultBankID string             `json:"defaultBankId,omitempty"`
}

type CatalogHandler struct {
	service *service.EligibilityService
}

func NewCatalogHandler(svc *service.EligibilityService) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

func (h *CatalogHandler) ListBanks(w http.ResponseWriter, r *http.Request) {
	policies := h.service.ListBankPolicies()

	out := make([]bankPolicyView, 0, len(policies))
	for _, p := range policies {
		out = append(out, bankPolicyView{
			ID:          p.ID,
			DisplayName: p.DisplayName,
			MaxLimit:    jsonAmount(p.MaxLimit),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products := h.service.ListProductRanges()

	out := make([]productRangeView, 0, len(products))
	for _, p := range products {
		view := productRangeView{
			ID:            p.ProductID,
			DisplayName:   p.DisplayName,
			Formula:       p.Formula,
			MinInput:      jsonAmount(p.MinInput),
			MaxInput:      jsonAmount(p.MaxInput),
			Step:          jsonAmount(p.Step),
			DefaultBankID: p.DefaultBankID,
		}
		if p.HasCeiling() {
			view.GlobalCeiling = jsonAmount(p.GlobalCeiling)
		}
		out = append(out, view)
	}
	writeJSON(w, http.StatusOK, out)
}
