package http

import (
	"encoding/json"
	"net/http"

	"eligibility-engine/domain"
	"eligibility-engine/i18n"
	"eligibility-engine/service"
)

type clampRequest struct {
	ProductID string   `json:"productId"`
	Value     *float64 `json:"value"`
}

type clampResponse struct {
	Value      json.Number `json:"value"`
	WasClamped bool        `json:"wasClamped"`
}

type calculateRequest struct {
	ProductID   string   `json:"productId"`
	InputAmount *float64 `json:"inputAmount"`
	BankID      string   `json:"bankId,omitempty"`
}

type calculateResponse struct {
	RawAmount    json.Number      `json:"rawAmount"`
	CappedAmount json.Number      `json:"cappedAmount"`
	CapSource    domain.CapSource `json:"capSource"`
	BankID       string           `json:"bankId,omitempty"`
	Label        string           `json:"label,omitempty"`
	Formatted    string           `json:"formatted"`
}

type EligibilityHandler struct {
	service   *service.EligibilityService
	validator *service.InputBoundsValidator
	formatter *service.AmountFormatter
	tr        *i18n.Translator
	currency  string
}

func NewEligibilityHandler(
	svc *service.EligibilityService,
	validator *service.InputBoundsValidator,
	formatter *service.AmountFormatter,
	tr *i18n.Translator,
	currency string,
) *EligibilityHandler {
	if currency == "" {
		currency = service.DefaultCurrency
	}
	return &EligibilityHandler{
		service:   svc,
		validator: validator,
		formatter: formatter,
		tr:        tr,
		currency:  currency,
	}
}

func (h *EligibilityHandler) Clamp(w http.ResponseWriter, r *http.Request) {
	var input clampRequest
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, h.tr, err)
		return
	}

	raw, err := amountParam(input.Value)
	if err != nil {
		writeError(w, r, h.tr, err)
		return
	}

	result, err := h.validator.Clamp(input.ProductID, raw)
	if err != nil {
		writeError(w, r, h.tr, err)
		return
	}

	writeJSON(w, http.StatusOK, clampResponse{
		Value:      jsonAmount(result.Value),
		WasClamped: result.WasClamped,
	})
}

func (h *EligibilityHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var input calculateRequest
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, h.tr, err)
		return
	}

	amount, err := amountParam(input.InputAmount)
	if err != nil {
		writeError(w, r, h.tr, err)
		return
	}

	result, err := h.service.CalculateEligibility(domain.EligibilityRequest{
		ProductID:   input.ProductID,
		InputAmount: amount,
		BankID:      input.BankID,
	})
	if err != nil {
		writeError(w, r, h.tr, err)
		return
	}

	lang, label := "", ""
	if h.tr != nil {
		lang = h.tr.Match(r.Header.Get("Accept-Language"))
		label = h.tr.T(lang, "estimate.label")
	}

	formatted, err := h.formatter.Format(result.CappedAmount, h.currency, lang)
	if err != nil {
		writeError(w, r, h.tr, err)
		return
	}

	writeJSON(w, http.StatusOK, calculateResponse{
		RawAmount:    jsonAmount(result.RawAmount),
		CappedAmount: jsonAmount(result.CappedAmount),
		CapSource:    result.CapSource,
		BankID:       result.BankID,
		Label:        label,
		Formatted:    formatted,
	})
}
