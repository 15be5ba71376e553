package http

import (
	"net/http"

	"eligibility-engine/i18n"
	"eligibility-engine/service"
)

type formatRequest struct {
	Amount       *float64 `json:"amount"`
	CurrencyCode string   `json:"currencyCode"`
	Locale       string   `json:"locale"`
}

type formatResponse struct {
	Formatted string `json:"formatted"`
}

type FormatHandler struct {
	formatter *service.AmountFormatter
	tr        *i18n.Translator
	currency  string
}

func NewFormatHandler(formatter *service.AmountFormatter, tr *i18n.Translator, currency string) *FormatHandler {
	if currency == "" {
		currency = service.DefaultCurrency
	}
	return &FormatHandler{formatter: formatter, tr: tr, currency: currency}
}

func (h *FormatHandler) Format(w http.ResponseWriter, r *http.Request) {
	var input formatRequest
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, h.tr, err)
		return
	}

	amount, err := amountParam(input.Amount)
	if err != nil {
		writeError(w, r, h.tr, err)
		return
	}

	code := input.CurrencyCode
	if code == "" {
		code = h.currency
	}

	formatted, err := h.formatter.Format(amount, code, input.Locale)
	if err != nil {
		writeError(w, r, h.tr, err)
		return
	}

	writeJSON(w, http.StatusOK, formatResponse{Formatted: formatted})
}
