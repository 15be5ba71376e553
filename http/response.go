package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"eligibility-engine/domain"
	"eligibility-engine/i18n"
)

const maxRequestBody = 1 << 20 // 1 MiB

var (
	errInvalidRequest = errors.New("invalid request body")
	errRateLimited    = errors.New("rate limit exceeded")
)

type errorResponse struct {
	Error string `json:"error"`
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		slog.Warn("error decoding request body", "path", r.URL.Path, "error", err)
		return errInvalidRequest
	}
	return nil
}

// writeJSON encodes into a buffer first so a failed encode can still
// produce a clean 500.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		slog.Error("error encoding response", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("error writing response", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, tr *i18n.Translator, err error) {
	status, key := classify(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "path", r.URL.Path, "error", err)
	}

	message := err.Error()
	if tr != nil {
		message = tr.T(tr.Match(r.Header.Get("Accept-Language")), key)
	}
	writeJSON(w, status, errorResponse{Error: message})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrUnknownBank):
		return http.StatusNotFound, "errors.unknown_bank"
	case errors.Is(err, domain.ErrUnknownProduct):
		return http.StatusNotFound, "errors.unknown_product"
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, "errors.invalid_amount"
	case errors.Is(err, domain.ErrInvalidCurrency):
		return http.StatusBadRequest, "errors.invalid_currency"
	case errors.Is(err, domain.ErrInvalidLocale):
		return http.StatusBadRequest, "errors.invalid_locale"
	case errors.Is(err, domain.ErrPolicyMismatch):
		return http.StatusBadRequest, "errors.policy_mismatch"
	case errors.Is(err, errInvalidRequest):
		return http.StatusBadRequest, "errors.invalid_request"
	case errors.Is(err, errRateLimited):
		return http.StatusTooManyRequests, "errors.rate_limited"
	default:
		return http.StatusInternalServerError, "errors.internal"
	}
}

// amountParam converts an optional JSON number into a decimal amount.
func amountParam(v *float64) (decimal.Decimal, error) {
	if v == nil {
		return decimal.Decimal{}, &domain.InvalidAmountError{Reason: "missing"}
	}
	return domain.AmountFromFloat(*v)
}

// jsonAmount renders an exact decimal as a bare JSON number.
func jsonAmount(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}
