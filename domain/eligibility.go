package domain

import "github.com/shopspring/decimal"

// CapSource tells which bound produced an estimate.
type CapSource string

const (
	CapSourceGlobal CapSource = "global"
	CapSourceBank   CapSource = "bank"
	CapSourceNone   CapSource = "none"
)

type EligibilityRequest struct {
	ProductID   string
	InputAmount decimal.Decimal
	BankID      string // optional
}

type EligibilityResult struct {
	RawAmount    decimal.Decimal `json:"rawAmount"`
	CappedAmount decimal.Decimal `json:"cappedAmount"`
	CapSource    CapSource       `json:"capSource"`
	BankID       string          `json:"bankId,omitempty"`
}

type ClampResult struct {
	Value      decimal.Decimal
	WasClamped bool
}
