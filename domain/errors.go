package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownBank     = errors.New("unknown bank")
	ErrUnknownProduct  = errors.New("unknown product")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrPolicyMismatch  = errors.New("bank policy does not apply to product")
	ErrInvalidCurrency = errors.New("invalid currency code")
	ErrInvalidLocale   = errors.New("invalid locale")
)

// UnknownBankError is returned when a bank id is not in the catalog. An
// empty BankID means a bank was required but none was given.
type UnknownBankError struct {
	BankID string
}

func (e *UnknownBankError) Error() string {
	if e.BankID == "" {
		return "bank id is required"
	}
	return fmt.Sprintf("unknown bank %q", e.BankID)
}

func (e *UnknownBankError) Is(target error) bool { return target == ErrUnknownBank }

type UnknownProductError struct {
	ProductID string
}

func (e *UnknownProductError) Error() string {
	return fmt.Sprintf("unknown product %q", e.ProductID)
}

func (e *UnknownProductError) Is(target error) bool { return target == ErrUnknownProduct }

type InvalidAmountError struct {
	Reason string
}

func (e *InvalidAmountError) Error() string {
	return "invalid amount: " + e.Reason
}

func (e *InvalidAmountError) Is(target error) bool { return target == ErrInvalidAmount }

// PolicyMismatchError is returned when the selected bank's policy variant
// cannot drive the product's formula.
type PolicyMismatchError struct {
	BankID    string
	ProductID string
}

func (e *PolicyMismatchError) Error() string {
	return fmt.Sprintf("bank %q has no policy for product %q", e.BankID, e.ProductID)
}

func (e *PolicyMismatchError) Is(target error) bool { return target == ErrPolicyMismatch }
