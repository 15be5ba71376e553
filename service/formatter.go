package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"eligibility-engine/domain"
)

// maxFormattableAmount is the largest whole amount the formatter accepts.
var maxFormattableAmount = decimal.NewFromInt(math.MaxInt64)

// AmountFormatter renders whole-unit amounts as "<ISO code> <grouped digits>".
// The output carries no bidi control marks, so it reads the same inside LTR
// and RTL text.
type AmountFormatter struct {
	defaultLocale language.Tag
}

func NewAmountFormatter(defaultLocale string) (*AmountFormatter, error) {
	if defaultLocale == "" {
		defaultLocale = DefaultLocale
	}
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("invalid default locale %q: %w", defaultLocale, err)
	}
	return &AmountFormatter{defaultLocale: tag}, nil
}

// Format renders amount in currencyCode for locale. An empty locale uses the
// formatter's default. Fractions are floored away. Amounts above
// math.MaxInt64 are rejected as invalid.
func (f *AmountFormatter) Format(
	amount decimal.Decimal,
	currencyCode string,
	locale string,
) (string, error) {
	if err := domain.RequireNonNegative(amount); err != nil {
		return "", err
	}
	whole := amount.Floor()
	if whole.GreaterThan(maxFormattableAmount) {
		return "", &domain.InvalidAmountError{Reason: "too large to format"}
	}

	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(currencyCode)))
	if err != nil {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidCurrency, currencyCode)
	}

	tag := f.defaultLocale
	if locale != "" {
		if tag, err = language.Parse(locale); err != nil {
			return "", fmt.Errorf("%w %q: %v", domain.ErrInvalidLocale, locale, err)
		}
	}

	p := message.NewPrinter(tag)
	digits := p.Sprintf("%v", number.Decimal(whole.IntPart(), number.MaxFractionDigits(0)))

	return unit.String() + " " + stripBidiMarks(digits), nil
}

func stripBidiMarks(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\u200e', r == '\u200f', r == '\u061c':
			return -1
		case r >= '\u202a' && r <= '\u202e':
			return -1
		case r >= '\u2066' && r <= '\u2069':
			return -1
		}
		return r
	}, s)
}
