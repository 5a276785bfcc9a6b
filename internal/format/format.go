package format

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Anonymized replaces every amount when amounts are hidden
const Anonymized = "****.**"

// Formatter renders amounts for display.
// It is an explicit configuration value; nothing in the analytics engine depends on it.
type Formatter struct {
	CurrencyCode string
	Anonymized   bool
}

// New creates a Formatter
func New(currencyCode string, anonymized bool) Formatter {
	return Formatter{CurrencyCode: currencyCode, Anonymized: anonymized}
}

// currency returns the formatter's currency, never nil
func (f Formatter) currency() *money.Currency {
	// money.New resolves unknown codes to a generic currency
	return money.New(0, f.code()).Currency()
}

func (f Formatter) code() string {
	if f.CurrencyCode == "" {
		return money.USD
	}
	return f.CurrencyCode
}

// Format renders amount in the formatter's currency, e.g. "$1,234.50"
func (f Formatter) Format(amount decimal.Decimal) string {
	if f.Anonymized {
		return Anonymized
	}
	cur := f.currency()
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	if !minor.BigInt().IsInt64() {
		// Beyond the minor-unit range of go-money: plain digits with the currency code
		return amount.StringFixed(int32(cur.Fraction)) + " " + cur.Code
	}
	return cur.Formatter().Format(minor.IntPart())
}

// FormatSigned renders amount with an explicit sign, e.g. "+$200.00"
func (f Formatter) FormatSigned(amount decimal.Decimal) string {
	if f.Anonymized {
		return Anonymized
	}
	if amount.IsPositive() {
		return "+" + f.Format(amount)
	}
	return f.Format(amount)
}

// Symbol returns the currency symbol, e.g. "$"
func (f Formatter) Symbol() string {
	return f.currency().Grapheme
}
