package engine

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
	CurrencyJPY Currency = "JPY"
)

// Money is an extracted amount with its currency. It is never mutated after
// extraction.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency Currency        `json:"currency"`
}

// ParseCurrency maps an ISO code to a supported currency.
func ParseCurrency(value string) (Currency, bool) {
	switch Currency(strings.ToUpper(strings.TrimSpace(value))) {
	case CurrencyEUR:
		return CurrencyEUR, true
	case CurrencyUSD:
		return CurrencyUSD, true
	case CurrencyGBP:
		return CurrencyGBP, true
	case CurrencyJPY:
		return CurrencyJPY, true
	default:
		return "", false
	}
}

// Symbol returns the display symbol for the currency.
func (c Currency) Symbol() string {
	switch c {
	case CurrencyUSD:
		return "$"
	case CurrencyGBP:
		return "£"
	case CurrencyJPY:
		return "¥"
	default:
		return "€"
	}
}
