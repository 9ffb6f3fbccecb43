package rates

import (
	"github.com/shopspring/decimal"

	"example.com/mindfulwealth/backend/internal/engine"
)

// Static USD-base table. The product ships fixed rates; there is no live
// feed. Conversion is a display concern of the web layer, the engine always
// keeps the currency stated by the user.
var usdRates = map[engine.Currency]decimal.Decimal{
	engine.CurrencyUSD: decimal.RequireFromString("1"),
	engine.CurrencyEUR: decimal.RequireFromString("0.85"),
	engine.CurrencyGBP: decimal.RequireFromString("0.75"),
	engine.CurrencyJPY: decimal.RequireFromString("110"),
}

// Convert moves an amount between two supported currencies through the USD
// base, rounded to two decimal places. Returns false for unsupported codes.
func Convert(amount decimal.Decimal, from, to engine.Currency) (decimal.Decimal, bool) {
	fromRate, ok := usdRates[from]
	if !ok {
		return decimal.Decimal{}, false
	}
	toRate, ok := usdRates[to]
	if !ok {
		return decimal.Decimal{}, false
	}

	if from == to {
		return amount.Round(2), true
	}

	return amount.Div(fromRate).Mul(toRate).Round(2), true
}
