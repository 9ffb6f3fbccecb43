package engine

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount extraction tries three patterns in strict priority order and stops
// at the first hit, even when the text holds several candidates. That is a
// deliberate simplification carried over from the product: "I spent $50 on
// 3 items" extracts 50 USD, never 3.
var (
	symbolPrefixPattern = regexp.MustCompile(`([$€£¥])(\d+(?:[.,]\d+)?)`)
	symbolSuffixPattern = regexp.MustCompile(`(\d+(?:[.,]\d+)?)([$€£¥])`)
	currencyWordPattern = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(dollars?|euros?|pounds?|usd|eur|gbp|jpy)\b`)
	bareNumberPattern   = regexp.MustCompile(`\d+(?:[.,]\d+)?`)
)

var symbolCurrencies = map[string]Currency{
	"$": CurrencyUSD,
	"€": CurrencyEUR,
	"£": CurrencyGBP,
	"¥": CurrencyJPY,
}

// Extract finds a monetary amount and currency in free text. A bare number
// without any currency marker is assigned the preferred currency. Returns
// false when no usable amount is present; it never fails loudly.
func Extract(text string, preferred Currency) (Money, bool) {
	if match := symbolPrefixPattern.FindStringSubmatch(text); match != nil {
		return makeMoney(match[2], symbolCurrencies[match[1]])
	}

	if match := symbolSuffixPattern.FindStringSubmatch(text); match != nil {
		return makeMoney(match[1], symbolCurrencies[match[2]])
	}

	if match := currencyWordPattern.FindStringSubmatch(text); match != nil {
		return makeMoney(match[1], currencyFromWord(match[2]))
	}

	if match := bareNumberPattern.FindString(text); match != "" {
		return makeMoney(match, preferred)
	}

	return Money{}, false
}

func makeMoney(raw string, currency Currency) (Money, bool) {
	// The product accepts both decimal separators; normalize before parsing.
	normalized := strings.ReplaceAll(raw, ",", ".")
	amount, err := decimal.NewFromString(normalized)
	if err != nil || !amount.IsPositive() {
		return Money{}, false
	}

	return Money{Amount: amount, Currency: currency}, true
}

func currencyFromWord(word string) Currency {
	switch strings.ToLower(word) {
	case "dollar", "dollars", "usd":
		return CurrencyUSD
	case "pound", "pounds", "gbp":
		return CurrencyGBP
	case "jpy":
		return CurrencyJPY
	default:
		return CurrencyEUR
	}
}
