package rates

import (
	"testing"

	"github.com/shopspring/decimal"

	"example.com/mindfulwealth/backend/internal/engine"
)

func TestConvertThroughUSDBase(t *testing.T) {
	amount := decimal.NewFromInt(85)

	got, ok := Convert(amount, engine.CurrencyEUR, engine.CurrencyUSD)
	if !ok {
		t.Fatalf("expected conversion to succeed")
	}
	if got.StringFixed(2) != "100.00" {
		t.Fatalf("expected 100.00 USD, got %s", got)
	}
}

func TestConvertSameCurrency(t *testing.T) {
	amount := decimal.RequireFromString("49.999")

	got, ok := Convert(amount, engine.CurrencyGBP, engine.CurrencyGBP)
	if !ok {
		t.Fatalf("expected conversion to succeed")
	}
	if got.StringFixed(2) != "50.00" {
		t.Fatalf("expected rounded identity, got %s", got)
	}
}

func TestConvertUnsupportedCurrency(t *testing.T) {
	if _, ok := Convert(decimal.NewFromInt(10), engine.Currency("XBT"), engine.CurrencyUSD); ok {
		t.Fatalf("unsupported currency must not convert")
	}
}
