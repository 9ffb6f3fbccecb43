package engine

import "testing"

func TestExtractSymbolPrefixWinsOverCount(t *testing.T) {
	money, ok := Extract("I spent $50 on 3 items", CurrencyEUR)
	if !ok {
		t.Fatalf("expected extraction to succeed")
	}
	if money.Currency != CurrencyUSD {
		t.Fatalf("expected USD, got %s", money.Currency)
	}
	if money.Amount.String() != "50" {
		t.Fatalf("expected amount 50, got %s", money.Amount)
	}
}

func TestExtractSymbolSuffix(t *testing.T) {
	money, ok := Extract("dropped 25€ on coffee", CurrencyUSD)
	if !ok {
		t.Fatalf("expected extraction to succeed")
	}
	if money.Currency != CurrencyEUR {
		t.Fatalf("expected EUR, got %s", money.Currency)
	}
	if money.Amount.String() != "25" {
		t.Fatalf("expected amount 25, got %s", money.Amount)
	}
}

func TestExtractCurrencyWords(t *testing.T) {
	tests := []struct {
		text     string
		amount   string
		currency Currency
	}{
		{"I paid 30 dollars for it", "30", CurrencyUSD},
		{"around 45 euros last week", "45", CurrencyEUR},
		{"it cost 12 pounds", "12", CurrencyGBP},
		{"quoted 900 JPY per unit", "900", CurrencyJPY},
	}

	for _, tc := range tests {
		money, ok := Extract(tc.text, CurrencyEUR)
		if !ok {
			t.Fatalf("%q: expected extraction to succeed", tc.text)
		}
		if money.Currency != tc.currency {
			t.Fatalf("%q: expected %s, got %s", tc.text, tc.currency, money.Currency)
		}
		if money.Amount.String() != tc.amount {
			t.Fatalf("%q: expected %s, got %s", tc.text, tc.amount, money.Amount)
		}
	}
}

func TestExtractBareNumberUsesPreferredCurrency(t *testing.T) {
	money, ok := Extract("I spent 100 on shoes", CurrencyGBP)
	if !ok {
		t.Fatalf("expected extraction to succeed")
	}
	if money.Currency != CurrencyGBP {
		t.Fatalf("expected preferred GBP, got %s", money.Currency)
	}
	if money.Amount.String() != "100" {
		t.Fatalf("expected amount 100, got %s", money.Amount)
	}
}

func TestExtractCommaDecimalSeparator(t *testing.T) {
	money, ok := Extract("coffee machine for 89,99€", CurrencyUSD)
	if !ok {
		t.Fatalf("expected extraction to succeed")
	}
	if money.Amount.String() != "89.99" {
		t.Fatalf("expected 89.99, got %s", money.Amount)
	}
	if money.Currency != CurrencyEUR {
		t.Fatalf("expected EUR, got %s", money.Currency)
	}
}

func TestExtractFirstMatchOnly(t *testing.T) {
	money, ok := Extract("torn between $20 and $200", CurrencyEUR)
	if !ok {
		t.Fatalf("expected extraction to succeed")
	}
	if money.Amount.String() != "20" {
		t.Fatalf("expected first match 20, got %s", money.Amount)
	}
}

func TestExtractNoAmount(t *testing.T) {
	if _, ok := Extract("hello there, how are you?", CurrencyEUR); ok {
		t.Fatalf("expected extraction to fail on non-financial text")
	}
}

func TestExtractRejectsZero(t *testing.T) {
	if _, ok := Extract("it was 0 euros somehow", CurrencyEUR); ok {
		t.Fatalf("expected zero amount to be rejected")
	}
}
