package engine

import "testing"

func TestParsePersonality(t *testing.T) {
	tests := []struct {
		value    string
		expected Personality
		ok       bool
	}{
		{"nice", PersonalityNice, true},
		{"Funny", PersonalityFunny, true},
		{"irony", PersonalityIrony, true},
		{"sarcastic", PersonalityIrony, true},
		{"SARCASTIC", PersonalityIrony, true},
		{"grumpy", "", false},
		{"", "", false},
	}

	for _, tc := range tests {
		got, ok := ParsePersonality(tc.value)
		if ok != tc.ok || got != tc.expected {
			t.Fatalf("%q: expected (%q, %v), got (%q, %v)", tc.value, tc.expected, tc.ok, got, ok)
		}
	}
}

func TestParseLanguage(t *testing.T) {
	if got, ok := ParseLanguage("FR"); !ok || got != LanguageFR {
		t.Fatalf("expected fr, got (%q, %v)", got, ok)
	}
	if _, ok := ParseLanguage("de"); ok {
		t.Fatalf("unsupported language must not parse")
	}
}

func TestStyleNormalizedClampsUnknowns(t *testing.T) {
	defaults := Style{Personality: PersonalityNice, Language: LanguageEN, PreferredCurrency: CurrencyEUR}

	got := Style{Personality: "grumpy", Language: "de", PreferredCurrency: "XBT"}.normalized(defaults)
	if got != defaults {
		t.Fatalf("expected clamp to defaults, got %+v", got)
	}

	got = Style{Personality: "sarcastic", Language: "fr", PreferredCurrency: "usd"}.normalized(defaults)
	want := Style{Personality: PersonalityIrony, Language: LanguageFR, PreferredCurrency: CurrencyUSD}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}
