package engine

import "testing"

func TestInferCategory(t *testing.T) {
	tests := []struct {
		text     string
		expected string
	}{
		{"just bought a new phone", "electronics"},
		{"saw this jacket on sale", "clothing"},
		{"new sneakers dropped today", "shoes"},
		{"a watch I've been eyeing", "accessories"},
		{"we need a new sofa", "home"},
		{"concert tickets for saturday", "entertainment"},
		{"dinner at that new restaurant", "dining"},
		{"booked a flight to lisbon", "travel"},
		{"weekly groceries run", "groceries"},
		{"picked up my prescription", "medical"},
		{"paid the rent", "utilities"},
		{"monthly bus pass", "transportation"},
		{"tuition for next semester", "education"},
		{"daycare fees this month", "childcare"},
		{"spent 40 on something", "general"},
	}

	for _, tc := range tests {
		if got := InferCategory(tc.text); got != tc.expected {
			t.Fatalf("%q: expected %q, got %q", tc.text, tc.expected, got)
		}
	}
}

func TestClassifyReasonableCategoryWins(t *testing.T) {
	// Category hit beats the impulse phrase in the text.
	got := Classify("I really want this medicine", "medical")
	if got != ClassificationReasonable {
		t.Fatalf("expected reasonable, got %s", got)
	}
}

func TestClassifyReasonableTermInText(t *testing.T) {
	got := Classify("spent 60 on groceries and snacks", "general")
	if got != ClassificationReasonable {
		t.Fatalf("expected reasonable, got %s", got)
	}
}

func TestClassifyNecessityPhrase(t *testing.T) {
	got := Classify("I have to replace my broken kettle, 30", "general")
	if got != ClassificationReasonable {
		t.Fatalf("expected reasonable, got %s", got)
	}
}

func TestClassifyImpulsePhrase(t *testing.T) {
	got := Classify("tempted to splurge 200 on a designer bag", "accessories")
	if got != ClassificationImpulse {
		t.Fatalf("expected impulse, got %s", got)
	}
}

func TestClassifyDefaultsToImpulse(t *testing.T) {
	got := Classify("spent 100 on shoes", "shoes")
	if got != ClassificationImpulse {
		t.Fatalf("expected ambiguous spend to default to impulse, got %s", got)
	}
}
