package engine

import "testing"

func TestParseRemoteReplyFencedBlock(t *testing.T) {
	raw := "Here you go:\n```json\n{\"response\": \"Recorded it.\", \"financialData\": {\"type\": \"reasonable\", \"amount\": 60, \"category\": \"groceries\", \"budget_allocation\": true}}\n```"

	outcome := parseRemoteReply(raw)
	if !outcome.Parsed {
		t.Fatalf("expected fenced payload to parse")
	}
	if outcome.Text != "Recorded it." {
		t.Fatalf("expected response text from payload, got %q", outcome.Text)
	}
	if outcome.Data == nil || outcome.Data.Type != ClassificationReasonable || outcome.Data.Amount != 60 {
		t.Fatalf("unexpected payload: %+v", outcome.Data)
	}
}

func TestParseRemoteReplyBraceDelimited(t *testing.T) {
	raw := `Think twice about that. {"response": "That looks like an impulse buy.", "financialData": {"type": "impulse", "amount": 100, "category": "shoes", "potential_value_1yr": 108, "potential_value_5yr": 146.93}}`

	outcome := parseRemoteReply(raw)
	if !outcome.Parsed {
		t.Fatalf("expected brace-delimited payload to parse")
	}
	if outcome.Data == nil || outcome.Data.Category != "shoes" {
		t.Fatalf("unexpected payload: %+v", outcome.Data)
	}
	if outcome.Data.PotentialValue1Yr == nil || *outcome.Data.PotentialValue1Yr != 108 {
		t.Fatalf("expected 1yr projection 108, got %+v", outcome.Data.PotentialValue1Yr)
	}
}

func TestParseRemoteReplySingleQuoteSalvage(t *testing.T) {
	raw := `{'response': 'Noted.', 'financialData': {'type': 'impulse', 'amount': 45, 'category': 'clothing'}}`

	outcome := parseRemoteReply(raw)
	if !outcome.Parsed {
		t.Fatalf("expected single-quote payload to salvage")
	}
	if outcome.Data == nil || outcome.Data.Amount != 45 {
		t.Fatalf("unexpected payload: %+v", outcome.Data)
	}
	if outcome.Text != "Noted." {
		t.Fatalf("expected salvaged response text, got %q", outcome.Text)
	}
}

func TestParseRemoteReplyPlainText(t *testing.T) {
	outcome := parseRemoteReply("Happy to help! What are you thinking of buying?")
	if outcome.Parsed {
		t.Fatalf("plain text must not count as parsed")
	}
	if outcome.Data != nil {
		t.Fatalf("expected no payload, got %+v", outcome.Data)
	}
	if outcome.Text != "Happy to help! What are you thinking of buying?" {
		t.Fatalf("free text must survive untouched, got %q", outcome.Text)
	}
}

func TestParseRemoteReplyPayloadWithoutFinancialData(t *testing.T) {
	raw := "```json\n{\"response\": \"Just saying hi!\"}\n```"

	outcome := parseRemoteReply(raw)
	if !outcome.Parsed {
		t.Fatalf("expected payload to parse")
	}
	if outcome.Data != nil {
		t.Fatalf("expected absent financial data, got %+v", outcome.Data)
	}
	if outcome.Text != "Just saying hi!" {
		t.Fatalf("unexpected text: %q", outcome.Text)
	}
}

func TestParseRemoteReplyMalformedJSON(t *testing.T) {
	raw := `prose {"financialData": {"type": "impulse", "amount": } broken`

	outcome := parseRemoteReply(raw)
	if outcome.Parsed {
		t.Fatalf("broken JSON must not parse")
	}
	if outcome.Text == "" {
		t.Fatalf("original text must be preserved on parse failure")
	}
}

func TestFinancialDataValidation(t *testing.T) {
	one := 108.0
	five := 146.93
	shrunk := 90.0

	valid := &FinancialData{Type: ClassificationImpulse, Amount: 100, Category: "shoes", PotentialValue1Yr: &one}
	if !valid.Valid() {
		t.Fatalf("expected payload to validate")
	}

	growing := &FinancialData{Type: ClassificationImpulse, Amount: 100, Category: "shoes",
		PotentialValue1Yr: &one, PotentialValue5Yr: &five}
	if !growing.Valid() {
		t.Fatalf("expected growing projections to validate")
	}

	tests := []*FinancialData{
		nil,
		{Type: "maybe", Amount: 100, Category: "shoes"},
		{Type: ClassificationImpulse, Amount: 0, Category: "shoes"},
		{Type: ClassificationImpulse, Amount: -5, Category: "shoes"},
		{Type: ClassificationReasonable, Amount: 100, Category: "  "},
		{Type: ClassificationImpulse, Amount: 100, Category: "shoes",
			PotentialValue1Yr: &one, PotentialValue5Yr: &shrunk},
	}
	for i, tc := range tests {
		if tc.Valid() {
			t.Fatalf("case %d: expected payload to fail validation: %+v", i, tc)
		}
	}
}
