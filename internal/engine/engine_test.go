package engine

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"example.com/mindfulwealth/backend/internal/ai"
)

type stubClient struct {
	reply string
	err   error
	calls int
	last  []ai.Message
}

func (s *stubClient) Chat(_ context.Context, messages []ai.Message) (string, []byte, error) {
	s.calls++
	s.last = messages
	if s.err != nil {
		return "", nil, s.err
	}
	return s.reply, nil, nil
}

func testEngine(client ai.Client) *Engine {
	defaults := Style{Personality: PersonalityNice, Language: LanguageEN, PreferredCurrency: CurrencyEUR}
	return New(client, NewComposer(1), slog.New(slog.NewTextHandler(&strings.Builder{}, nil)), 0, defaults)
}

func englishStyle() Style {
	return Style{Personality: PersonalityNice, Language: LanguageEN, PreferredCurrency: CurrencyEUR}
}

func TestAnalyzeImpulsePurchase(t *testing.T) {
	engine := testEngine(nil)

	result, conv := engine.Analyze(context.Background(), "I spent 100 on shoes", nil, Context{}, englishStyle())

	if result.Data == nil {
		t.Fatalf("expected financial data")
	}
	if result.Data.Type != ClassificationImpulse {
		t.Fatalf("expected impulse, got %s", result.Data.Type)
	}
	if result.Data.Amount != 100 || result.Data.Category != "shoes" {
		t.Fatalf("unexpected payload: %+v", result.Data)
	}
	if result.Data.PotentialValue1Yr == nil || *result.Data.PotentialValue1Yr != 108 {
		t.Fatalf("expected 1yr projection 108, got %+v", result.Data.PotentialValue1Yr)
	}
	if result.Data.PotentialValue5Yr == nil || *result.Data.PotentialValue5Yr != 146.93 {
		t.Fatalf("expected 5yr projection 146.93, got %+v", result.Data.PotentialValue5Yr)
	}
	if !strings.HasSuffix(result.ResponseText, "?") {
		t.Fatalf("expected a clarifying question: %s", result.ResponseText)
	}
	if !conv.awaitingClarification() {
		t.Fatalf("context must enter the pending-clarification state")
	}
}

func TestAnalyzeFollowUpConfirmsImpulse(t *testing.T) {
	engine := testEngine(nil)
	style := englishStyle()

	_, conv := engine.Analyze(context.Background(), "I spent 100 on shoes", nil, Context{}, style)
	result, conv := engine.Analyze(context.Background(), "it was an impulse", nil, conv, style)

	if result.Data == nil || result.Data.Type != ClassificationImpulse {
		t.Fatalf("expected confirmed impulse payload, got %+v", result.Data)
	}
	if result.Data.Category != "shoes" || result.Data.Amount != 100 {
		t.Fatalf("confirmation must reuse the remembered purchase: %+v", result.Data)
	}
	if conv.awaitingClarification() {
		t.Fatalf("clarification must be resolved after the confirmation")
	}
}

func TestAnalyzeFollowUpConfirmsPlanned(t *testing.T) {
	engine := testEngine(nil)
	style := englishStyle()

	_, conv := engine.Analyze(context.Background(), "I spent 100 on shoes", nil, Context{}, style)
	result, conv := engine.Analyze(context.Background(), "no, I had it planned", nil, conv, style)

	if result.Data == nil || result.Data.Type != ClassificationReasonable {
		t.Fatalf("expected planned override, got %+v", result.Data)
	}
	if result.Data.BudgetAllocation == nil || !*result.Data.BudgetAllocation {
		t.Fatalf("planned purchase must be budget-allocated: %+v", result.Data)
	}
	if conv.LastDetectedType != ClassificationReasonable {
		t.Fatalf("stored type must be overridden to reasonable")
	}
}

func TestAnalyzeKeepsStatedCurrency(t *testing.T) {
	engine := testEngine(nil)
	style := englishStyle() // preferred currency EUR

	result, _ := engine.Analyze(context.Background(), "I spent £50 on a jacket", nil, Context{}, style)

	if result.Data == nil || result.Data.Amount != 50 {
		t.Fatalf("expected amount 50 with no conversion, got %+v", result.Data)
	}
	if !strings.Contains(result.ResponseText, "£50") {
		t.Fatalf("stated currency must survive into the reply: %s", result.ResponseText)
	}
}

func TestAnalyzeReasonablePurchase(t *testing.T) {
	engine := testEngine(nil)

	result, conv := engine.Analyze(context.Background(), "60 euros on groceries", nil, Context{}, englishStyle())

	if result.Data == nil || result.Data.Type != ClassificationReasonable {
		t.Fatalf("expected reasonable, got %+v", result.Data)
	}
	if result.Data.BudgetAllocation == nil || !*result.Data.BudgetAllocation {
		t.Fatalf("expected budget allocation flag: %+v", result.Data)
	}
	if result.Data.PotentialValue1Yr != nil {
		t.Fatalf("reasonable payload must not carry projections: %+v", result.Data)
	}
	if conv.awaitingClarification() {
		t.Fatalf("reasonable spend must not open a clarification")
	}
}

func TestAnalyzeNonFinancialMessage(t *testing.T) {
	engine := testEngine(nil)

	result, conv := engine.Analyze(context.Background(), "hello there!", nil, Context{}, englishStyle())

	if result.Data != nil {
		t.Fatalf("greeting must carry no financial data: %+v", result.Data)
	}
	if result.ResponseText == "" {
		t.Fatalf("template tier must still produce a reply")
	}
	if conv.awaitingClarification() {
		t.Fatalf("greeting must not touch the clarification state")
	}
}

func TestAnalyzeRemoteFailureFallsBack(t *testing.T) {
	client := &stubClient{err: errors.New("connection refused")}
	engine := testEngine(client)

	result, conv := engine.Analyze(context.Background(), "I spent 100 on shoes", nil, Context{}, englishStyle())

	if client.calls != 1 {
		t.Fatalf("remote tier gets exactly one attempt, got %d", client.calls)
	}
	if result.Data == nil || result.Data.Type != ClassificationImpulse {
		t.Fatalf("rule tier must take over: %+v", result.Data)
	}
	if !conv.awaitingClarification() {
		t.Fatalf("fallback path must still update the context")
	}
}

func TestAnalyzeRemoteSuccess(t *testing.T) {
	client := &stubClient{
		reply: `{"response": "Those shoes could fund your future instead.", "financialData": {"type": "impulse", "amount": 100, "category": "shoes", "potential_value_1yr": 108, "potential_value_5yr": 146.93}}`,
	}
	engine := testEngine(client)

	result, conv := engine.Analyze(context.Background(), "I spent 100 on shoes", nil, Context{}, englishStyle())

	if result.ResponseText != "Those shoes could fund your future instead." {
		t.Fatalf("expected remote reply text, got %q", result.ResponseText)
	}
	if result.Data == nil || result.Data.Category != "shoes" {
		t.Fatalf("expected remote payload, got %+v", result.Data)
	}
	if conv.LastMentionedItem != "shoes" {
		t.Fatalf("remote result must update the context, got %q", conv.LastMentionedItem)
	}
}

func TestAnalyzeRemoteInvalidShapeKeepsTextOnly(t *testing.T) {
	client := &stubClient{
		reply: `{"response": "Hmm, interesting.", "financialData": {"type": "impulse", "amount": 0, "category": "shoes"}}`,
	}
	engine := testEngine(client)

	result, _ := engine.Analyze(context.Background(), "I spent 100 on shoes", nil, Context{}, englishStyle())

	if result.ResponseText != "Hmm, interesting." {
		t.Fatalf("expected remote text to survive, got %q", result.ResponseText)
	}
	if result.Data != nil {
		t.Fatalf("invalid payload must be dropped, got %+v", result.Data)
	}
}

func TestAnalyzeRemoteBackfillsProjections(t *testing.T) {
	client := &stubClient{
		reply: `{"response": "Noted.", "financialData": {"type": "impulse", "amount": 100, "category": "shoes"}}`,
	}
	engine := testEngine(client)

	result, _ := engine.Analyze(context.Background(), "I spent 100 on shoes", nil, Context{}, englishStyle())

	if result.Data == nil || result.Data.PotentialValue1Yr == nil || result.Data.PotentialValue5Yr == nil {
		t.Fatalf("missing projections must be backfilled: %+v", result.Data)
	}
	if *result.Data.PotentialValue1Yr != 108 || *result.Data.PotentialValue5Yr != 146.93 {
		t.Fatalf("unexpected backfilled projections: %v / %v",
			*result.Data.PotentialValue1Yr, *result.Data.PotentialValue5Yr)
	}
}

func TestAnalyzeRemoteBackfillsBudgetAllocation(t *testing.T) {
	client := &stubClient{
		reply: `{"response": "Sensible.", "financialData": {"type": "reasonable", "amount": 85, "category": "groceries"}}`,
	}
	engine := testEngine(client)

	result, _ := engine.Analyze(context.Background(), "85 on groceries", nil, Context{}, englishStyle())

	if result.Data == nil || result.Data.Type != ClassificationReasonable {
		t.Fatalf("expected reasonable payload, got %+v", result.Data)
	}
	if result.Data.BudgetAllocation == nil || !*result.Data.BudgetAllocation {
		t.Fatalf("missing budget allocation must be backfilled: %+v", result.Data)
	}
	if result.Data.PotentialValue1Yr != nil || result.Data.PotentialValue5Yr != nil {
		t.Fatalf("reasonable payload must not gain projections: %+v", result.Data)
	}
}

func TestAnalyzeRemoteRejectsShrinkingProjections(t *testing.T) {
	client := &stubClient{
		reply: `{"response": "Shoes again?", "financialData": {"type": "impulse", "amount": 100, "category": "shoes", "potential_value_1yr": 108, "potential_value_5yr": 90}}`,
	}
	engine := testEngine(client)

	result, _ := engine.Analyze(context.Background(), "I spent 100 on shoes", nil, Context{}, englishStyle())

	if result.ResponseText != "Shoes again?" {
		t.Fatalf("expected remote text to survive, got %q", result.ResponseText)
	}
	if result.Data != nil {
		t.Fatalf("payload with shrinking projections must be dropped, got %+v", result.Data)
	}
}

func TestAnalyzeHistoryWindowBounded(t *testing.T) {
	client := &stubClient{reply: "Sure."}
	engine := testEngine(client)

	history := make([]ai.Message, 0, 30)
	for i := 0; i < 30; i++ {
		history = append(history, ai.Message{Role: "user", Content: "earlier turn"})
	}

	engine.Analyze(context.Background(), "hello", history, Context{}, englishStyle())

	// system + bounded history + current message
	if len(client.last) != maxPromptTurns+2 {
		t.Fatalf("expected %d prompt messages, got %d", maxPromptTurns+2, len(client.last))
	}
	if client.last[0].Role != "system" {
		t.Fatalf("first prompt message must be the system prompt")
	}
	if client.last[len(client.last)-1].Content != "hello" {
		t.Fatalf("current message must come last")
	}
}

func TestAnalyzeClampsUnknownStyle(t *testing.T) {
	engine := testEngine(nil)
	style := Style{Personality: "grumpy", Language: "de", PreferredCurrency: "XBT"}

	result, _ := engine.Analyze(context.Background(), "I spent 100 on shoes", nil, Context{}, style)

	if result.Data == nil {
		t.Fatalf("unknown style values must clamp, not fail")
	}
	// Defaults: EUR preferred currency for the bare amount.
	if !strings.Contains(result.ResponseText, "€100") {
		t.Fatalf("expected default currency formatting: %s", result.ResponseText)
	}
}
