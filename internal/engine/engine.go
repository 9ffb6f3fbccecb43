package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"example.com/mindfulwealth/backend/internal/ai"
)

const (
	defaultRemoteTimeout = 12 * time.Second

	// Only the most recent turns travel to the model.
	maxPromptTurns = 10
)

// Result is what one engine call produces: the reply text plus, when a
// purchase was recognized, the structured payload for the web layer.
type Result struct {
	ResponseText string
	Data         *FinancialData
}

// Engine runs the three-tier analysis: remote model, rule-based pipeline,
// static templates. Each tier gets one attempt; a tier failure is logged
// and the next tier takes over. Analyze never returns an error.
type Engine struct {
	client   ai.Client
	composer *Composer
	logger   *slog.Logger
	timeout  time.Duration
	defaults Style
}

// New builds an engine. A nil client disables the remote tier entirely and
// the rule-based pipeline becomes the first tier.
func New(client ai.Client, composer *Composer, logger *slog.Logger, timeout time.Duration, defaults Style) *Engine {
	if composer == nil {
		composer = NewComposer(time.Now().UnixNano())
	}
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = defaultRemoteTimeout
	}

	return &Engine{
		client:   client,
		composer: composer,
		logger:   logger,
		timeout:  timeout,
		defaults: defaults.normalized(Style{
			Personality:       PersonalityNice,
			Language:          LanguageEN,
			PreferredCurrency: CurrencyEUR,
		}),
	}
}

// Analyze processes one user message against the session's conversation
// context and style, and returns the reply together with the updated
// context. The caller owns the context across turns.
func (e *Engine) Analyze(ctx context.Context, message string, history []ai.Message, conv Context, style Style) (Result, Context) {
	style = style.normalized(e.defaults)

	if e.client != nil {
		if result, updated, ok := e.remoteTier(ctx, message, history, conv, style); ok {
			return result, updated
		}
	}

	return e.ruleTier(message, conv, style)
}

func (e *Engine) remoteTier(ctx context.Context, message string, history []ai.Message, conv Context, style Style) (Result, Context, bool) {
	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	reply, _, err := e.client.Chat(callCtx, buildRemoteMessages(message, history, conv, style))
	if err != nil {
		e.logger.Warn("remote tier failed, falling back to rules", "error", err)
		return Result{}, conv, false
	}

	outcome := parseRemoteReply(reply)
	if outcome.Text == "" {
		e.logger.Warn("remote tier returned empty reply, falling back to rules")
		return Result{}, conv, false
	}

	result := Result{ResponseText: outcome.Text}
	if outcome.Data == nil {
		return result, conv, true
	}

	if !outcome.Data.Valid() {
		e.logger.Warn("remote payload failed shape validation, keeping text only",
			"type", outcome.Data.Type, "category", outcome.Data.Category)
		return result, conv, true
	}

	result.Data = outcome.Data
	money := Money{
		Amount:   decimal.NewFromFloat(outcome.Data.Amount),
		Currency: style.PreferredCurrency,
	}

	if outcome.Data.Type == ClassificationImpulse {
		ensureProjections(result.Data, money.Amount)
		conv.remember(outcome.Data.Category, money, ClassificationImpulse)
		conv.OngoingDiscussion = true
	} else {
		ensureAllocation(result.Data)
		conv.remember(outcome.Data.Category, money, ClassificationReasonable)
		conv.clearDiscussion()
	}

	return result, conv, true
}

func (e *Engine) ruleTier(message string, conv Context, style Style) (Result, Context) {
	switch conv.resolveFollowUp(message) {
	case followUpConfirmedImpulse:
		money := *conv.LastMentionedAmount
		category := conv.LastMentionedItem
		oneYear := Project(money.Amount, 1)
		fiveYear := Project(money.Amount, 5)

		conv.LastDetectedType = ClassificationImpulse
		conv.clearDiscussion()

		return Result{
			ResponseText: e.composer.ComposeConfirmedImpulse(money, category, oneYear, fiveYear, style),
			Data:         impulseData(money, category, oneYear, fiveYear),
		}, conv

	case followUpConfirmedPlanned:
		money := *conv.LastMentionedAmount
		category := conv.LastMentionedItem

		conv.LastDetectedType = ClassificationReasonable
		conv.clearDiscussion()

		return Result{
			ResponseText: e.composer.ComposeConfirmedPlanned(category, style),
			Data:         reasonableData(money, category),
		}, conv
	}

	money, ok := Extract(message, style.PreferredCurrency)
	if !ok {
		// Template tier: nothing financial in the message.
		return Result{ResponseText: e.composer.ComposeGreeting(style)}, conv
	}

	category := InferCategory(message)

	if Classify(message, category) == ClassificationImpulse {
		oneYear := Project(money.Amount, 1)
		fiveYear := Project(money.Amount, 5)
		askFollowUp := !conv.awaitingClarification()

		conv.remember(category, money, ClassificationImpulse)
		conv.OngoingDiscussion = true

		return Result{
			ResponseText: e.composer.ComposeImpulse(money, category, oneYear, fiveYear, askFollowUp, style),
			Data:         impulseData(money, category, oneYear, fiveYear),
		}, conv
	}

	conv.remember(category, money, ClassificationReasonable)
	conv.clearDiscussion()

	return Result{
		ResponseText: e.composer.ComposeReasonable(money, category, style),
		Data:         reasonableData(money, category),
	}, conv
}

func impulseData(money Money, category string, oneYear, fiveYear decimal.Decimal) *FinancialData {
	one := oneYear.InexactFloat64()
	five := fiveYear.InexactFloat64()

	return &FinancialData{
		Type:              ClassificationImpulse,
		Amount:            money.Amount.InexactFloat64(),
		Category:          category,
		PotentialValue1Yr: &one,
		PotentialValue5Yr: &five,
	}
}

func reasonableData(money Money, category string) *FinancialData {
	allocated := true

	return &FinancialData{
		Type:             ClassificationReasonable,
		Amount:           money.Amount.InexactFloat64(),
		Category:         category,
		BudgetAllocation: &allocated,
	}
}

// ensureAllocation backfills the budget flag a remote reasonable payload
// left out.
func ensureAllocation(data *FinancialData) {
	if data.BudgetAllocation == nil {
		allocated := true
		data.BudgetAllocation = &allocated
	}
}

// ensureProjections backfills growth figures a remote payload left out.
func ensureProjections(data *FinancialData, amount decimal.Decimal) {
	if data.PotentialValue1Yr == nil {
		one := Project(amount, 1).InexactFloat64()
		data.PotentialValue1Yr = &one
	}
	if data.PotentialValue5Yr == nil {
		five := Project(amount, 5).InexactFloat64()
		data.PotentialValue5Yr = &five
	}
}

var personalityGuides = map[Personality]string{
	PersonalityNice:  "Be warm, supportive and encouraging.",
	PersonalityFunny: "Be playful and humorous while staying helpful.",
	PersonalityIrony: "Be dry and lightly ironic, never cruel.",
}

var languageGuides = map[Language]string{
	LanguageEN: "Reply in English.",
	LanguageFR: "Reply in French.",
}

func buildRemoteMessages(message string, history []ai.Message, conv Context, style Style) []ai.Message {
	var system strings.Builder

	system.WriteString("You are MindfulWealth, a financial assistant that helps users reflect before spending. ")
	system.WriteString(personalityGuides[style.Personality])
	system.WriteString(" ")
	system.WriteString(languageGuides[style.Language])
	system.WriteString(" Amounts are in ")
	system.WriteString(string(style.PreferredCurrency))
	system.WriteString(" unless the user states another currency.\n\n")
	system.WriteString("When the message describes a purchase, classify it as \"impulse\" or \"reasonable\" ")
	system.WriteString("and append a JSON object to your reply:\n")
	system.WriteString("{\"response\": \"<your reply>\", \"financialData\": {\"type\": \"impulse\"|\"reasonable\", ")
	system.WriteString("\"amount\": <number>, \"category\": \"<category>\", ")
	system.WriteString("\"potential_value_1yr\": <amount grown 8% for 1 year>, ")
	system.WriteString("\"potential_value_5yr\": <amount grown 8% yearly for 5 years>}}\n")
	system.WriteString("For messages with no purchase, omit financialData entirely.")

	if conv.awaitingClarification() {
		fmt.Fprintf(&system,
			"\n\nYou previously asked whether the %s purchase of %s%s was planned or an impulse; the user may be answering that question.",
			conv.LastMentionedItem,
			conv.LastMentionedAmount.Currency.Symbol(),
			conv.LastMentionedAmount.Amount.String())
	}

	messages := make([]ai.Message, 0, maxPromptTurns+2)
	messages = append(messages, ai.Message{Role: "system", Content: system.String()})

	if len(history) > maxPromptTurns {
		history = history[len(history)-maxPromptTurns:]
	}
	messages = append(messages, history...)

	return append(messages, ai.Message{Role: "user", Content: message})
}
