package engine

import (
	"testing"

	"github.com/shopspring/decimal"
)

func pendingContext() Context {
	amount := Money{Amount: decimal.NewFromInt(100), Currency: CurrencyEUR}
	return Context{
		OngoingDiscussion:   true,
		LastMentionedItem:   "shoes",
		LastMentionedAmount: &amount,
		LastDetectedType:    ClassificationImpulse,
	}
}

func TestResolveFollowUpImpulse(t *testing.T) {
	conv := pendingContext()
	for _, message := range []string{
		"it was an impulse",
		"in the moment, really",
		"just a quick buy",
		"totally spontaneous",
		"completely unplanned",
	} {
		if got := conv.resolveFollowUp(message); got != followUpConfirmedImpulse {
			t.Fatalf("%q: expected impulse confirmation, got %d", message, got)
		}
	}
}

func TestResolveFollowUpPlanned(t *testing.T) {
	conv := pendingContext()
	for _, message := range []string{
		"I had it planned",
		"I needed them",
		"it was necessary",
		"essential purchase",
		"I've been saving for these",
	} {
		if got := conv.resolveFollowUp(message); got != followUpConfirmedPlanned {
			t.Fatalf("%q: expected planned confirmation, got %d", message, got)
		}
	}
}

func TestResolveFollowUpNoMatchLeavesPending(t *testing.T) {
	conv := pendingContext()
	if got := conv.resolveFollowUp("also bought a lamp for 40"); got != followUpNone {
		t.Fatalf("expected no follow-up match, got %d", got)
	}
	if !conv.awaitingClarification() {
		t.Fatalf("pending state must survive a non-matching message")
	}
}

func TestResolveFollowUpRequiresPendingState(t *testing.T) {
	var conv Context
	if got := conv.resolveFollowUp("it was an impulse"); got != followUpNone {
		t.Fatalf("idle context must not resolve follow-ups, got %d", got)
	}
}

func TestRememberBoundsHistory(t *testing.T) {
	var conv Context
	for i := 1; i <= 8; i++ {
		money := Money{Amount: decimal.NewFromInt(int64(i)), Currency: CurrencyEUR}
		conv.remember("general", money, ClassificationImpulse)
	}

	if len(conv.HistoricalItems) != historyLimit {
		t.Fatalf("expected %d items, got %d", historyLimit, len(conv.HistoricalItems))
	}
	if len(conv.HistoricalAmounts) != historyLimit {
		t.Fatalf("expected %d amounts, got %d", historyLimit, len(conv.HistoricalAmounts))
	}

	// Oldest evicted: history starts at the 4th entry.
	if got := conv.HistoricalAmounts[0].Amount.String(); got != "4" {
		t.Fatalf("expected oldest surviving amount 4, got %s", got)
	}
	if got := conv.HistoricalAmounts[historyLimit-1].Amount.String(); got != "8" {
		t.Fatalf("expected most recent amount 8, got %s", got)
	}
}
