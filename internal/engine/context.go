package engine

import "strings"

// historyLimit bounds the per-context item/amount history; the oldest entry
// is evicted first.
const historyLimit = 5

// Context is the short-term conversational memory for one user session. The
// caller owns it across turns: the engine receives a snapshot and returns
// the updated value, it never stores one.
type Context struct {
	OngoingDiscussion   bool           `json:"ongoing_discussion"`
	LastMentionedItem   string         `json:"last_mentioned_item,omitempty"`
	LastMentionedAmount *Money         `json:"last_mentioned_amount,omitempty"`
	LastDetectedType    Classification `json:"last_detected_type,omitempty"`
	HistoricalItems     []string       `json:"historical_items,omitempty"`
	HistoricalAmounts   []Money        `json:"historical_amounts,omitempty"`
}

// Follow-up confirmation vocabularies for a purchase the bot has already
// asked about.
var (
	impulseConfirmations = []string{"impulse", "moment", "quick", "spontaneous", "unplanned"}
	plannedConfirmations = []string{"planned", "needed", "necessary", "essential", "saving for"}
)

type followUpOutcome int

const (
	followUpNone followUpOutcome = iota
	followUpConfirmedImpulse
	followUpConfirmedPlanned
)

// resolveFollowUp inspects a new user message while a clarification is
// pending. A no-match leaves the pending state untouched; the message is
// then classified independently.
func (c Context) resolveFollowUp(message string) followUpOutcome {
	if !c.awaitingClarification() {
		return followUpNone
	}

	lowered := strings.ToLower(message)
	if containsAny(lowered, impulseConfirmations) {
		return followUpConfirmedImpulse
	}
	if containsAny(lowered, plannedConfirmations) {
		return followUpConfirmedPlanned
	}

	return followUpNone
}

func (c Context) awaitingClarification() bool {
	return c.OngoingDiscussion && c.LastMentionedItem != "" && c.LastMentionedAmount != nil
}

// remember records a newly detected purchase in the context and appends it
// to the bounded history.
func (c *Context) remember(item string, amount Money, detected Classification) {
	c.LastMentionedItem = item
	c.LastMentionedAmount = &amount
	c.LastDetectedType = detected

	c.HistoricalItems = appendBounded(c.HistoricalItems, item)
	c.HistoricalAmounts = appendBounded(c.HistoricalAmounts, amount)
}

func (c *Context) clearDiscussion() {
	c.OngoingDiscussion = false
}

func appendBounded[T any](values []T, value T) []T {
	values = append(values, value)
	if len(values) > historyLimit {
		values = values[len(values)-historyLimit:]
	}
	return values
}
