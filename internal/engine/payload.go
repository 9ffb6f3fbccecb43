package engine

import (
	"encoding/json"
	"strings"
)

// FinancialData is the structured result the web layer persists and returns
// over HTTP. Impulse entries carry both projections; reasonable entries
// carry the budget-allocation flag instead.
type FinancialData struct {
	Type              Classification `json:"type"`
	Amount            float64        `json:"amount"`
	Category          string         `json:"category"`
	PotentialValue1Yr *float64       `json:"potential_value_1yr,omitempty"`
	PotentialValue5Yr *float64       `json:"potential_value_5yr,omitempty"`
	BudgetAllocation  *bool          `json:"budget_allocation,omitempty"`
}

// Valid reports whether a payload passes basic shape validation: known
// type, positive amount, non-empty category, and projections that grow
// over time when both are present.
func (d *FinancialData) Valid() bool {
	if d == nil {
		return false
	}
	if d.Type != ClassificationImpulse && d.Type != ClassificationReasonable {
		return false
	}
	if d.PotentialValue1Yr != nil && d.PotentialValue5Yr != nil &&
		*d.PotentialValue5Yr < *d.PotentialValue1Yr {
		return false
	}
	return d.Amount > 0 && strings.TrimSpace(d.Category) != ""
}

type remotePayload struct {
	Response      string         `json:"response"`
	FinancialData *FinancialData `json:"financialData"`
}

// remoteOutcome is the tagged result of scraping a model reply: either a
// parsed payload, or just the free text when nothing structured survived.
type remoteOutcome struct {
	Text   string
	Data   *FinancialData
	Parsed bool
}

// parseRemoteReply digs a financialData payload out of model free text.
// Lookup order: fenced JSON block, then the brace-delimited object around a
// literal "financialData" key. A failed parse gets one salvage attempt with
// single quotes repaired to double quotes before the payload is given up on.
func parseRemoteReply(raw string) remoteOutcome {
	trimmed := strings.TrimSpace(raw)
	outcome := remoteOutcome{Text: trimmed}
	if trimmed == "" {
		return outcome
	}

	candidate := fencedBlock(trimmed)
	if candidate == "" {
		candidate = braceDelimited(trimmed)
	}
	if candidate == "" {
		return outcome
	}

	var payload remotePayload
	if err := json.Unmarshal([]byte(candidate), &payload); err != nil {
		salvaged := strings.ReplaceAll(candidate, "'", `"`)
		if err := json.Unmarshal([]byte(salvaged), &payload); err != nil {
			return outcome
		}
	}

	outcome.Parsed = true
	outcome.Data = payload.FinancialData
	if text := strings.TrimSpace(payload.Response); text != "" {
		outcome.Text = text
	} else {
		// Keep the prose around the payload when the JSON itself holds none.
		outcome.Text = strings.TrimSpace(strings.Replace(trimmed, candidate, "", 1))
		outcome.Text = strings.TrimSpace(strings.Trim(outcome.Text, "`"))
	}

	return outcome
}

func fencedBlock(text string) string {
	start := strings.Index(text, "```")
	if start == -1 {
		return ""
	}

	body := text[start+3:]
	body = strings.TrimPrefix(body, "json")
	end := strings.Index(body, "```")
	if end == -1 {
		return ""
	}

	return strings.TrimSpace(body[:end])
}

func braceDelimited(text string) string {
	key := strings.Index(text, `"financialData"`)
	if key == -1 {
		key = strings.Index(text, `'financialData'`)
	}
	if key == -1 {
		return ""
	}

	start := strings.LastIndex(text[:key], "{")
	if start == -1 {
		return ""
	}

	depth := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}

	return ""
}
