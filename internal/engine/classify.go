package engine

import "strings"

type Classification string

const (
	ClassificationImpulse    Classification = "impulse"
	ClassificationReasonable Classification = "reasonable"
)

// Reasonable spending terms. Matching is case-insensitive substring, both
// against the inferred category and against the raw text, so a category hit
// always beats any co-occurring impulse phrasing.
var reasonableTerms = []string{
	"medical", "healthcare", "doctor", "medicine", "prescription",
	"groceries", "grocery", "food",
	"rent", "mortgage", "housing", "utilities", "bills", "electricity", "water", "gas",
	"transportation", "commute", "fuel", "public transport",
	"education", "tuition", "school", "books", "supplies",
	"childcare", "daycare",
}

var necessityPhrases = []string{
	"need", "necessary", "essential", "required", "have to", "must",
	"important", "critical", "vital", "emergency", "urgent",
}

var impulsePhrases = []string{
	"want", "impulse", "splurge", "treat myself", "tempted",
	"thinking of buying", "just saw", "cool", "awesome", "fancy",
	"luxury", "designer", "latest",
}

// Classify decides impulse vs reasonable for a message and its inferred
// category. Rules fire in order; the first hit decides. Ambiguous spending
// defaults to impulse on purpose: flagging it prompts the user to review,
// which is the product's stated policy.
func Classify(text, category string) Classification {
	categoryLower := strings.ToLower(category)
	for _, term := range reasonableTerms {
		if strings.Contains(categoryLower, term) {
			return ClassificationReasonable
		}
	}

	textLower := strings.ToLower(text)
	for _, term := range reasonableTerms {
		if strings.Contains(textLower, term) {
			return ClassificationReasonable
		}
	}

	if containsAny(textLower, necessityPhrases) {
		return ClassificationReasonable
	}

	if containsAny(textLower, impulsePhrases) {
		return ClassificationImpulse
	}

	return ClassificationImpulse
}

func containsAny(text string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}
