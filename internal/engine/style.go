package engine

import "strings"

type Personality string

const (
	PersonalityNice  Personality = "nice"
	PersonalityFunny Personality = "funny"
	PersonalityIrony Personality = "irony"
)

type Language string

const (
	LanguageEN Language = "en"
	LanguageFR Language = "fr"
)

// Style is passed explicitly into every engine call. There are no
// process-wide mode variables: concurrent sessions cannot bleed into each
// other.
type Style struct {
	Personality       Personality
	Language          Language
	PreferredCurrency Currency
}

// ParsePersonality maps a raw mode string to the closed personality enum.
// "sarcastic" survives as a legacy alias for irony from the two-valued
// nice/sarcastic era. Unknown values report false so the caller can clamp
// to its default.
func ParsePersonality(value string) (Personality, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(PersonalityNice):
		return PersonalityNice, true
	case string(PersonalityFunny):
		return PersonalityFunny, true
	case string(PersonalityIrony), "sarcastic":
		return PersonalityIrony, true
	default:
		return "", false
	}
}

// ParseLanguage maps a raw language code to the supported set.
func ParseLanguage(value string) (Language, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(LanguageEN):
		return LanguageEN, true
	case string(LanguageFR):
		return LanguageFR, true
	default:
		return "", false
	}
}

// normalized clamps every unset or unrecognized field to the engine
// defaults. Unsupported enum values never fail a call.
func (s Style) normalized(defaults Style) Style {
	if personality, ok := ParsePersonality(string(s.Personality)); ok {
		s.Personality = personality
	} else {
		s.Personality = defaults.Personality
	}

	if language, ok := ParseLanguage(string(s.Language)); ok {
		s.Language = language
	} else {
		s.Language = defaults.Language
	}

	if currency, ok := ParseCurrency(string(s.PreferredCurrency)); ok {
		s.PreferredCurrency = currency
	} else {
		s.PreferredCurrency = defaults.PreferredCurrency
	}

	return s
}
