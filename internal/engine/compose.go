package engine

import (
	"math/rand"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// Closed category dictionary, English keyed. Lookup is exact match first,
// then substring in either direction; anything unknown passes through
// untranslated.
var categoryTranslations = map[string]string{
	"savings":           "épargne",
	"groceries":         "courses",
	"dining":            "restaurants",
	"entertainment":     "divertissement",
	"shopping":          "achats",
	"travel":            "voyages",
	"utilities":         "services publics",
	"housing":           "logement",
	"transportation":    "transport",
	"medical":           "santé",
	"education":         "éducation",
	"investments":       "investissements",
	"clothing":          "vêtements",
	"electronics":       "électronique",
	"shoes":             "chaussures",
	"accessories":       "accessoires",
	"home":              "maison",
	"childcare":         "garde d'enfants",
	"subscriptions":     "abonnements",
	"gifts":             "cadeaux",
	"personal care":     "soins personnels",
	"impulse purchases": "achats impulsifs",
	"general":           "général",
}

// Sorted key order fixes which entry wins when a free-text category
// substring-matches more than one.
var categoryKeys = func() []string {
	keys := make([]string, 0, len(categoryTranslations))
	for key := range categoryTranslations {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}()

// TranslateCategory renders a category name in the target language.
func TranslateCategory(category string, language Language) string {
	lowered := strings.ToLower(strings.TrimSpace(category))
	if lowered == "" {
		return category
	}

	if language == LanguageFR {
		if translated, ok := categoryTranslations[lowered]; ok {
			return translated
		}
		for _, english := range categoryKeys {
			if strings.Contains(lowered, english) || strings.Contains(english, lowered) {
				return categoryTranslations[english]
			}
		}
		return category
	}

	// Target is English: reverse the dictionary.
	for _, english := range categoryKeys {
		if lowered == categoryTranslations[english] {
			return english
		}
	}
	for _, english := range categoryKeys {
		french := categoryTranslations[english]
		if strings.Contains(lowered, french) || strings.Contains(french, lowered) {
			return english
		}
	}

	return category
}

// Composer renders the final reply text. Variant pools for the funny and
// irony tones are fixed and picked through a seedable source, so tests can
// pin the selection and the output space stays bounded.
type Composer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewComposer creates a composer whose variant selection is driven by the
// given seed.
func NewComposer(seed int64) *Composer {
	return &Composer{rng: rand.New(rand.NewSource(seed))}
}

func (cm *Composer) pick(n int) int {
	if n <= 1 {
		return 0
	}

	cm.mu.Lock()
	defer cm.mu.Unlock()
	return cm.rng.Intn(n)
}

func formatMoney(amount decimal.Decimal, currency Currency, language Language) string {
	if language == LanguageFR {
		return amount.String() + currency.Symbol()
	}
	return currency.Symbol() + amount.String()
}

// ComposeImpulse writes the impulse reply: names the amount and category,
// states both growth projections, and closes with a clarifying question
// unless one is already pending.
func (cm *Composer) ComposeImpulse(money Money, category string, oneYear, fiveYear decimal.Decimal, askFollowUp bool, style Style) string {
	replacer := strings.NewReplacer(
		"{amount}", formatMoney(money.Amount, money.Currency, style.Language),
		"{category}", TranslateCategory(category, style.Language),
		"{one}", formatMoney(oneYear, money.Currency, style.Language),
		"{five}", formatMoney(fiveYear, money.Currency, style.Language),
	)

	variants := impulseTemplates[style.Language][style.Personality]
	text := replacer.Replace(variants[cm.pick(len(variants))])

	if askFollowUp {
		text += " " + impulseFollowUps[style.Language]
	}

	return text
}

// ComposeReasonable writes the short acknowledgement for essential
// spending. Irony appends a dry remark from a fixed pool.
func (cm *Composer) ComposeReasonable(money Money, category string, style Style) string {
	replacer := strings.NewReplacer(
		"{amount}", formatMoney(money.Amount, money.Currency, style.Language),
		"{category}", TranslateCategory(category, style.Language),
	)

	text := replacer.Replace(reasonableTemplates[style.Language])
	if style.Personality == PersonalityIrony {
		remarks := ironyRemarks[style.Language]
		text += " " + remarks[cm.pick(len(remarks))]
	}

	return text
}

// ComposeConfirmedImpulse answers the follow-up where the user admits the
// purchase was impulsive.
func (cm *Composer) ComposeConfirmedImpulse(money Money, category string, oneYear, fiveYear decimal.Decimal, style Style) string {
	replacer := strings.NewReplacer(
		"{amount}", formatMoney(money.Amount, money.Currency, style.Language),
		"{category}", TranslateCategory(category, style.Language),
		"{one}", formatMoney(oneYear, money.Currency, style.Language),
		"{five}", formatMoney(fiveYear, money.Currency, style.Language),
	)

	variants := confirmedImpulseTemplates[style.Language][style.Personality]
	return replacer.Replace(variants[cm.pick(len(variants))])
}

// ComposeConfirmedPlanned answers the follow-up where the user says the
// purchase was planned; the stored type is overridden to reasonable.
func (cm *Composer) ComposeConfirmedPlanned(category string, style Style) string {
	replacer := strings.NewReplacer(
		"{category}", TranslateCategory(category, style.Language),
	)

	variants := confirmedPlannedTemplates[style.Language][style.Personality]
	return replacer.Replace(variants[cm.pick(len(variants))])
}

// ComposeGreeting is the template tier: a fixed greeting-or-clarification
// message used when no amount could be extracted at all.
func (cm *Composer) ComposeGreeting(style Style) string {
	variants := greetingTemplates[style.Language][style.Personality]
	return variants[cm.pick(len(variants))]
}

var impulseFollowUps = map[Language]string{
	LanguageEN: "Was this something you had planned, or more of an impulse?",
	LanguageFR: "Était-ce un achat prévu, ou plutôt une impulsion ?",
}

var impulseTemplates = map[Language]map[Personality][]string{
	LanguageEN: {
		PersonalityNice: {
			"I see you're looking at {category} for {amount}. If you invested that instead, it could grow to about {one} in one year or {five} in five years at an 8% annual return.",
		},
		PersonalityFunny: {
			"{amount} on {category}? Your wallet just flinched! If that money hit an index fund instead, it could be {one} in a year or {five} in five. Compound interest never goes out of style.",
			"Ooh, {category} for {amount}! Fun fact: invested, that's {one} after a year and {five} after five. Money really does grow when you don't spend it.",
		},
		PersonalityIrony: {
			"So, {amount} on {category}. Bold. Invested, that would be {one} in a year or {five} in five years, but who needs compound growth when you have {category}, right?",
			"Ah yes, {category} for {amount}, clearly essential. Meanwhile an investment account would quietly turn it into {one} in a year and {five} in five.",
		},
	},
	LanguageFR: {
		PersonalityNice: {
			"Je vois que vous envisagez {category} pour {amount}. Si vous investissiez cette somme, elle pourrait atteindre environ {one} dans un an ou {five} dans cinq ans, avec un rendement annuel de 8%.",
		},
		PersonalityFunny: {
			"{amount} pour {category} ? Votre portefeuille tremble ! Investie, cette somme vaudrait {one} dans un an ou {five} dans cinq ans. Les intérêts composés ne se démodent jamais.",
			"Oh, {category} pour {amount} ! Petit rappel : investie, cette somme devient {one} en un an et {five} en cinq ans.",
		},
		PersonalityIrony: {
			"Donc, {amount} pour {category}. Audacieux. Investie, cette somme ferait {one} dans un an ou {five} dans cinq ans, mais qui a besoin d'intérêts composés, n'est-ce pas ?",
			"Ah oui, {category} pour {amount}, clairement indispensable. Pendant ce temps, un placement en ferait {one} en un an et {five} en cinq ans.",
		},
	},
}

var reasonableTemplates = map[Language]string{
	LanguageEN: "I've recorded your {amount} expense for {category} and added it to your monthly budget.",
	LanguageFR: "J'ai enregistré votre dépense de {amount} pour {category} et je l'ai ajoutée à votre budget mensuel.",
}

var ironyRemarks = map[Language][]string{
	LanguageEN: {
		"Look at you, spending responsibly.",
		"A necessary expense. How refreshingly sensible.",
	},
	LanguageFR: {
		"Regardez-vous, dépenser de façon responsable.",
		"Une dépense nécessaire. Quelle sagesse rafraîchissante.",
	},
}

var confirmedImpulseTemplates = map[Language]map[Personality][]string{
	LanguageEN: {
		PersonalityNice: {
			"I understand, impulse purchases happen to everyone. I've added {category} ({amount}) to your impulse tracker. Invested instead, that money could be {one} in a year or {five} in five.",
		},
		PersonalityFunny: {
			"The classic impulse buy! {amount} walked out on {category} before your brain caught up. That same money could have been {one} in a year, or {five} in five. Next time, ping me first!",
		},
		PersonalityIrony: {
			"Ah, the wallet acted before the brain. Noted: {category}, {amount}, filed under impulse. It could have been {one} in a year or {five} in five, but hindsight is free.",
		},
	},
	LanguageFR: {
		PersonalityNice: {
			"Je comprends, les achats impulsifs arrivent à tout le monde. J'ai ajouté {category} ({amount}) à votre suivi d'impulsions. Investie, cette somme pourrait valoir {one} dans un an ou {five} dans cinq ans.",
		},
		PersonalityFunny: {
			"Le grand classique de l'achat impulsif ! {amount} envolés pour {category}. Cette somme aurait pu devenir {one} en un an, ou {five} en cinq ans. La prochaine fois, écrivez-moi d'abord !",
		},
		PersonalityIrony: {
			"Ah, le portefeuille a décidé avant le cerveau. C'est noté : {category}, {amount}, classé en impulsion. Cela aurait fait {one} en un an ou {five} en cinq ans, mais il est toujours facile de le dire après.",
		},
	},
}

var confirmedPlannedTemplates = map[Language]map[Personality][]string{
	LanguageEN: {
		PersonalityNice: {
			"Great to hear this was planned! I've recategorized {category} as a planned expense rather than an impulse buy. Planning ahead is a solid financial habit.",
		},
		PersonalityFunny: {
			"A planned purchase! Somebody did their homework. {category} is officially moving out of the impulse bin and into the budget.",
		},
		PersonalityIrony: {
			"Oh, so {category} was a carefully planned financial decision? Aren't you the responsible one. Moved from \"impulse buy\" to \"totally necessary purchases\".",
		},
	},
	LanguageFR: {
		PersonalityNice: {
			"Ravi d'apprendre que c'était prévu ! J'ai reclassé {category} comme dépense planifiée plutôt qu'achat impulsif. Prévoir ses achats est une excellente habitude financière.",
		},
		PersonalityFunny: {
			"Un achat planifié ! Quelqu'un a fait ses devoirs. {category} quitte officiellement la case impulsion pour rejoindre le budget.",
		},
		PersonalityIrony: {
			"Oh, donc {category} était une décision financière mûrement réfléchie ? Quelle responsabilité. Déplacé de la case « achat impulsif » vers « achats totalement nécessaires ».",
		},
	},
}

var greetingTemplates = map[Language]map[Personality][]string{
	LanguageEN: {
		PersonalityNice: {
			"I'm here to help with your financial decisions. Tell me about any purchase you're considering or an expense you'd like to track.",
		},
		PersonalityFunny: {
			"My crystal ball shows no numbers in that message! Tell me what you're buying or tracking and I'll do the math.",
		},
		PersonalityIrony: {
			"I'm not quite sure what you're asking. Care to share a financial decision you're pondering? My judgment will be only slightly cutting.",
		},
	},
	LanguageFR: {
		PersonalityNice: {
			"Je suis là pour vous aider dans vos décisions financières. Parlez-moi d'un achat que vous envisagez ou d'une dépense à suivre.",
		},
		PersonalityFunny: {
			"Ma boule de cristal ne voit aucun chiffre dans ce message ! Dites-moi ce que vous achetez et je fais les calculs.",
		},
		PersonalityIrony: {
			"Je ne suis pas sûr de comprendre. Une décision financière à partager ? Mon jugement ne sera que légèrement acéré.",
		},
	},
}
