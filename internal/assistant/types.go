package assistant

import "triply/internal/nlp"

type Intent string

const (
	IntentGreeting     Intent = "greeting"
	IntentBudget       Intent = "budget"
	IntentSuggestions  Intent = "suggestions"
	IntentItinerary    Intent = "itinerary"
	IntentExpenses     Intent = "expenses"
	IntentWeather      Intent = "weather"
	IntentPacking      Intent = "packing"
	IntentDestinations Intent = "destinations"
	IntentGeneral      Intent = "general"
)

// Label is the phrase used when offering help with an intent.
func (i Intent) Label() string {
	switch i {
	case IntentBudget:
		return "budget planning"
	case IntentSuggestions:
		return "suggestions"
	case IntentItinerary:
		return "itinerary planning"
	case IntentExpenses:
		return "expense tracking"
	case IntentWeather:
		return "weather planning"
	case IntentPacking:
		return "packing lists"
	case IntentDestinations:
		return "destination planning"
	}
	return "other aspects"
}

type Personality string

const (
	PersonalityDetailed    Personality = "detailed"
	PersonalityCasual      Personality = "casual"
	PersonalityDirect      Personality = "direct"
	PersonalityExploratory Personality = "exploratory"
	PersonalityNeutral     Personality = "neutral"
)

type Urgency string

const (
	UrgencyUrgent  Urgency = "urgent"
	UrgencyNormal  Urgency = "normal"
	UrgencyRelaxed Urgency = "relaxed"
)

type Style string

const (
	StyleHelpful      Style = "helpful"
	StyleEncouraging  Style = "encouraging"
	StyleAnalytical   Style = "analytical"
	StyleFriendly     Style = "friendly"
	StyleProfessional Style = "professional"
)

// ConversationContext is rebuilt from recent history on every turn.
type ConversationContext struct {
	PreviousTopics     []string  `json:"previous_topics"`
	MentionedLocations []string  `json:"mentioned_locations"`
	MentionedAmounts   []float64 `json:"mentioned_amounts"`
	UserPreferences    []string  `json:"user_preferences"`
	FollowUp           bool      `json:"follow_up"`
}

// Understanding gathers everything known about the current message.
type Understanding struct {
	PrimaryIntent       Intent           `json:"primary_intent"`
	SecondaryIntents    []Intent         `json:"secondary_intents"`
	Analysis            nlp.TextAnalysis `json:"analysis"`
	ConversationSummary string           `json:"conversation_summary"`
	Personality         Personality      `json:"personality"`
	Urgency             Urgency          `json:"urgency"`
	Style               Style            `json:"style"`
	KeyInsights         []string         `json:"key_insights"`
}

// TextAnalyzer is the subset of the nlp analyzer the pipeline depends on.
type TextAnalyzer interface {
	Analyze(text string) nlp.TextAnalysis
	AnalyzeNotes(notes string) nlp.NotesAnalysis
}

// Chooser returns an index in [0, n). It only ever picks cosmetic phrasing.
type Chooser func(n int) int

// FirstChoice always picks the first option.
func FirstChoice(int) int { return 0 }

func pick[T any](choose Chooser, options []T) T {
	var zero T
	if len(options) == 0 {
		return zero
	}
	i := choose(len(options))
	if i < 0 || i >= len(options) {
		i = 0
	}
	return options[i]
}
