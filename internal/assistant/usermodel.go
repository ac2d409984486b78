package assistant

import (
	"strings"
	"unicode/utf8"

	"triply/internal/nlp"
	"triply/internal/trip"
)

var (
	urgentKeywords  = []string{"urgent", "asap", "immediately", "now", "quick", "fast", "emergency", "help", "problem", "issue"}
	relaxedKeywords = []string{"eventually", "later", "someday", "maybe", "thinking about", "considering"}
	enthusiasmWords = []string{"love", "excited"}
)

// DetectPersonality reads the shape of the raw message. Length checks win
// over punctuation checks.
func DetectPersonality(message string) Personality {
	chars := utf8.RuneCountInString(message)
	words := len(strings.Fields(message))
	lower := strings.ToLower(message)

	switch {
	case chars > 100 || words > 15:
		return PersonalityDetailed
	case chars < 30 || words < 5:
		return PersonalityDirect
	case strings.Contains(message, "?") && (strings.Contains(lower, "how") || strings.Contains(lower, "why")):
		return PersonalityExploratory
	case strings.Contains(message, "!") || containsAny(lower, enthusiasmWords):
		return PersonalityCasual
	}
	return PersonalityNeutral
}

func DetectUrgency(message string) Urgency {
	lower := strings.ToLower(message)
	switch {
	case containsAny(lower, urgentKeywords):
		return UrgencyUrgent
	case containsAny(lower, relaxedKeywords):
		return UrgencyRelaxed
	}
	return UrgencyNormal
}

func ResponseStyleFor(p Personality, s nlp.Sentiment, u Urgency) Style {
	switch {
	case u == UrgencyUrgent:
		return StyleProfessional
	case s == nlp.SentimentPositive:
		return StyleEncouraging
	case p == PersonalityExploratory:
		return StyleAnalytical
	case p == PersonalityCasual:
		return StyleFriendly
	}
	return StyleHelpful
}

func keyInsights(t *trip.Trip, analysis nlp.TextAnalysis, money func(float64) string) []string {
	var insights []string
	if len(analysis.Locations) > 0 {
		insights = append(insights, "User mentioned locations: "+strings.Join(analysis.Locations, ", "))
	}
	if len(analysis.Amounts) > 0 {
		insights = append(insights, "User mentioned budget: "+money(analysis.Amounts[0]))
	}
	if len(analysis.Preferences) > 0 {
		insights = append(insights, "User preferences: "+strings.Join(analysis.Preferences, ", "))
	}
	if t.Budget != nil {
		insights = append(insights, "Trip has budget set")
	}
	if len(t.Expenses) > 0 {
		insights = append(insights, "User has logged expenses")
	}
	return insights
}
