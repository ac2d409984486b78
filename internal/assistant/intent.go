package assistant

import (
	"regexp"
	"slices"
	"strings"
)

var (
	budgetKeywords = []string{
		"budget", "money", "cost", "spend", "expensive", "cheap", "afford", "price", "dollar",
		"currency", "how much", "costs",
	}
	suggestionKeywords = []string{
		"suggest", "recommend", "idea", "what should", "what can", "tips", "advice",
		"recommendation", "best", "top", "must see", "must do",
	}
	itineraryKeywords = []string{
		"itinerary", "schedule", "plan", "activities", "what to do", "when", "day", "time",
		"activity", "event",
	}
	expenseKeywords = []string{
		"expense", "spent", "spending", "costs", "receipt", "paid", "bought", "purchase",
	}
	weatherKeywords = []string{
		"weather", "temperature", "rain", "sunny", "forecast", "climate", "hot", "cold", "warm", "cool",
	}
	packingKeywords = []string{
		"pack", "packing", "bring", "luggage", "suitcase", "what to pack", "items", "clothes", "clothing",
	}
	destinationKeywords = []string{
		"destination", "place", "location", "where", "city", "country", "visit", "go", "travel to",
	}
	questionKeywords = []string{
		"what", "how", "why", "when", "where", "who", "which", "can you", "could you", "would you",
	}
	comparisonKeywords = []string{
		"compare", "difference", "better", "best", "versus", "vs", "or",
	}
)

// Greetings match whole words only, so "this" or "hiking" never read as "hi".
// The word list is the same as the substring check it replaces; only the
// boundaries differ.
var greetingPattern = regexp.MustCompile(`\b(?:hi|hello|hey|good morning|good afternoon|good evening|greetings)\b`)

// ClassifyIntent maps a lower-cased message to its primary intent. The first
// matching rule wins.
func ClassifyIntent(message string, ctx ConversationContext) Intent {
	if ctx.FollowUp {
		switch {
		case topicsMatch(ctx.PreviousTopics, budgetKeywords):
			return IntentBudget
		case topicsMatch(ctx.PreviousTopics, suggestionKeywords):
			return IntentSuggestions
		}
	}

	switch {
	case greetingPattern.MatchString(message) && !containsAny(message, questionKeywords):
		return IntentGreeting
	case containsAny(message, budgetKeywords):
		return IntentBudget
	case containsAny(message, suggestionKeywords):
		return IntentSuggestions
	case containsAny(message, itineraryKeywords):
		return IntentItinerary
	case containsAny(message, expenseKeywords):
		return IntentExpenses
	case containsAny(message, weatherKeywords):
		return IntentWeather
	case containsAny(message, packingKeywords):
		return IntentPacking
	case containsAny(message, destinationKeywords):
		return IntentDestinations
	case containsAny(message, comparisonKeywords):
		return IntentSuggestions
	}
	// Open-ended questions and everything else.
	return IntentGeneral
}

// SecondaryIntents lists every topic group the message touches, in fixed order.
func SecondaryIntents(message string) []Intent {
	lower := strings.ToLower(message)
	var intents []Intent
	if containsAny(lower, []string{"budget", "cost", "money"}) {
		intents = append(intents, IntentBudget)
	}
	if containsAny(lower, []string{"suggest", "recommend", "idea"}) {
		intents = append(intents, IntentSuggestions)
	}
	if containsAny(lower, []string{"itinerary", "schedule", "plan"}) {
		intents = append(intents, IntentItinerary)
	}
	if containsAny(lower, []string{"expense", "spent"}) {
		intents = append(intents, IntentExpenses)
	}
	return intents
}

func topicsMatch(topics, vocabulary []string) bool {
	return slices.ContainsFunc(topics, func(t string) bool {
		return slices.Contains(vocabulary, t)
	})
}
