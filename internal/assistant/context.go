package assistant

import (
	"strings"

	"triply/internal/trip"
)

// ContextWindow is how many history entries feed the conversation context.
const ContextWindow = 6

const summaryWindow = 4

var followUpIndicators = []string{
	"that", "this", "it", "them", "those", "also", "and", "what about", "how about",
	"tell me more", "more about", "explain", "elaborate", "can you", "could you",
}

// BuildContext folds the last ContextWindow history entries into a
// ConversationContext. Assistant turns contribute notes keywords and places;
// user turns contribute the full analysis.
func BuildContext(a TextAnalyzer, message string, history []trip.ChatMessage) ConversationContext {
	var ctx ConversationContext
	recent := trip.Recent(history, ContextWindow)

	var assistantKeywords []string
	for _, msg := range recent {
		if !msg.IsUser {
			notes := a.AnalyzeNotes(msg.Text)
			ctx.PreviousTopics = append(ctx.PreviousTopics, notes.Keywords...)
			ctx.MentionedLocations = append(ctx.MentionedLocations, notes.Locations...)
			assistantKeywords = append(assistantKeywords, notes.Keywords...)
			continue
		}
		analysis := a.Analyze(msg.Text)
		ctx.MentionedLocations = append(ctx.MentionedLocations, analysis.Locations...)
		ctx.UserPreferences = append(ctx.UserPreferences, analysis.Preferences...)
		ctx.MentionedAmounts = append(ctx.MentionedAmounts, analysis.Amounts...)
		ctx.PreviousTopics = append(ctx.PreviousTopics, analysis.KeyTopics...)
	}

	ctx.FollowUp = isFollowUp(message, assistantKeywords)
	return ctx
}

// isFollowUp fires on a continuation phrase, or when any word of the message
// was a keyword of an earlier assistant reply.
func isFollowUp(message string, assistantKeywords []string) bool {
	lower := strings.ToLower(message)
	if containsAny(lower, followUpIndicators) {
		return true
	}
	if len(assistantKeywords) == 0 {
		return false
	}
	topics := make(map[string]struct{}, len(assistantKeywords))
	for _, k := range assistantKeywords {
		topics[strings.ToLower(k)] = struct{}{}
	}
	for _, w := range strings.Fields(lower) {
		if _, ok := topics[w]; ok {
			return true
		}
	}
	return false
}

// conversationSummary joins the top three topics of each of the last few user turns.
func conversationSummary(a TextAnalyzer, history []trip.ChatMessage) string {
	var topics []string
	for _, msg := range trip.Recent(history, summaryWindow) {
		if msg.IsUser {
			topics = append(topics, firstN(a.Analyze(msg.Text).KeyTopics, 3)...)
		}
	}
	return strings.Join(topics, ", ")
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
