package assistant

import (
	"strings"
)

var (
	friendlyPrefixes    = []string{"Great question! ", "That's a good question! ", "I'd be happy to help! ", ""}
	analyticalPrefixes  = []string{"Let me break this down for you: ", "Here's my analysis: ", "Let me think through this: "}
	encouragingPrefixes = []string{"That's great! ", "Wonderful question! ", "I love that you're thinking about this! "}
	exploratoryPrompts  = []string{
		" Would you like me to elaborate on any of this?",
		" Is there a specific aspect you'd like to explore further?",
		" What other questions do you have about this?",
		" Would you like more details on any particular point?",
	}
	professionalRewrites = strings.NewReplacer("I'd", "I would", "don't", "do not", "can't", "cannot")
)

const (
	urgentPreface     = "I understand this is important and time-sensitive. "
	relaxedReassure   = " No rush - take your time to think it over."
	maxOfferedIntents = 2
)

// Enhance frames a generated reply for the user's style, personality and
// urgency. It only adds or rewrites framing; facts in base are kept verbatim.
func Enhance(base string, u Understanding, choose Chooser) string {
	if choose == nil {
		choose = FirstChoice
	}
	resp := base

	switch u.Style {
	case StyleFriendly:
		if !strings.HasPrefix(resp, "😊") && !strings.HasPrefix(resp, "🌟") && !strings.HasPrefix(resp, "Great") {
			resp = pick(choose, friendlyPrefixes) + resp
		}
	case StyleAnalytical:
		if !containsAny(resp, []string{"Based on", "Let me", "I'd suggest"}) {
			resp = pick(choose, analyticalPrefixes) + resp
		}
	case StyleEncouraging:
		if !containsAny(resp, []string{"!", "great", "wonderful"}) {
			resp = pick(choose, encouragingPrefixes) + resp
		}
	case StyleProfessional:
		resp = professionalRewrites.Replace(resp)
	}

	if u.Personality == PersonalityExploratory && !strings.Contains(resp, "?") {
		resp += pick(choose, exploratoryPrompts)
	}

	switch u.Urgency {
	case UrgencyUrgent:
		resp = urgentPreface + resp
	case UrgencyRelaxed:
		if !strings.Contains(resp, "take your time") {
			resp += relaxedReassure
		}
	}

	if len(u.SecondaryIntents) > 1 {
		labels := make([]string, 0, maxOfferedIntents)
		for _, i := range firstN(u.SecondaryIntents, maxOfferedIntents) {
			labels = append(labels, i.Label())
		}
		resp += " I can also help with " + strings.Join(labels, " and ") + " if you'd like."
	}
	return resp
}
