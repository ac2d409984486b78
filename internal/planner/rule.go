package planner

import (
	"context"
	"fmt"
	"strings"
)

const (
	shortTripDays    = 3
	extendedTripDays = 7
)

var budgetSplit = []struct {
	label string
	share float64
}{
	{"Accommodation", 0.4},
	{"Food", 0.3},
	{"Activities", 0.2},
	{"Emergency", 0.1},
}

// RulePlanner works offline from fixed city knowledge.
type RulePlanner struct {
	money func(float64) string
}

// NewRulePlanner formats amounts with money; nil uses whole dollars.
func NewRulePlanner(money func(float64) string) *RulePlanner {
	if money == nil {
		money = func(v float64) string { return fmt.Sprintf("$%.0f", v) }
	}
	return &RulePlanner{money: money}
}

func (p *RulePlanner) Suggest(_ context.Context, req Request) ([]Suggestion, error) {
	out := []Suggestion{cityActivity(req.Destination)}

	if req.Budget != nil {
		b := *req.Budget
		var lines strings.Builder
		fmt.Fprintf(&lines, "With a budget of %s, consider allocating:", p.money(b))
		for _, s := range budgetSplit {
			fmt.Fprintf(&lines, "\n• %s: %s", s.label, p.money(b*s.share))
		}
		out = append(out, newSuggestion(TypeBudget, "Budget Optimization", lines.String(), priorityHigh))
	}

	switch {
	case req.Days <= shortTripDays:
		out = append(out, newSuggestion(TypeTip, "Short Trip Tips",
			fmt.Sprintf("For a %d-day trip, focus on 2-3 key experiences. Book accommodations in advance and plan activities close to each other.", req.Days),
			priorityMedium))
	case req.Days >= extendedTripDays:
		out = append(out, newSuggestion(TypeTip, "Extended Stay Tips",
			fmt.Sprintf("With %d days, you can explore multiple areas. Consider a mix of guided tours and free exploration time.", req.Days),
			priorityMedium))
	}

	if hasInterest(req.Interests, "culture") {
		out = append(out, newSuggestion(TypeActivity, "Cultural Experiences",
			"Visit local museums, historical sites, and attend cultural events. Check local event calendars for festivals during your stay.",
			priorityHigh))
	}
	if hasInterest(req.Interests, "adventure") {
		out = append(out, newSuggestion(TypeActivity, "Adventure Activities",
			"Look for hiking trails, water sports, or adventure parks. Book in advance during peak seasons.",
			priorityHigh))
	}
	return byPriority(out), nil
}

func cityActivity(destination string) Suggestion {
	lower := strings.ToLower(destination)
	switch {
	case strings.Contains(lower, "paris"):
		return newSuggestion(TypeActivity, "Eiffel Tower Visit",
			"Book tickets in advance. Best views at sunset. Consider the Seine river cruise.", priorityHigh)
	case strings.Contains(lower, "tokyo"):
		return newSuggestion(TypeActivity, "Shibuya & Harajuku",
			"Experience modern Tokyo culture. Visit Meiji Shrine and explore local street food.", priorityHigh)
	case strings.Contains(lower, "new york"), strings.Contains(lower, "nyc"):
		return newSuggestion(TypeActivity, "Central Park & Museums",
			"Explore Central Park, visit the MET or MoMA. Consider a Broadway show.", priorityHigh)
	}
	return newSuggestion(TypeActivity, "Local Exploration",
		"Research top attractions, local restaurants, and hidden gems. Check reviews and book popular spots in advance.", priorityMedium)
}
