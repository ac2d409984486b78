package assistant

import (
	"fmt"
	"strings"
	"time"

	"triply/internal/nlp"
	"triply/internal/trip"
)

type InsightType string

const (
	InsightLocation InsightType = "location"
	InsightBudget   InsightType = "budget"
	InsightTip      InsightType = "tip"
	InsightActivity InsightType = "activity"
	InsightWarning  InsightType = "warning"
)

type Priority int

const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
)

func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	}
	return "low"
}

// Insight is a tip card about a trip as a whole.
type Insight struct {
	Type        InsightType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Priority    Priority    `json:"priority"`
	Action      string      `json:"action,omitempty"`
}

// tripInsights builds the cards for a trip from its notes, budget, length,
// category and timing.
func tripInsights(t *trip.Trip, notes nlp.NotesAnalysis, now time.Time, money func(float64) string) []Insight {
	days := t.Duration()
	insights := []Insight{{
		Type:        InsightTip,
		Title:       "Trip: " + t.Name,
		Description: fmt.Sprintf("Your %d-day trip is planned. Here are some personalized recommendations to make it amazing!", days),
		Priority:    PriorityHigh,
	}}

	if n := len(notes.Locations); n > 0 {
		insights = append(insights, Insight{
			Type:  InsightLocation,
			Title: "Location Insights",
			Description: fmt.Sprintf("Found %d %s in your notes: %s. Consider creating dedicated itinerary items for each.",
				n, plural(n, "location"), strings.Join(firstN(notes.Locations, 3), ", ")),
			Priority: PriorityHigh,
			Action:   "Add to Itinerary",
		})
	} else if strings.TrimSpace(t.Notes) != "" {
		insights = append(insights, Insight{
			Type:        InsightLocation,
			Title:       "Add Destinations",
			Description: "Consider adding specific destinations to your trip notes for better planning and recommendations.",
			Priority:    PriorityMedium,
		})
	}

	if notes.Sentiment == nlp.SentimentPositive {
		insights = append(insights, Insight{
			Type:        InsightTip,
			Title:       "Exciting Trip Ahead!",
			Description: "Your notes show enthusiasm. Make sure to capture memories with photos during your trip.",
			Priority:    PriorityMedium,
		})
	}

	insights = append(insights, budgetInsight(t, money))

	switch {
	case days > 14:
		insights = append(insights, Insight{
			Type:        InsightTip,
			Title:       "Extended Trip Tips",
			Description: fmt.Sprintf("For a %d-day trip, consider packing versatile clothing, planning rest days, and booking accommodations in advance.", days),
			Priority:    PriorityMedium,
		})
	case days > 7:
		insights = append(insights, Insight{
			Type:        InsightTip,
			Title:       "Week-Long Trip",
			Description: fmt.Sprintf("For a %d-day trip, pack versatile clothing and plan a mix of activities and relaxation time.", days),
			Priority:    PriorityMedium,
		})
	case days > 3:
		insights = append(insights, Insight{
			Type:        InsightTip,
			Title:       "Short Getaway",
			Description: fmt.Sprintf("For a %d-day trip, focus on 2-3 key experiences. Book popular spots in advance.", days),
			Priority:    PriorityMedium,
		})
	}

	insights = append(insights, categoryInsight(t.NormalizedCategory()))

	switch {
	case t.IsUpcoming(now):
		insights = append(insights, Insight{
			Type:  InsightTip,
			Title: "Upcoming Trip",
			Description: fmt.Sprintf("Your trip starts %s. Make sure your packing list is ready and accommodations are confirmed.",
				daysPhrase(t.DaysUntilStart(now))),
			Priority: PriorityMedium,
		})
	case t.IsCurrent(now):
		insights = append(insights, Insight{
			Type:        InsightTip,
			Title:       "Currently Traveling",
			Description: "You're on your trip now! Track expenses in real-time and capture photos for memories.",
			Priority:    PriorityHigh,
		})
	}
	return insights
}

func budgetInsight(t *trip.Trip, money func(float64) string) Insight {
	if !t.HasBudget() {
		return Insight{
			Type:        InsightBudget,
			Title:       "Set a Budget",
			Description: "Adding a budget helps you track expenses and stay on track financially.",
			Priority:    PriorityLow,
		}
	}
	budget := t.BudgetValue()
	total := t.TotalExpenses()
	remaining := budget - total
	percentage := total * 100 / budget

	switch {
	case percentage > 80:
		tail := "Consider reviewing expenses."
		if remaining > 0 {
			tail = money(remaining) + " remaining."
		}
		return Insight{
			Type:        InsightBudget,
			Title:       "Budget Alert",
			Description: fmt.Sprintf("You've used %d%% of your budget. %s", int(percentage), tail),
			Priority:    PriorityHigh,
			Action:      "View Expenses",
		}
	case percentage > 0:
		return Insight{
			Type:        InsightBudget,
			Title:       "Budget Tracking",
			Description: fmt.Sprintf("You've spent %s of your %s budget. %s remaining.", money(total), money(budget), money(remaining)),
			Priority:    PriorityMedium,
			Action:      "View Expenses",
		}
	}
	return Insight{
		Type:        InsightBudget,
		Title:       "Budget Set",
		Description: fmt.Sprintf("Your budget is %s. Start tracking expenses to stay on budget.", money(budget)),
		Priority:    PriorityMedium,
		Action:      "View Expenses",
	}
}

func categoryInsight(category string) Insight {
	switch category {
	case "business":
		return Insight{
			Type:        InsightTip,
			Title:       "Business Trip Tips",
			Description: "Keep receipts organized for expense reports. Consider time zone differences for meetings. Pack professional attire.",
			Priority:    PriorityMedium,
		}
	case "vacation", "leisure":
		return Insight{
			Type:        InsightTip,
			Title:       "Vacation Mode",
			Description: "Relax and enjoy! Don't over-schedule. Leave time for spontaneous discoveries and local experiences.",
			Priority:    PriorityLow,
		}
	case "adventure":
		return Insight{
			Type:        InsightTip,
			Title:       "Adventure Ready",
			Description: "Check weather conditions and pack appropriate gear. Share your itinerary with someone back home for safety.",
			Priority:    PriorityHigh,
		}
	}
	return Insight{
		Type:        InsightTip,
		Title:       "Trip Planning",
		Description: "Make the most of your trip by planning activities, tracking expenses, and capturing memories.",
		Priority:    PriorityLow,
	}
}
