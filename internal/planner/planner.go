// Package planner proposes destination-level suggestions for a trip that is
// still being shaped: what to do there, how to split the money, and tips for
// the trip's length and the traveller's interests.
package planner

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"

	"triply/internal/assistant"
)

type SuggestionType string

const (
	TypeActivity      SuggestionType = "activity"
	TypeTip           SuggestionType = "tip"
	TypeBudget        SuggestionType = "budget"
	TypeAccommodation SuggestionType = "accommodation"
	TypeRestaurant    SuggestionType = "restaurant"
)

const (
	priorityHigh   = assistant.PriorityHigh
	priorityMedium = assistant.PriorityMedium
)

type Request struct {
	Destination string   `json:"destination" binding:"required"`
	Days        int      `json:"days" binding:"gte=0"`
	Budget      *float64 `json:"budget,omitempty"`
	Interests   []string `json:"interests,omitempty"`
}

type Suggestion struct {
	ID          string             `json:"id"`
	Type        SuggestionType     `json:"type"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Priority    assistant.Priority `json:"priority"`
}

// Planner turns a Request into suggestions ordered by priority, highest first.
type Planner interface {
	Suggest(ctx context.Context, req Request) ([]Suggestion, error)
}

func newSuggestion(kind SuggestionType, title, description string, p assistant.Priority) Suggestion {
	return Suggestion{
		ID:          uuid.NewString(),
		Type:        kind,
		Title:       title,
		Description: description,
		Priority:    p,
	}
}

// byPriority sorts in place, keeping insertion order among equal priorities.
func byPriority(s []Suggestion) []Suggestion {
	slices.SortStableFunc(s, func(a, b Suggestion) int {
		return int(b.Priority) - int(a.Priority)
	})
	return s
}

func parsePriority(s string) assistant.Priority {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return assistant.PriorityHigh
	case "medium":
		return assistant.PriorityMedium
	}
	return assistant.PriorityLow
}

func hasInterest(interests []string, want string) bool {
	return slices.ContainsFunc(interests, func(i string) bool {
		return strings.EqualFold(strings.TrimSpace(i), want)
	})
}
