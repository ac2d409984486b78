package assistant

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// ========== Structured payloads ==========

// StructuredResponse is the reply text plus machine-actionable data the host
// may apply to its own trip state.
type StructuredResponse struct {
	Text           string          `json:"text"`
	StructuredData *StructuredData `json:"structured_data,omitempty"`
}

type StructuredData struct {
	ItineraryItems []StructuredItineraryItem `json:"itinerary_items,omitempty"`
	Suggestions    []StructuredSuggestion    `json:"suggestions,omitempty"`
	Documents      []StructuredDocument      `json:"documents,omitempty"`
	Actions        []StructuredAction        `json:"actions,omitempty"`
}

type StructuredItineraryItem struct {
	ID               string `json:"id"`
	Day              int    `json:"day"`
	Date             string `json:"date,omitempty"`
	Title            string `json:"title"`
	Details          string `json:"details,omitempty"`
	Time             string `json:"time,omitempty"`
	Location         string `json:"location,omitempty"`
	Order            int    `json:"order"`
	IsBooked         bool   `json:"is_booked"`
	BookingReference string `json:"booking_reference,omitempty"`
}

type StructuredSuggestion struct {
	ID          string            `json:"id"`
	Type        string            `json:"type"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Priority    string            `json:"priority,omitempty"`
	Action      string            `json:"action,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type StructuredDocument struct {
	ID            string   `json:"id"`
	Type          string   `json:"type"`
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	FileName      string   `json:"file_name,omitempty"`
	Date          string   `json:"date,omitempty"`
	Amount        *float64 `json:"amount,omitempty"`
	RelatedItemID string   `json:"related_item_id,omitempty"`
}

type StructuredAction struct {
	ID    string            `json:"id"`
	Type  string            `json:"type"`
	Data  map[string]string `json:"data,omitempty"`
	Label string            `json:"label"`
}

// Action tags understood by the host.
const (
	ActionCreateItinerary = "create_itinerary"
	ActionAddDestination  = "add_destination"
	ActionSetBudget       = "set_budget"
	ActionViewBudget      = "view_budget"
)

// NewStructuredResponse attaches structured data only when there is any.
func NewStructuredResponse(text string, items []StructuredItineraryItem, suggestions []StructuredSuggestion, actions []StructuredAction) StructuredResponse {
	resp := StructuredResponse{Text: text}
	if len(items) > 0 || len(suggestions) > 0 || len(actions) > 0 {
		resp.StructuredData = &StructuredData{
			ItineraryItems: items,
			Suggestions:    suggestions,
			Actions:        actions,
		}
	}
	return resp
}

// ========== Suggestion generators ==========

func (g *generator) actionableSuggestions() []StructuredSuggestion {
	var out []StructuredSuggestion
	if len(g.trip.Destinations) == 0 {
		out = append(out, StructuredSuggestion{
			ID:          uuid.NewString(),
			Type:        "location",
			Title:       "Add Destinations",
			Description: "Add destinations to your trip to get personalized suggestions",
			Priority:    "high",
			Action:      ActionAddDestination,
		})
	}
	if len(g.trip.Itinerary) == 0 {
		out = append(out, StructuredSuggestion{
			ID:          uuid.NewString(),
			Type:        "activity",
			Title:       "Create Itinerary",
			Description: "Plan your daily activities for a well-organized trip",
			Priority:    "high",
			Action:      ActionCreateItinerary,
		})
	}
	if !g.trip.HasBudget() {
		out = append(out, StructuredSuggestion{
			ID:          uuid.NewString(),
			Type:        "budget",
			Title:       "Set Budget",
			Description: "Set a budget to track your spending",
			Priority:    "medium",
			Action:      ActionSetBudget,
		})
	}
	return out
}

func (g *generator) budgetSuggestions() []StructuredSuggestion {
	if !g.trip.HasBudget() {
		return nil
	}
	budget := g.trip.BudgetValue()
	daily := budget / float64(g.days())
	return []StructuredSuggestion{{
		ID:          uuid.NewString(),
		Type:        "budget",
		Title:       "Daily Budget: " + g.money(daily),
		Description: fmt.Sprintf("Your daily budget allocation for %d days", g.trip.Duration()),
		Priority:    "medium",
		Action:      ActionViewBudget,
		Metadata: map[string]string{
			"daily": strconv.FormatFloat(daily, 'f', 2, 64),
			"total": strconv.FormatFloat(budget, 'f', 2, 64),
		},
	}}
}

func (g *generator) destinationSuggestions() []StructuredSuggestion {
	var out []StructuredSuggestion
	for _, loc := range firstN(g.ctx.MentionedLocations, 3) {
		out = append(out, StructuredSuggestion{
			ID:          uuid.NewString(),
			Type:        "location",
			Title:       "Add " + loc,
			Description: fmt.Sprintf("Add %s as a destination to your trip", loc),
			Priority:    "medium",
			Action:      ActionAddDestination,
			Metadata:    map[string]string{"location": loc},
		})
	}
	return out
}

func firstN[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
