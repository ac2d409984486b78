package assistant

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"triply/internal/nlp"
)

const (
	maxGeneratedDays = 7
	slotsPerDay      = 2
)

var createKeywords = []string{"create", "generate", "plan", "make", "build", "develop", "detailed"}

var itineraryWords = []string{"itinerary", "schedule", "activities", "plan"}

type activity struct {
	title   string
	details string
}

var activityTables = map[string][]activity{
	"business": {
		{"Business Meeting", "Important business discussion"},
		{"Networking Event", "Connect with industry professionals"},
		{"Client Presentation", "Present your proposal"},
		{"Workshop", "Learn new skills"},
	},
	"vacation": {
		{"Beach Time", "Relax and enjoy the sun"},
		{"Local Market Visit", "Explore local culture and food"},
		{"Sightseeing Tour", "Discover famous landmarks"},
		{"Spa & Relaxation", "Unwind and rejuvenate"},
	},
	"adventure": {
		{"Hiking Adventure", "Explore nature trails"},
		{"Water Sports", "Try exciting water activities"},
		{"Mountain Climbing", "Challenge yourself"},
		{"Wildlife Safari", "See amazing wildlife"},
	},
	"": {
		{"City Tour", "Explore the city highlights"},
		{"Museum Visit", "Learn about local history"},
		{"Local Restaurant", "Try authentic cuisine"},
		{"Shopping", "Find unique souvenirs"},
	},
}

func activitiesFor(category string) []activity {
	if category == "leisure" {
		category = "vacation"
	}
	if table, ok := activityTables[category]; ok {
		return table
	}
	return activityTables[""]
}

func (g *generator) itinerary() string {
	t, m := g.trip, g.msg
	count := len(t.Itinerary)

	if len(m.KeyTopics) > 0 && count == 0 {
		topics := strings.Join(firstN(m.KeyTopics, 2), " and ")
		return fmt.Sprintf("📅 I see you're interested in %s! That's a great start for your itinerary. Based on your %d-day trip, I'd suggest: "+
			"1) Creating activities around %s, 2) Spreading them across different days, 3) Leaving time for spontaneous exploration. "+
			"Would you like me to help you add these to your itinerary?", topics, t.Duration(), topics)
	}

	if count == 0 {
		var b strings.Builder
		fmt.Fprintf(&b, "📅 You haven't added any activities to your itinerary yet. I can help you plan! Based on your %d-day trip, "+
			"I'd suggest creating a balanced schedule with 2-3 activities per day.", t.Duration())
		if len(m.Preferences) > 0 {
			fmt.Fprintf(&b, " I noticed you're interested in %s - we could build activities around those interests!", strings.Join(m.Preferences, ", "))
		}
		b.WriteString(" Would you like me to suggest some activities based on your trip details?")
		return b.String()
	}

	if m.QuestionType == nlp.QuestionTime {
		return fmt.Sprintf("⏰ For timing your activities: I'd suggest spacing them out throughout the day, leaving 2-3 hours between major activities, "+
			"and planning rest periods. You have %d %s planned - that's a good balance for a %d-day trip! "+
			"Would you like help optimizing the timing or adding more activities?", count, activityNoun(count), t.Duration())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📅 Great! You have %d %s planned for your %d-day trip.", count, activityNoun(count), t.Duration())
	perDay := float64(count) / float64(g.days())
	switch {
	case perDay > 3:
		b.WriteString(" That's quite a packed schedule - make sure to leave time for rest and spontaneity!")
	case perDay < 1:
		b.WriteString(" You have room to add more activities if you'd like.")
	default:
		b.WriteString(" That's a nice balanced pace!")
	}
	b.WriteString(" I can help you: 1) Add more activities, 2) Optimize your schedule, 3) Balance activities with free time. What would be most helpful?")
	return b.String()
}

func activityNoun(n int) string {
	if n == 1 {
		return "activity"
	}
	return "activities"
}

// wantsItinerary reports whether placeholder items should accompany the reply.
// Any one of the heuristics is enough.
func (g *generator) wantsItinerary() bool {
	lower := strings.ToLower(g.raw)
	hasCreate := containsAny(lower, createKeywords)

	topicAsksToCreate := func(topics []string) bool {
		for _, topic := range topics {
			if containsAny(strings.ToLower(topic), createKeywords) {
				return true
			}
		}
		return false
	}

	switch {
	case hasCreate, topicAsksToCreate(g.ctx.PreviousTopics), topicAsksToCreate(g.msg.KeyTopics):
		return true
	case containsAny(lower, itineraryWords) && hasCreate:
		return true
	case g.msg.QuestionType == nlp.QuestionMethod:
		return true
	}
	return len(g.trip.Itinerary) == 0
}

func (g *generator) itineraryWithStructure() generated {
	out := generated{text: g.itinerary()}
	if !g.wantsItinerary() {
		return out
	}
	out.items = g.itineraryItems()
	if n := len(out.items); n > 0 {
		out.actions = []StructuredAction{{
			ID:    uuid.NewString(),
			Type:  ActionCreateItinerary,
			Data:  map[string]string{"count": strconv.Itoa(n)},
			Label: fmt.Sprintf("Save %d itinerary items", n),
		}}
	}
	return out
}

// itineraryItems drafts a morning and an afternoon slot for each of the first
// days of the trip.
func (g *generator) itineraryItems() []StructuredItineraryItem {
	days := g.trip.ExpandDays()
	days = days[:min(len(days), maxGeneratedDays)]
	if len(days) == 0 {
		return nil
	}

	locations := g.msg.Locations
	if len(locations) == 0 {
		locations = g.trip.DestinationNames()
	}
	table := activitiesFor(g.trip.NormalizedCategory())

	items := make([]StructuredItineraryItem, 0, len(days)*slotsPerDay)
	for i, start := range days {
		day := i + 1
		date := start.UTC().Format(time.RFC3339)
		for slot, at := range []string{"09:00", "14:00"} {
			act := pick(g.choose, table)
			location := pick(g.choose, locations)
			if location == "" {
				location = "Destination"
			}
			items = append(items, StructuredItineraryItem{
				ID:       uuid.NewString(),
				Day:      day,
				Date:     date,
				Title:    act.title,
				Details:  act.details,
				Time:     at,
				Location: location,
				Order:    (day-1)*slotsPerDay + slot,
			})
		}
	}
	return items
}
