package assistant

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"triply/internal/nlp"
	"triply/internal/trip"
)

// generator holds one turn's inputs. Every reply is computed from these alone.
type generator struct {
	trip   *trip.Trip
	msg    nlp.TextAnalysis
	ctx    ConversationContext
	u      Understanding
	raw    string
	now    time.Time
	choose Chooser
	money  func(float64) string
}

type generated struct {
	text        string
	items       []StructuredItineraryItem
	suggestions []StructuredSuggestion
	actions     []StructuredAction
}

// days is the trip duration used as a divisor; never below one.
func (g *generator) days() int {
	return max(g.trip.Duration(), 1)
}

func (g *generator) generate(intent Intent) generated {
	switch intent {
	case IntentGreeting:
		return generated{text: g.greeting()}
	case IntentBudget:
		return generated{text: g.budget(), suggestions: g.budgetSuggestions()}
	case IntentSuggestions:
		return generated{text: g.suggestions(), suggestions: g.actionableSuggestions()}
	case IntentItinerary:
		return g.itineraryWithStructure()
	case IntentExpenses:
		return generated{text: g.expenses()}
	case IntentWeather:
		return generated{text: g.weather()}
	case IntentPacking:
		return generated{text: g.packing()}
	case IntentDestinations:
		return generated{text: g.destinations(), suggestions: g.destinationSuggestions()}
	}
	return generated{text: g.general()}
}

// ========== Greeting ==========

func (g *generator) greeting() string {
	t := g.trip
	if g.ctx.FollowUp {
		options := []string{
			fmt.Sprintf("Hi again! 👋 I'm here to continue helping with your %s trip. What would you like to explore next?", t.Name),
		}
		if len(g.ctx.PreviousTopics) > 0 {
			options = append(options, fmt.Sprintf("Welcome back! 🌟 I see we were discussing %s. What else can I help you with?",
				strings.Join(firstN(g.ctx.PreviousTopics, 2), " and ")))
		}
		options = append(options, fmt.Sprintf("Great to have you back! 💫 Let's continue planning your amazing %d-day trip to %s. What's on your mind?",
			t.Duration(), t.Name))
		return pick(g.choose, options)
	}

	daysUntil := 0
	if t.IsUpcoming(g.now) {
		daysUntil = t.DaysUntilStart(g.now)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "👋 Hello! I'm your AI trip assistant, and I'm here to help make your %s trip absolutely amazing!", t.Name)
	switch {
	case t.IsUpcoming(g.now) && daysUntil > 0:
		fmt.Fprintf(&b, " Your %d-day adventure starts %s - how exciting!", t.Duration(), daysPhrase(daysUntil))
	case t.IsCurrent(g.now):
		b.WriteString(" You're currently on your trip - I hope it's going wonderfully!")
	default:
		fmt.Fprintf(&b, " I see you're planning a %d-day journey.", t.Duration())
	}
	if t.Budget != nil {
		fmt.Fprintf(&b, " I notice you have a budget of %s set, which is great for planning!", g.money(*t.Budget))
	}
	if len(t.Destinations) > 0 {
		b.WriteString(" You've already added some destinations - excellent start!")
	}
	b.WriteString(" What would you like to work on today? I can help with planning, budgeting, suggestions, itinerary, expenses, packing, and much more!")
	return b.String()
}

// ========== General ==========

var outdoorTopics = []string{"hiking", "outdoor", "nature"}

var capabilities = []string{"planning", "budget tracking", "activity suggestions", "itinerary creation"}

func (g *generator) general() string {
	t, m := g.trip, g.msg

	if len(m.Locations) > 0 {
		return fmt.Sprintf("🗺️ I see you mentioned %s. Those sound like great places! Based on your %d-day trip, I'd suggest: "+
			"1) Adding them to your destinations for better planning, 2) Creating itinerary items for each location, and "+
			"3) Checking weather forecasts for those areas. Would you like me to help you add %s to your trip?",
			strings.Join(m.Locations, ", "), t.Duration(), m.Locations[0])
	}

	if len(m.Amounts) > 0 {
		amount := m.Amounts[0]
		return fmt.Sprintf("💰 I see you mentioned %s. That's helpful context! For your %d-day trip to %s, %s could cover %d days of moderate spending. "+
			"Would you like me to help you create a budget breakdown or track expenses around this amount?",
			g.money(amount), t.Duration(), t.Name, g.money(amount), int(amount/baseDailyCost))
	}

	if len(m.Preferences) > 0 {
		prefs := strings.Join(m.Preferences, ", ")
		return fmt.Sprintf("🌟 I notice you're interested in %s. That's great! For your %s trip, I can help you: 1) Find activities related to %s, "+
			"2) Suggest places that match your interests, and 3) Plan your itinerary around these preferences. What would you like to explore first?",
			prefs, t.Name, prefs)
	}

	switch m.QuestionType {
	case nlp.QuestionCost:
		estimate := estimateBudget(t)
		return fmt.Sprintf("💰 You're asking about costs! For your %d-day trip, I can help estimate expenses. Based on your trip category (%s), "+
			"I'd estimate around %s total, or %s per day. Would you like a detailed breakdown by category?",
			t.Duration(), t.Category, g.money(estimate), g.money(estimate/float64(g.days())))
	case nlp.QuestionTime:
		status := "It's in the past."
		switch {
		case t.IsUpcoming(g.now):
			status = "It's coming up soon!"
		case t.IsCurrent(g.now):
			status = "You're on it now!"
		}
		return fmt.Sprintf("⏰ You're asking about timing! Your trip is %d days, from %s to %s. %s "+
			"I can help you plan activities, create an itinerary, or set reminders. What would be most helpful?",
			t.Duration(), formatDate(t.StartDate), formatDate(t.EndDate), status)
	case nlp.QuestionLocation:
		have := "You haven't added destinations yet."
		if n := len(t.Destinations); n > 0 {
			have = fmt.Sprintf("You have %d %s planned.", n, plural(n, "destination"))
		}
		return fmt.Sprintf("📍 You're asking about locations! %s I can help you: 1) Add new destinations, "+
			"2) Get suggestions for places to visit, 3) Plan activities at your destinations. What would you like to do?", have)
	case nlp.QuestionMethod:
		return fmt.Sprintf("💡 You're asking how to do something! I'm here to guide you. Based on your %s trip, I can help with: "+
			"planning your itinerary, managing your budget, tracking expenses, packing suggestions, and more. What specific aspect would you like help with?", t.Name)
	}

	switch m.Sentiment {
	case nlp.SentimentPositive:
		var b strings.Builder
		fmt.Fprintf(&b, "😊 I can sense your excitement about %s! That's wonderful! ", t.Name)
		if g.u.Personality == PersonalityExploratory {
			b.WriteString("I love that you're curious and want to explore. ")
		}
		fmt.Fprintf(&b, "Based on what you've shared, I'm here to help make your %d-day trip even better. I can assist with: detailed planning, "+
			"budget optimization, activity suggestions, itinerary creation, and personalized recommendations. What would you like to focus on?", t.Duration())
		return b.String()
	case nlp.SentimentNegative:
		return fmt.Sprintf("🤔 I understand you might have some concerns. Don't worry - I'm here to help! For your %s trip, I can help you: "+
			"plan better, manage your budget effectively, find great activities, and ensure everything goes smoothly. "+
			"What specific challenge would you like help with? I'm here to make your trip planning stress-free.", t.Name)
	}

	if len(m.KeyTopics) > 0 {
		topics := strings.Join(firstN(m.KeyTopics, 3), ", ")
		var b strings.Builder
		fmt.Fprintf(&b, "💭 I see you're interested in %s. That's great context for your %s trip! ", topics, t.Name)
		if slices.ContainsFunc(m.KeyTopics, func(k string) bool { return slices.Contains(outdoorTopics, k) }) {
			b.WriteString("For outdoor activities, I'd recommend checking weather conditions and packing appropriate gear. ")
		}
		fmt.Fprintf(&b, "Based on this, I can help you: 1) Find activities related to %s, 2) Plan your itinerary around these interests, "+
			"3) Get personalized suggestions. What would you like to explore?", topics)
		return b.String()
	}

	if len(g.ctx.PreviousTopics) > 0 && g.u.ConversationSummary != "" {
		return fmt.Sprintf("💡 Following up on our conversation about %s, I'm here to help with your %s trip. I can assist with planning, "+
			"budget tracking, suggestions, itinerary, expenses, weather, packing, and more. What specific aspect would you like to explore further?",
			strings.Join(firstN(g.ctx.PreviousTopics, 2), " and "), t.Name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🤔 I'm here to help! Based on your %s trip, I can assist with: %s, and much more. ", t.Name, strings.Join(capabilities, ", "))
	switch g.u.Personality {
	case PersonalityDetailed:
		b.WriteString("Since you like detailed information, I can provide comprehensive breakdowns and analysis. ")
	case PersonalityDirect:
		b.WriteString("I'll keep my responses concise and actionable. ")
	}
	b.WriteString("What specific aspect would you like to know about?")
	return b.String()
}
