package assistant

import (
	"fmt"
	"strings"
)

// ========== Expenses ==========

func (g *generator) expenses() string {
	t, m := g.trip, g.msg
	count := len(t.Expenses)
	total := t.TotalExpenses()

	if len(m.Amounts) > 0 {
		amount := m.Amounts[0]
		var b strings.Builder
		fmt.Fprintf(&b, "💰 I see you mentioned %s. ", g.money(amount))
		if count > 0 {
			fmt.Fprintf(&b, "You've already logged %d %s totaling %s. ", count, plural(count, "expense"), g.money(total))
			if t.HasBudget() {
				newTotal := total + amount
				fmt.Fprintf(&b, "If you add this expense, you'll have spent %s (%d%% of your budget). ",
					g.money(newTotal), int(newTotal*100/t.BudgetValue()))
			}
		}
		b.WriteString("Would you like to add this as a new expense, or are you asking about how this amount fits into your budget?")
		return b.String()
	}

	if count == 0 {
		var b strings.Builder
		b.WriteString("💳 You haven't logged any expenses yet. ")
		if t.Budget != nil {
			fmt.Fprintf(&b, "With your budget of %s, tracking expenses will help you stay on track. ", g.money(*t.Budget))
		}
		b.WriteString("I can help you: 1) Add expenses manually, 2) Scan receipts for automatic entry, 3) Categorize expenses, " +
			"4) Track spending against your budget. Would you like to get started?")
		return b.String()
	}

	categories := make(map[string]struct{})
	largest := t.Expenses[0]
	for _, e := range t.Expenses {
		categories[strings.ToLower(e.Category)] = struct{}{}
		if e.Amount > largest.Amount {
			largest = e
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "💳 **Expense Summary:** You've logged %d %s totaling %s. ", count, plural(count, "expense"), g.money(total))
	fmt.Fprintf(&b, "That's an average of %s per expense. ", g.money(total/float64(count)))
	if len(categories) > 1 {
		fmt.Fprintf(&b, "You've spent across %d different categories, which shows good variety in your spending. ", len(categories))
	}
	fmt.Fprintf(&b, "Your largest expense was %s for %s. ", g.money(largest.Amount), largest.Title)
	if t.HasBudget() {
		fmt.Fprintf(&b, "You've used %d%% of your %s budget. ", int(total*100/t.BudgetValue()), g.money(t.BudgetValue()))
	}
	b.WriteString("Would you like me to: 1) Analyze your spending patterns, 2) Show category breakdowns, 3) Suggest ways to optimize spending?")
	return b.String()
}

// ========== Weather ==========

func (g *generator) weather() string {
	t := g.trip
	switch {
	case t.IsUpcoming(g.now):
		daysUntil := t.DaysUntilStart(g.now)
		var b strings.Builder
		fmt.Fprintf(&b, "🌤️ Your trip starts %s! ", daysPhrase(daysUntil))
		if daysUntil <= 7 {
			b.WriteString("I highly recommend checking the weather forecast for your destinations now - this is crucial for last-minute packing decisions. ")
		} else {
			b.WriteString("I recommend checking the weather forecast for your destinations. ")
		}
		b.WriteString("This will help you: 1) Pack appropriately for the conditions, 2) Plan outdoor activities on good weather days, 3) Adjust your itinerary if needed. ")
		if len(t.Destinations) > 1 {
			b.WriteString("Since you're visiting multiple destinations, weather can vary significantly between locations. ")
		}
		b.WriteString("You can view detailed forecasts in the Weather tab!")
		return b.String()
	case t.IsCurrent(g.now):
		return "🌤️ You're on your trip now! Check the weather tab for current conditions and forecasts. This helps you plan your daily activities " +
			"and decide what to do each day. Pro tip: Check the weather each morning to plan your day accordingly. Stay safe and enjoy your adventure!"
	}
	return "🌤️ For weather information, check the Weather tab in your trip details. It shows forecasts for all your destinations! " +
		"This is especially helpful for: 1) Planning what to pack, 2) Deciding which activities to schedule, 3) Preparing for any weather-related challenges. " +
		"Would you like help planning around weather conditions?"
}

// ========== Packing ==========

const itemsPerDayHeuristic = 3

func (g *generator) packing() string {
	t := g.trip
	count := len(t.PackingList)

	if count == 0 {
		category := t.Category
		if strings.TrimSpace(category) == "" {
			category = "Other"
		}
		var b strings.Builder
		fmt.Fprintf(&b, "🧳 You haven't created a packing list yet. I can help! Based on your %d-day %s trip to %s, here's my approach: ",
			t.Duration(), t.NormalizedCategory(), t.Name)
		b.WriteString("1) **Check weather first** - This determines what you'll actually need. ")
		fmt.Fprintf(&b, "2) **Consider your trip type** - %s trips have specific requirements. ", category)
		b.WriteString("3) **Think about activities** - What will you be doing? ")
		switch t.NormalizedCategory() {
		case "business":
			b.WriteString("For business trips, prioritize: professional attire, comfortable shoes for walking, a good bag for documents, and adapters for your devices. ")
		case "adventure":
			b.WriteString("For adventure trips, think about: layers for changing weather, sturdy footwear, safety gear, and backup supplies. ")
		case "vacation", "leisure":
			b.WriteString("For vacation, focus on: versatile clothing, comfortable shoes, swimwear if applicable, and items for relaxation. ")
		}
		b.WriteString("Would you like me to suggest some essential items based on your trip details?")
		return b.String()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🧳 Great! You have %d %s on your packing list. ", count, plural(count, "item"))
	switch {
	case count > t.Duration()*itemsPerDayHeuristic:
		fmt.Fprintf(&b, "That's quite a lot of items for a %d-day trip - you might want to consider packing lighter for easier travel. ", t.Duration())
	case count < t.Duration():
		b.WriteString("That's a minimal list - make sure you have all the essentials covered! ")
	default:
		b.WriteString("That's a good amount for your trip duration. ")
	}
	b.WriteString("Before finalizing: 1) Check the weather forecast to ensure you're prepared, 2) Consider your planned activities, " +
		"3) Think about versatility - can items serve multiple purposes? ")
	b.WriteString("Need help: adding more items, organizing by category, or creating a checklist?")
	return b.String()
}

// ========== Destinations ==========

func (g *generator) destinations() string {
	t, m := g.trip, g.msg
	count := len(t.Destinations)

	if len(m.Locations) > 0 {
		locs := strings.Join(m.Locations, ", ")
		var b strings.Builder
		fmt.Fprintf(&b, "📍 I see you mentioned %s! Those sound like great places to visit. ", locs)
		if count > 0 {
			fmt.Fprintf(&b, "You already have %d %s planned. ", count, plural(count, "destination"))
		}
		fmt.Fprintf(&b, "I can help you: 1) **Add %s to your destinations** - This will enable better planning and recommendations, "+
			"2) **Find activities at these locations** - I can suggest things to do, places to see, and experiences to have, "+
			"3) **Plan your itinerary around them** - We can create a schedule that makes the most of your time there. ", locs)
		if count > 0 {
			fmt.Fprintf(&b, "Would you like to see how %s fits with your existing destinations?", locs)
		} else {
			fmt.Fprintf(&b, "Would you like to start by adding %s to your trip?", locs)
		}
		return b.String()
	}

	if count == 0 {
		var b strings.Builder
		b.WriteString("📍 You haven't added any destinations yet. Adding destinations is one of the most important steps in trip planning because it helps me: ")
		b.WriteString("1) Provide location-specific recommendations, 2) Help with itinerary planning, 3) Suggest activities and experiences, " +
			"4) Check weather forecasts, 5) Estimate travel times and costs. ")
		if len(m.Preferences) > 0 {
			fmt.Fprintf(&b, "I noticed you're interested in %s - I can suggest destinations that match these interests! ", strings.Join(m.Preferences, ", "))
		}
		b.WriteString("Would you like help finding places to visit, or do you already have some destinations in mind?")
		return b.String()
	}

	more := ""
	if count > 3 {
		more = " and more"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "📍 You're visiting %d %s: %s%s. Great planning! ", count, plural(count, "destination"),
		strings.Join(firstN(t.DestinationNames(), 3), ", "), more)
	if count > 3 {
		b.WriteString("That's quite an ambitious itinerary - make sure to allow enough time at each place to truly experience them. ")
	}
	b.WriteString("I can help you: 1) **Get suggestions for activities** at these locations, 2) **Plan your itinerary** to optimize your time, " +
		"3) **Find the best times to visit** each place, 4) **Estimate travel between destinations**. What would you like to focus on?")
	return b.String()
}
