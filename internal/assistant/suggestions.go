package assistant

import (
	"fmt"
	"strings"
)

const (
	tipBusiness  = "💼 For your business trip, I recommend: keeping receipts organized for expense reports, planning for time zone differences, packing professional attire, and checking if your hotel has a business center. Also, consider booking restaurants near your meetings!"
	tipVacation  = "🏖️ For a relaxing vacation: don't over-schedule! Leave time for spontaneous discoveries. Try local restaurants, visit markets, take time to just enjoy the moment, and maybe find a nice spot to watch the sunset."
	tipAdventure = "⛰️ Adventure trip tips: Check weather conditions before activities, pack appropriate gear (layers are key!), always share your itinerary with someone back home for safety, and consider travel insurance for adventure activities."
	tipDefault   = "🌟 Make the most of your trip by mixing planned activities with spontaneous exploration. Try local food, talk to locals, capture memories, and don't forget to take breaks!"
)

// suggestions concatenates every applicable advice block.
func (g *generator) suggestions() string {
	t, m := g.trip, g.msg
	var blocks []string

	if len(m.Preferences) > 0 {
		blocks = append(blocks, fmt.Sprintf("🌟 Based on your interest in %s, I'd suggest: 1) Researching local spots that match these interests, "+
			"2) Adding them to your itinerary, 3) Checking reviews and ratings before booking.", strings.Join(m.Preferences, ", ")))
	}
	if len(m.Locations) > 0 {
		blocks = append(blocks, fmt.Sprintf("📍 For %s, I recommend: 1) Checking the best times to visit, 2) Finding nearby attractions, "+
			"3) Looking for local experiences and tours.", strings.Join(m.Locations, ", ")))
	}

	switch t.NormalizedCategory() {
	case "business":
		blocks = append(blocks, tipBusiness)
	case "vacation", "leisure":
		blocks = append(blocks, tipVacation)
	case "adventure":
		blocks = append(blocks, tipAdventure)
	default:
		blocks = append(blocks, tipDefault)
	}

	switch d := t.Duration(); {
	case d > 14:
		blocks = append(blocks, fmt.Sprintf("📅 For your %d-day trip, consider: packing versatile clothing that can be layered, planning rest days (every 3-4 days), "+
			"booking accommodations in advance for better rates, and creating a flexible itinerary that allows for changes.", d))
	case d > 7:
		blocks = append(blocks, "📅 For your week-long trip: pack versatile clothing, plan a mix of activities and relaxation time, "+
			"book popular spots in advance, and leave one day completely unplanned for spontaneity!")
	default:
		blocks = append(blocks, fmt.Sprintf("📅 For your %d-day trip: focus on 2-3 key experiences, book popular spots in advance, pack light, "+
			"and don't try to see everything - quality over quantity!", d))
	}

	if t.HasBudget() {
		daily := t.BudgetValue() / float64(g.days())
		blocks = append(blocks, fmt.Sprintf("💰 With a daily budget of %s, I'd suggest allocating: %d%% for accommodation, %d%% for food and drinks, "+
			"%d%% for activities and experiences, and %d%% for emergencies or souvenirs.",
			g.money(daily), percent(shareAccommodation), percent(shareFood), percent(shareActivities), percent(shareEmergency)))
	} else if n := len(g.ctx.MentionedAmounts); n > 0 {
		blocks = append(blocks, fmt.Sprintf("💰 Based on your mention of %s, that could work well for your trip! "+
			"I'd suggest creating a budget breakdown to see how it fits with your %d-day plan.", g.money(g.ctx.MentionedAmounts[n-1]), t.Duration()))
	}

	if g.ctx.FollowUp && len(g.ctx.PreviousTopics) > 0 {
		blocks = append(blocks, "💡 Following up on our previous discussion, here are some additional ideas that might interest you based on what we talked about.")
	}

	if len(blocks) == 0 {
		return "🌟 I'd be happy to provide suggestions! Could you tell me more about what you're interested in - activities, places to visit, or specific experiences?"
	}
	return strings.Join(blocks, "\n\n")
}
