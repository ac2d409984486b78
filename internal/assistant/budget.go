package assistant

import (
	"fmt"
	"strings"

	"triply/internal/trip"
)

const baseDailyCost = 150.0

// Budget split used in every allocation tip.
const (
	shareAccommodation = 0.4
	shareFood          = 0.3
	shareActivities    = 0.2
	shareEmergency     = 0.1
)

func categoryMultiplier(category string) float64 {
	switch category {
	case "business":
		return 2.0
	case "luxury", "premium":
		return 2.5
	case "budget", "backpacking":
		return 0.6
	case "adventure":
		return 1.3
	}
	return 1.0
}

// estimateBudget is the baseline daily cost scaled by duration and category.
func estimateBudget(t *trip.Trip) float64 {
	return baseDailyCost * float64(t.Duration()) * categoryMultiplier(t.NormalizedCategory())
}

// BudgetTier names the severity bucket for a spend percentage. Thresholds are strict.
type BudgetTier string

const (
	TierAlert     BudgetTier = "alert"
	TierWarning   BudgetTier = "warning"
	TierStatus    BudgetTier = "status"
	TierExcellent BudgetTier = "excellent"
	TierSet       BudgetTier = "set"
)

func TierFor(percentage float64) BudgetTier {
	switch {
	case percentage > 90:
		return TierAlert
	case percentage > 80:
		return TierWarning
	case percentage > 50:
		return TierStatus
	case percentage > 0:
		return TierExcellent
	}
	return TierSet
}

func (g *generator) budget() string {
	t := g.trip
	if !t.HasBudget() {
		return g.unsetBudget()
	}

	budget := t.BudgetValue()
	total := t.TotalExpenses()
	remaining := budget - total
	percentage := total * 100 / budget
	dailySpent := total / float64(g.days())
	dailyBudget := budget / float64(g.days())
	count := len(t.Expenses)

	if len(g.msg.Amounts) > 0 {
		amount := g.msg.Amounts[0]
		fit := fmt.Sprintf("That fits within your remaining budget of %s.", g.money(remaining))
		if amount > remaining {
			fit = fmt.Sprintf("That's more than your remaining %s.", g.money(remaining))
		}
		return fmt.Sprintf("💰 I see you mentioned %s. Let me put that in context: Your current budget is %s, and you've spent %s so far (%d%%). "+
			"%s would represent %d%% of your total budget. %s Would you like me to help you plan how to allocate this amount?",
			g.money(amount), g.money(budget), g.money(total), int(percentage),
			g.money(amount), int(amount*100/budget), fit)
	}

	switch TierFor(percentage) {
	case TierAlert:
		return fmt.Sprintf("⚠️ **Budget Alert!** You've used %d%% of your %s budget, with only %s remaining. "+
			"At your current daily spending rate of %s, you're significantly above your daily budget of %s. "+
			"I'd recommend: 1) Reviewing all expenses to identify areas to cut back, 2) Prioritizing essential items only, "+
			"3) Looking for free or low-cost alternatives. Would you like me to analyze your spending patterns and suggest specific areas to reduce costs?",
			int(percentage), g.money(budget), g.money(remaining), g.money(dailySpent), g.money(dailyBudget))
	case TierWarning:
		relation := "within"
		if dailySpent > dailyBudget {
			relation = "above"
		}
		daysLeft := max(1, t.Duration()-t.DaysSinceStart(g.now))
		return fmt.Sprintf("⚠️ **Budget Warning:** You've used %d%% of your budget (%s of %s), leaving %s. "+
			"Your daily average of %s is %s your daily budget of %s. To stay on track, try to keep future daily spending under %s. "+
			"I can help you create a spending plan for the remainder of your trip.",
			int(percentage), g.money(total), g.money(budget), g.money(remaining),
			g.money(dailySpent), relation, g.money(dailyBudget), g.money(remaining/float64(daysLeft)))
	case TierStatus:
		relation, verdict := "below", "excellent"
		if dailySpent > dailyBudget {
			relation, verdict = "slightly above", "something to watch"
		}
		return fmt.Sprintf("📊 **Budget Status:** You're doing well! You've spent %s (%d%%) of your %s budget, with %s remaining. "+
			"Your daily average of %s is %s your daily budget of %s, which is %s. You have %d %s logged. Keep tracking to maintain this good pace!",
			g.money(total), int(percentage), g.money(budget), g.money(remaining),
			g.money(dailySpent), relation, g.money(dailyBudget), verdict, count, plural(count, "expense"))
	case TierExcellent:
		return fmt.Sprintf("✅ **Excellent Budget Management!** You've only used %d%% of your budget so far (%s of %s), leaving you with %s - "+
			"that's %d%% still available! Your daily average of %s is well below your daily budget of %s, which gives you flexibility. "+
			"You're tracking %d %s - great job staying organized!",
			int(percentage), g.money(total), g.money(budget), g.money(remaining), int(remaining*100/budget),
			g.money(dailySpent), g.money(dailyBudget), count, plural(count, "expense"))
	}
	return fmt.Sprintf("💰 **Budget Set:** Your budget is %s for this %d-day trip, which averages to %s per day. You haven't logged any expenses yet. "+
		"I'd suggest: 1) Start tracking expenses as you spend, 2) Use the receipt scanner for easy logging, 3) Review your spending weekly to stay on track. "+
		"I can also help you break down your budget by category (accommodation, food, activities, etc.) if that would be helpful!",
		g.money(budget), t.Duration(), g.money(dailyBudget))
}

func (g *generator) unsetBudget() string {
	t := g.trip
	var b strings.Builder
	b.WriteString("💡 I notice you haven't set a budget yet for your trip. ")

	if d := t.Duration(); d > 0 {
		estimate := estimateBudget(t)
		category := t.NormalizedCategory()
		fmt.Fprintf(&b, "Based on your %d-day %s trip, I'd estimate you might need around %s total, which breaks down to approximately %s per day. ",
			d, category, g.money(estimate), g.money(estimate/float64(d)))

		switch category {
		case "business":
			b.WriteString("For business trips, typical daily costs include: accommodation ($150-300), meals ($50-100), transportation ($30-80), and incidentals ($20-50). ")
		case "luxury", "premium":
			b.WriteString("For a luxury trip, you might expect: premium accommodations ($300-800/night), fine dining ($100-300/day), private transportation ($100-200/day), and exclusive experiences ($200-500/day). ")
		case "budget", "backpacking":
			b.WriteString("For budget travel, you can typically manage with: hostels or budget hotels ($30-80/night), local food ($20-40/day), public transport ($10-30/day), and free/low-cost activities ($10-30/day). ")
		default:
			fmt.Fprintf(&b, "This estimate includes accommodation, food, transportation, activities, and a buffer for unexpected expenses. "+
				"A good split is %d%% accommodation, %d%% food, %d%% activities and %d%% emergencies. ",
				percent(shareAccommodation), percent(shareFood), percent(shareActivities), percent(shareEmergency))
		}
	}

	b.WriteString("Setting a budget helps you track expenses and stay on track financially. Would you like me to help you create a detailed budget breakdown by category?")
	return b.String()
}

func percent(share float64) int {
	return int(share*100 + 0.5)
}
