package assistant

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triply/internal/nlp"
	"triply/internal/trip"
)

var testNow = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

func newGenerator(t *trip.Trip, message string) *generator {
	a := nlp.NewAnalyzer(nil)
	return &generator{
		trip:   t,
		msg:    a.Analyze(message),
		raw:    message,
		now:    testNow,
		choose: FirstChoice,
		money:  mustCurrencyFormatter(DefaultCurrency).Format,
	}
}

func tripOf(category string, days int) *trip.Trip {
	start := testNow.AddDate(0, 0, 14)
	return &trip.Trip{
		Name:      "Test",
		Category:  category,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, days),
	}
}

func TestBudget_WithoutBudgetNeverDividesByZero(t *testing.T) {
	money := mustCurrencyFormatter(DefaultCurrency).Format
	for _, category := range []string{"business", "luxury", "backpacking", "adventure", "vacation", ""} {
		for days := 0; days <= 30; days++ {
			tr := tripOf(category, days)
			if days%2 == 0 {
				tr.Budget = trip.BudgetPtr(0)
			}
			text := newGenerator(tr, "what's my budget?").budget()
			assert.NotContains(t, text, "NaN")
			assert.NotContains(t, text, "Inf")
			if days > 0 {
				assert.Contains(t, text, money(estimateBudget(tr)), "%s/%d", category, days)
			}
		}
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		pct  float64
		want BudgetTier
	}{
		{0, TierSet},
		{0.5, TierExcellent},
		{50, TierExcellent},
		{50.01, TierStatus},
		{80, TierStatus},
		{80.5, TierWarning},
		{90, TierWarning},
		{90.1, TierAlert},
		{150, TierAlert},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TierFor(tt.pct), "%v%%", tt.pct)
	}
}

func TestBudget_TierHeadlines(t *testing.T) {
	tests := []struct {
		spent float64
		want  string
	}{
		{0, "Budget Set"},
		{500, "Excellent Budget Management"},
		{800, "Budget Status"},
		{900, "Budget Warning"},
		{950, "Budget Alert"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			tr := tripOf("vacation", 5)
			tr.Budget = trip.BudgetPtr(1000)
			if tt.spent > 0 {
				tr.Expenses = []trip.Expense{{ID: "e", Amount: tt.spent}}
			}
			text := newGenerator(tr, "budget?").budget()
			assert.Contains(t, text, tt.want)
			for _, other := range tests {
				if other.want != tt.want {
					assert.NotContains(t, text, other.want)
				}
			}
		})
	}
}

func TestBudget_MentionedAmount(t *testing.T) {
	tr := tripOf("vacation", 4)
	tr.Budget = trip.BudgetPtr(1000)
	tr.Expenses = []trip.Expense{{ID: "e", Amount: 400}}

	text := newGenerator(tr, "Can I spend $700 on a tour?").budget()
	assert.Contains(t, text, "I see you mentioned $700.00")
	assert.Contains(t, text, "70% of your total budget")
	assert.Contains(t, text, "more than your remaining $600.00")
}

func TestSuggestions_Blocks(t *testing.T) {
	tr := tripOf("adventure", 5)
	g := newGenerator(tr, "I love hiking and beaches")

	text := g.suggestions()
	blocks := strings.Split(text, "\n\n")
	require.Len(t, blocks, 3)
	assert.Contains(t, blocks[0], "Based on your interest in hiking")
	assert.Equal(t, tipAdventure, blocks[1])
	assert.Contains(t, blocks[2], "For your 5-day trip")
}

func TestSuggestions_BudgetAndFollowUp(t *testing.T) {
	tr := tripOf("", 10)
	tr.Budget = trip.BudgetPtr(2000)
	g := newGenerator(tr, "more ideas")
	g.ctx = ConversationContext{FollowUp: true, PreviousTopics: []string{"museums"}}

	text := g.suggestions()
	assert.Contains(t, text, tipDefault)
	assert.Contains(t, text, "week-long trip")
	assert.Contains(t, text, "daily budget of $200.00")
	assert.Contains(t, text, "40% for accommodation")
	assert.Contains(t, text, "Following up on our previous discussion")
}

func TestSuggestions_MentionedAmountWithoutBudget(t *testing.T) {
	g := newGenerator(tripOf("business", 3), "ideas please")
	g.ctx = ConversationContext{MentionedAmounts: []float64{300, 1200}}

	text := g.suggestions()
	assert.Contains(t, text, tipBusiness)
	assert.Contains(t, text, "Based on your mention of $1,200.00")
}

func TestActionableSuggestions(t *testing.T) {
	tr := tripOf("vacation", 4)
	tr.Budget = trip.BudgetPtr(800)
	g := newGenerator(tr, "ideas")

	out := g.actionableSuggestions()
	require.NotEmpty(t, out)
	for _, s := range out {
		assert.NotEmpty(t, s.ID)
		assert.NotEmpty(t, s.Title)
	}
}

func TestDestinationSuggestions(t *testing.T) {
	g := newGenerator(tripOf("vacation", 4), "where next")
	g.ctx = ConversationContext{MentionedLocations: []string{"Lima", "Cusco", "Arequipa", "Puno"}}

	out := g.destinationSuggestions()
	require.Len(t, out, 3)
	for i, name := range []string{"Lima", "Cusco", "Arequipa"} {
		assert.Contains(t, out[i].Title, name)
	}
}

func TestGreeting_FollowUpSkipsEmptyTopics(t *testing.T) {
	tr := tripOf("vacation", 3)
	tr.Name = "Lisbon"
	last := func(n int) int { return n - 1 }

	g := newGenerator(tr, "hi again")
	g.ctx = ConversationContext{FollowUp: true}
	g.choose = last
	assert.True(t, strings.HasPrefix(g.greeting(), "Great to have you back!"))

	g.choose = func(n int) int { return 1 }
	assert.True(t, strings.HasPrefix(g.greeting(), "Great to have you back!"))

	g.ctx.PreviousTopics = []string{"museums", "food"}
	assert.Equal(t, "Welcome back! 🌟 I see we were discussing museums and food. What else can I help you with?", g.greeting())
}

func TestTripState(t *testing.T) {
	tr := tripOf("vacation", 4)
	tr.Expenses = []trip.Expense{{ID: "a", Amount: 120}, {ID: "b", Amount: 80}}
	tr.PackingList = []trip.PackingItem{{ID: "p1", Name: "Socks", Packed: true}, {ID: "p2", Name: "Charger"}}
	tr.Destinations = []trip.Destination{{ID: "d1", Name: "Porto"}}

	g := newGenerator(tr, "status")
	assert.Contains(t, g.expenses(), "$200.00")
	assert.NotEmpty(t, g.weather())
	assert.NotEmpty(t, g.packing())
	assert.Contains(t, g.destinations(), "Porto")
}

func TestGenerate_EveryIntentProducesText(t *testing.T) {
	intents := []Intent{
		IntentGreeting, IntentBudget, IntentSuggestions, IntentItinerary, IntentExpenses,
		IntentWeather, IntentPacking, IntentDestinations, IntentGeneral,
	}
	for _, days := range []int{0, 1, 9, 20} {
		for _, intent := range intents {
			g := newGenerator(tripOf("", days), "tell me something")
			out := g.generate(intent)
			assert.NotEmpty(t, out.text, fmt.Sprintf("%s/%d", intent, days))
		}
	}
}
