package trip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

func TestDuration(t *testing.T) {
	tests := []struct {
		name string
		end  time.Time
		want int
	}{
		{"same day", start, 0},
		{"five nights", start.AddDate(0, 0, 5), 5},
		{"partial day rounds down", start.Add(36 * time.Hour), 1},
		{"end before start", start.AddDate(0, 0, -2), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &Trip{StartDate: start, EndDate: tt.end}
			assert.Equal(t, tt.want, tr.Duration())
		})
	}
}

func TestTiming(t *testing.T) {
	tr := &Trip{StartDate: start, EndDate: start.AddDate(0, 0, 3)}

	before := start.AddDate(0, 0, -10)
	assert.True(t, tr.IsUpcoming(before))
	assert.False(t, tr.IsCurrent(before))
	assert.Equal(t, 10, tr.DaysUntilStart(before))
	assert.Zero(t, tr.DaysSinceStart(before))

	during := start.Add(50 * time.Hour)
	assert.True(t, tr.IsCurrent(during))
	assert.False(t, tr.IsUpcoming(during))
	assert.False(t, tr.IsPast(during))
	assert.Equal(t, 2, tr.DaysSinceStart(during))

	// both ends are inclusive
	assert.True(t, tr.IsCurrent(start))
	assert.True(t, tr.IsCurrent(tr.EndDate))

	after := tr.EndDate.Add(time.Hour)
	assert.True(t, tr.IsPast(after))
	assert.False(t, tr.IsCurrent(after))
}

func TestExpandDays(t *testing.T) {
	tr := &Trip{StartDate: start, EndDate: start.AddDate(0, 0, 3)}

	days := tr.ExpandDays()

	require.Len(t, days, 3)
	assert.Equal(t, start, days[0])
	assert.Equal(t, start.AddDate(0, 0, 2), days[2])
	assert.Equal(t, start, tr.DayDate(0))
	assert.Equal(t, start.AddDate(0, 0, 4), tr.DayDate(5))

	assert.Empty(t, (&Trip{StartDate: start, EndDate: start}).ExpandDays())
}

func TestBudget(t *testing.T) {
	tr := &Trip{Expenses: []Expense{{Amount: 120.5}, {Amount: 79.5}}}
	assert.False(t, tr.HasBudget())
	assert.Zero(t, tr.BudgetValue())
	assert.Equal(t, 200.0, tr.TotalExpenses())

	tr.Budget = BudgetPtr(0)
	assert.False(t, tr.HasBudget())

	tr.Budget = BudgetPtr(900)
	assert.True(t, tr.HasBudget())
	assert.Equal(t, 900.0, tr.BudgetValue())
}

func TestClone(t *testing.T) {
	tr := &Trip{
		Name:         "Rome",
		Category:     "  Cultural ",
		Budget:       BudgetPtr(500),
		Expenses:     []Expense{{Title: "Train", Amount: 40}},
		Destinations: []Destination{{Name: "Colosseum"}},
	}

	c := tr.Clone()
	*c.Budget = 1
	c.Expenses[0].Amount = 999
	c.Destinations = append(c.Destinations, Destination{Name: "Vatican"})

	assert.Equal(t, 500.0, *tr.Budget)
	assert.Equal(t, 40.0, tr.Expenses[0].Amount)
	assert.Equal(t, []string{"Colosseum"}, tr.DestinationNames())
	assert.Equal(t, "cultural", tr.NormalizedCategory())
}

func TestRecent(t *testing.T) {
	at := start
	history := []ChatMessage{
		NewUserMessage("one", at),
		NewAssistantMessage("two", at.Add(time.Minute)),
		NewUserMessage("three", at.Add(2*time.Minute)),
	}

	assert.Len(t, Recent(history, 0), 3)
	assert.Len(t, Recent(history, 10), 3)

	last := Recent(history, 2)
	require.Len(t, last, 2)
	assert.Equal(t, "two", last[0].Text)
	assert.False(t, last[0].IsUser)
	assert.Equal(t, "three", last[1].Text)
	assert.NotEqual(t, history[0].ID, history[2].ID)
}
