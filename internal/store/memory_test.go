package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triply/internal/assistant"
	"triply/internal/nlp"
	"triply/internal/store"
	"triply/internal/trip"
)

var start = time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

func newTrip(name string) *trip.Trip {
	return &trip.Trip{Name: name, Category: "vacation", StartDate: start, EndDate: start.AddDate(0, 0, 4)}
}

func TestMemoryStore_CRUD(t *testing.T) {
	ctx := context.Background()
	s, err := store.NewMemoryStore("", nil)
	require.NoError(t, err)

	tr := newTrip("Lisbon")
	require.NoError(t, s.CreateTrip(ctx, tr))
	assert.NotEmpty(t, tr.ID)
	assert.False(t, tr.CreatedAt.IsZero())

	got, err := s.GetTrip(ctx, tr.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", got.Name)

	// Returned trips are copies.
	got.Name = "changed"
	again, err := s.GetTrip(ctx, tr.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", again.Name)

	updated, err := s.UpdateTrip(ctx, tr.ID, func(t *trip.Trip) error {
		t.Name = "Porto"
		t.ID = "ignored"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Porto", updated.Name)
	assert.Equal(t, tr.ID, updated.ID)
	assert.Equal(t, tr.CreatedAt, updated.CreatedAt)

	list, err := s.ListTrips(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, s.DeleteTrip(ctx, tr.ID))
	_, err = s.GetTrip(ctx, tr.ID)
	assert.True(t, errors.Is(err, store.ErrTripNotFound))
	assert.ErrorIs(t, s.DeleteTrip(ctx, tr.ID), store.ErrTripNotFound)
}

func TestMemoryStore_UpdateErrorLeavesTripAlone(t *testing.T) {
	ctx := context.Background()
	s, err := store.NewMemoryStore("", nil)
	require.NoError(t, err)
	tr := newTrip("Oslo")
	require.NoError(t, s.CreateTrip(ctx, tr))

	boom := errors.New("boom")
	_, err = s.UpdateTrip(ctx, tr.ID, func(t *trip.Trip) error {
		t.Name = "half-done"
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := s.GetTrip(ctx, tr.ID)
	require.NoError(t, err)
	assert.Equal(t, "Oslo", got.Name)

	_, err = s.UpdateTrip(ctx, "missing", func(*trip.Trip) error { return nil })
	assert.ErrorIs(t, err, store.ErrTripNotFound)
}

func TestMemoryStore_Messages(t *testing.T) {
	ctx := context.Background()
	s, err := store.NewMemoryStore("", nil)
	require.NoError(t, err)
	tr := newTrip("Rome")
	require.NoError(t, s.CreateTrip(ctx, tr))

	empty, err := s.Messages(ctx, tr.ID, 0)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for i, text := range []string{"one", "two", "three"} {
		msg := trip.NewUserMessage(text, start.Add(time.Duration(i)*time.Minute))
		require.NoError(t, s.AppendMessages(ctx, tr.ID, msg))
	}

	last, err := s.Messages(ctx, tr.ID, 2)
	require.NoError(t, err)
	require.Len(t, last, 2)
	assert.Equal(t, "two", last[0].Text)
	assert.Equal(t, "three", last[1].Text)
	assert.Equal(t, tr.ID, last[0].TripID)

	assert.ErrorIs(t, s.AppendMessages(ctx, "missing", trip.NewUserMessage("x", start)), store.ErrTripNotFound)
	_, err = s.Messages(ctx, "missing", 0)
	assert.ErrorIs(t, err, store.ErrTripNotFound)

	require.NoError(t, s.DeleteTrip(ctx, tr.ID))
	require.NoError(t, s.CreateTrip(ctx, tr))
	fresh, err := s.Messages(ctx, tr.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, fresh)
}

func TestMemoryStore_PersistsToFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "trips.json")

	s, err := store.NewMemoryStore(path, nil)
	require.NoError(t, err)
	tr := newTrip("Kyoto")
	tr.Budget = trip.BudgetPtr(1200)
	require.NoError(t, s.CreateTrip(ctx, tr))
	require.NoError(t, s.AppendMessages(ctx, tr.ID, trip.NewUserMessage("hello", start)))

	reopened, err := store.NewMemoryStore(path, nil)
	require.NoError(t, err)
	got, err := reopened.GetTrip(ctx, tr.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kyoto", got.Name)
	assert.Equal(t, 1200.0, got.BudgetValue())

	msgs, err := reopened.Messages(ctx, tr.ID, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "hello", msgs[0].Text)
}

func TestSaveItineraryItems(t *testing.T) {
	ctx := context.Background()
	s, err := store.NewMemoryStore("", nil)
	require.NoError(t, err)
	tr := newTrip("Kyoto")
	tr.Itinerary = []trip.ItineraryItem{{ID: "existing", Day: 1, Title: "Check in", Order: 0}}
	require.NoError(t, s.CreateTrip(ctx, tr))

	items := []assistant.StructuredItineraryItem{
		{ID: "a", Day: 1, Date: "2026-07-01T00:00:00Z", Time: "09:00", Title: "City Tour", Location: "Kyoto", Order: 0},
		{ID: "b", Day: 2, Date: "not a date", Time: "14:00", Title: "Museum Visit", Order: 1},
		{ID: "c", Day: 2, Title: "  "},
	}
	got, err := store.SaveItineraryItems(ctx, s, tr.ID, items)
	require.NoError(t, err)

	require.Len(t, got.Itinerary, 3)
	assert.Equal(t, "City Tour", got.Itinerary[1].Title)
	assert.Equal(t, 1, got.Itinerary[1].Order)
	assert.Equal(t, start, got.Itinerary[1].Date)
	assert.Equal(t, start.AddDate(0, 0, 1), got.Itinerary[2].Date)
	assert.Equal(t, 2, got.Itinerary[2].Order)
	assert.NotEqual(t, "b", got.Itinerary[2].ID)
}

func TestSaveSuggestion(t *testing.T) {
	ctx := context.Background()
	s, err := store.NewMemoryStore("", nil)
	require.NoError(t, err)
	tr := newTrip("Peru")
	require.NoError(t, s.CreateTrip(ctx, tr))

	add := assistant.StructuredSuggestion{
		Title:    "Add Cusco",
		Action:   assistant.ActionAddDestination,
		Metadata: map[string]string{"location": "Cusco"},
	}
	got, err := store.SaveSuggestion(ctx, s, tr.ID, add)
	require.NoError(t, err)
	require.Len(t, got.Destinations, 1)
	assert.Equal(t, "Cusco", got.Destinations[0].Name)

	// Adding the same place twice is a no-op.
	add.Metadata = nil
	got, err = store.SaveSuggestion(ctx, s, tr.ID, add)
	require.NoError(t, err)
	assert.Len(t, got.Destinations, 1)

	got, err = store.SaveSuggestion(ctx, s, tr.ID, assistant.StructuredSuggestion{
		Action:   assistant.ActionSetBudget,
		Metadata: map[string]string{"amount": "2500"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2500.0, got.BudgetValue())

	_, err = store.SaveSuggestion(ctx, s, tr.ID, assistant.StructuredSuggestion{Action: assistant.ActionSetBudget})
	assert.ErrorIs(t, err, store.ErrNotApplicable)

	_, err = store.SaveSuggestion(ctx, s, tr.ID, assistant.StructuredSuggestion{Action: assistant.ActionViewBudget})
	assert.ErrorIs(t, err, store.ErrNotApplicable)

	_, err = store.SaveSuggestion(ctx, s, "missing", add)
	assert.ErrorIs(t, err, store.ErrTripNotFound)
}

func TestSaveReceipt(t *testing.T) {
	ctx := context.Background()
	s, err := store.NewMemoryStore("", nil)
	require.NoError(t, err)
	tr := newTrip("Lima")
	require.NoError(t, s.CreateTrip(ctx, tr))

	logged := start.Add(3 * time.Hour)
	got, err := store.SaveReceipt(ctx, s, tr.ID, nlp.ParseReceipt("Central\nTotal $86.40"), "Food", logged)
	require.NoError(t, err)
	require.Len(t, got.Expenses, 1)
	assert.Equal(t, "Central", got.Expenses[0].Title)
	assert.Equal(t, 86.40, got.Expenses[0].Amount)
	assert.Equal(t, "Food", got.Expenses[0].Category)
	assert.Equal(t, logged, got.Expenses[0].Date)

	got, err = store.SaveReceipt(ctx, s, tr.ID, nlp.ParseReceipt("\n07/03/2026 taxi 12.00"), "Transport", logged)
	require.NoError(t, err)
	require.Len(t, got.Expenses, 2)
	assert.Equal(t, "Receipt", got.Expenses[1].Title)
	assert.Equal(t, time.Date(2026, 7, 3, 0, 0, 0, 0, time.UTC), got.Expenses[1].Date)

	_, err = store.SaveReceipt(ctx, s, tr.ID, nlp.ParseReceipt("thank you for visiting"), "Food", logged)
	assert.ErrorIs(t, err, store.ErrNotApplicable)
}
