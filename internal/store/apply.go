package store

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"triply/internal/assistant"
	"triply/internal/nlp"
	"triply/internal/trip"
)

// SaveItineraryItems appends drafted items to the trip's itinerary, after
// anything already planned.
func SaveItineraryItems(ctx context.Context, s TripStore, tripID string, items []assistant.StructuredItineraryItem) (*trip.Trip, error) {
	return s.UpdateTrip(ctx, tripID, func(t *trip.Trip) error {
		offset := len(t.Itinerary)
		for _, it := range items {
			if strings.TrimSpace(it.Title) == "" {
				continue
			}
			date, err := time.Parse(time.RFC3339, it.Date)
			if err != nil {
				date = t.DayDate(it.Day)
			}
			t.Itinerary = append(t.Itinerary, trip.ItineraryItem{
				ID:       uuid.NewString(),
				Day:      max(it.Day, 1),
				Date:     date,
				Time:     it.Time,
				Title:    it.Title,
				Details:  it.Details,
				Location: it.Location,
				Order:    offset + it.Order,
				IsBooked: it.IsBooked,
			})
		}
		return nil
	})
}

// SaveSuggestion carries out a suggestion's action. Only add_destination and
// set_budget change the trip; anything else is ErrNotApplicable.
func SaveSuggestion(ctx context.Context, s TripStore, tripID string, sug assistant.StructuredSuggestion) (*trip.Trip, error) {
	switch sug.Action {
	case assistant.ActionAddDestination:
		name := strings.TrimSpace(sug.Metadata["location"])
		if name == "" {
			name = strings.TrimSpace(strings.TrimPrefix(sug.Title, "Add "))
		}
		if name == "" {
			return nil, errors.Wrap(ErrNotApplicable, "destination has no name")
		}
		return s.UpdateTrip(ctx, tripID, func(t *trip.Trip) error {
			for _, d := range t.Destinations {
				if strings.EqualFold(d.Name, name) {
					return nil
				}
			}
			t.Destinations = append(t.Destinations, trip.Destination{
				ID:    uuid.NewString(),
				Name:  name,
				Notes: sug.Description,
				Order: len(t.Destinations),
			})
			return nil
		})

	case assistant.ActionSetBudget:
		raw := sug.Metadata["amount"]
		if raw == "" {
			raw = sug.Metadata["total"]
		}
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil || amount <= 0 {
			return nil, errors.Wrapf(ErrNotApplicable, "invalid budget amount %q", raw)
		}
		return s.UpdateTrip(ctx, tripID, func(t *trip.Trip) error {
			t.Budget = trip.BudgetPtr(amount)
			return nil
		})
	}
	return nil, errors.Wrapf(ErrNotApplicable, "action %q", sug.Action)
}

// SaveReceipt logs a parsed receipt as an expense. A receipt without an amount
// is ErrNotApplicable; a missing date falls back to at.
func SaveReceipt(ctx context.Context, s TripStore, tripID string, r nlp.Receipt, category string, at time.Time) (*trip.Trip, error) {
	if r.Amount == nil || *r.Amount <= 0 {
		return nil, errors.Wrap(ErrNotApplicable, "receipt has no amount")
	}
	title := r.Merchant
	if title == "" {
		title = "Receipt"
	}
	date := at
	if r.Date != nil {
		date = *r.Date
	}
	return s.UpdateTrip(ctx, tripID, func(t *trip.Trip) error {
		t.Expenses = append(t.Expenses, trip.Expense{
			ID:       uuid.NewString(),
			Title:    title,
			Amount:   *r.Amount,
			Category: category,
			Date:     date,
		})
		return nil
	})
}
