package trip

import (
	"strings"
	"time"
)

const day = 24 * time.Hour

// ========== Data model ==========

// Trip is the read-only view of a trip handed to the assistant.
type Trip struct {
	ID           string          `json:"id" bson:"id"`
	Name         string          `json:"name" bson:"name"`
	Category     string          `json:"category" bson:"category"`
	Notes        string          `json:"notes" bson:"notes"`
	StartDate    time.Time       `json:"start_date" bson:"start_date"`
	EndDate      time.Time       `json:"end_date" bson:"end_date"`
	Budget       *float64        `json:"budget,omitempty" bson:"budget,omitempty"`
	Expenses     []Expense       `json:"expenses" bson:"expenses"`
	Destinations []Destination   `json:"destinations" bson:"destinations"`
	Itinerary    []ItineraryItem `json:"itinerary" bson:"itinerary"`
	PackingList  []PackingItem   `json:"packing_list" bson:"packing_list"`
	CreatedAt    time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at" bson:"updated_at"`
}

type Expense struct {
	ID       string    `json:"id" bson:"id"`
	Title    string    `json:"title" bson:"title"`
	Amount   float64   `json:"amount" bson:"amount"`
	Category string    `json:"category" bson:"category"`
	Date     time.Time `json:"date" bson:"date"`
}

type Destination struct {
	ID      string `json:"id" bson:"id"`
	Name    string `json:"name" bson:"name"`
	Address string `json:"address" bson:"address"`
	Notes   string `json:"notes" bson:"notes"`
	Order   int    `json:"order" bson:"order"`
}

type ItineraryItem struct {
	ID               string    `json:"id" bson:"id"`
	Day              int       `json:"day" bson:"day"`
	Date             time.Time `json:"date" bson:"date"`
	Time             string    `json:"time" bson:"time"`
	Title            string    `json:"title" bson:"title"`
	Details          string    `json:"details" bson:"details"`
	Location         string    `json:"location" bson:"location"`
	Order            int       `json:"order" bson:"order"`
	IsBooked         bool      `json:"is_booked" bson:"is_booked"`
	BookingReference string    `json:"booking_reference" bson:"booking_reference"`
}

type PackingItem struct {
	ID       string `json:"id" bson:"id"`
	Name     string `json:"name" bson:"name"`
	Category string `json:"category" bson:"category"`
	Packed   bool   `json:"packed" bson:"packed"`
}

// ========== Derived values ==========

// Duration is the number of whole days between the start and end dates.
func (t *Trip) Duration() int {
	if t.EndDate.Before(t.StartDate) {
		return 0
	}
	return int(t.EndDate.Sub(t.StartDate) / day)
}

func (t *Trip) IsUpcoming(now time.Time) bool {
	return t.StartDate.After(now)
}

func (t *Trip) IsPast(now time.Time) bool {
	return t.EndDate.Before(now)
}

// IsCurrent reports whether now falls within [StartDate, EndDate].
func (t *Trip) IsCurrent(now time.Time) bool {
	return !t.StartDate.After(now) && !t.EndDate.Before(now)
}

// DaysUntilStart counts whole days from now to the start date; negative once started.
func (t *Trip) DaysUntilStart(now time.Time) int {
	return int(t.StartDate.Sub(now) / day)
}

// DaysSinceStart counts whole days elapsed since the start date, never below zero.
func (t *Trip) DaysSinceStart(now time.Time) int {
	elapsed := int(now.Sub(t.StartDate) / day)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// DayDate is the calendar date of 1-based trip day n.
func (t *Trip) DayDate(n int) time.Time {
	return t.StartDate.AddDate(0, 0, max(n, 1)-1)
}

// ExpandDays lists the date of every trip day, first day first.
func (t *Trip) ExpandDays() []time.Time {
	days := make([]time.Time, t.Duration())
	for i := range days {
		days[i] = t.DayDate(i + 1)
	}
	return days
}

func (t *Trip) TotalExpenses() float64 {
	total := 0.0
	for _, e := range t.Expenses {
		total += e.Amount
	}
	return total
}

// HasBudget is true only for a set, positive budget.
func (t *Trip) HasBudget() bool {
	return t.Budget != nil && *t.Budget > 0
}

// BudgetValue is the budget amount, or zero when none is set.
func (t *Trip) BudgetValue() float64 {
	if t.Budget == nil {
		return 0
	}
	return *t.Budget
}

func (t *Trip) NormalizedCategory() string {
	return strings.ToLower(strings.TrimSpace(t.Category))
}

func (t *Trip) DestinationNames() []string {
	names := make([]string, 0, len(t.Destinations))
	for _, d := range t.Destinations {
		names = append(names, d.Name)
	}
	return names
}

// Clone returns a deep copy so callers can keep mutating their own trip while a
// response is computed from the snapshot.
func (t *Trip) Clone() Trip {
	c := *t
	if t.Budget != nil {
		b := *t.Budget
		c.Budget = &b
	}
	c.Expenses = append([]Expense(nil), t.Expenses...)
	c.Destinations = append([]Destination(nil), t.Destinations...)
	c.Itinerary = append([]ItineraryItem(nil), t.Itinerary...)
	c.PackingList = append([]PackingItem(nil), t.PackingList...)
	return c
}

// BudgetPtr is a small helper for building trips with a budget.
func BudgetPtr(v float64) *float64 {
	return &v
}
