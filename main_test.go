package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triply/internal/trip"
)

func writeTrip(t *testing.T, tr trip.Trip) string {
	t.Helper()
	data, err := json.Marshal(tr)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "trip.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CURRENCY_CODE", "USD")
	t.Setenv("STORE_DRIVER", "memory")
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAskPrintsReply(t *testing.T) {
	start := time.Now().AddDate(0, 0, 30)
	path := writeTrip(t, trip.Trip{
		Name:      "Lisbon",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 4),
		Budget:    trip.BudgetPtr(1000),
		Expenses:  []trip.Expense{{Title: "Hotel", Amount: 850}},
	})

	out, err := run(t, "ask", "--trip", path, "how", "is", "my", "budget?")
	require.NoError(t, err)
	assert.Contains(t, out, "85%")
}

func TestAskJSON(t *testing.T) {
	start := time.Now().AddDate(0, 0, 10)
	path := writeTrip(t, trip.Trip{Name: "Kyoto", StartDate: start, EndDate: start.AddDate(0, 0, 2)})

	out, err := run(t, "ask", "--json", "--trip", path, "plan my itinerary")
	require.NoError(t, err)

	var resp struct {
		Text           string `json:"text"`
		StructuredData struct {
			ItineraryItems []json.RawMessage `json:"itinerary_items"`
		} `json:"structured_data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.NotEmpty(t, resp.Text)
	assert.Len(t, resp.StructuredData.ItineraryItems, 4)
}

func TestAskNeedsTrip(t *testing.T) {
	_, err := run(t, "ask", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--trip")
}

func TestPlan(t *testing.T) {
	out, err := run(t, "plan", "--destination", "Paris", "--days", "2", "--budget", "1000")
	require.NoError(t, err)
	assert.Contains(t, out, "Eiffel Tower Visit")
	assert.Contains(t, out, "Budget Optimization")
	assert.Contains(t, out, "Short Trip Tips")
}

func TestPlanRequiresDestination(t *testing.T) {
	_, err := run(t, "plan", "--days", "3")
	require.Error(t, err)
}

func TestInsights(t *testing.T) {
	start := time.Now().AddDate(0, 0, 60)
	path := writeTrip(t, trip.Trip{Name: "Oslo", StartDate: start, EndDate: start.AddDate(0, 0, 8)})

	out, err := run(t, "insights", "--trip", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Week-Long Trip")
}
