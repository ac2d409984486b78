package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"triply/internal/assistant"
	"triply/internal/config"
	"triply/internal/planner"
	"triply/internal/store"
	"triply/internal/trip"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{
		Env:               "test",
		StoreDriver:       config.DriverMemory,
		CurrencyCode:      "USD",
		HistoryLimit:      6,
		ChatRatePerMinute: 600,
		ChatRateBurst:     100,
		CORSOrigins:       []string{"*"},
	}
}

func setupTest(t *testing.T, cfg *config.Config) (*gin.Engine, store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.NewMemoryStore("", zap.NewNop())
	require.NoError(t, err)
	s := newServer(cfg, st, planner.NewRulePlanner(nil), zap.NewNop(),
		assistant.WithChooser(assistant.FirstChoice),
		assistant.WithClock(func() time.Time { return now }),
	)
	return setupRouter(s), st
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func seedTrip(t *testing.T, st store.Store, tr trip.Trip) trip.Trip {
	t.Helper()
	require.NoError(t, st.CreateTrip(t.Context(), &tr))
	return tr
}

func lisbon() trip.Trip {
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	return trip.Trip{
		Name:      "Lisbon",
		Category:  "Adventure",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 5),
		Budget:    trip.BudgetPtr(1000),
		Expenses:  []trip.Expense{{ID: "e1", Title: "Hotel", Amount: 850}},
	}
}

func TestHealth(t *testing.T) {
	r, _ := setupTest(t, testConfig())

	w := do(t, r, "GET", "/api/health", nil)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "ok", decode[map[string]any](t, w)["status"])
}

func TestTripCRUD(t *testing.T) {
	r, _ := setupTest(t, testConfig())

	w := do(t, r, "POST", "/api/trips", map[string]any{
		"name":       "Kyoto",
		"category":   "Cultural",
		"start_date": "2026-05-01T00:00:00Z",
		"end_date":   "2026-05-04T00:00:00Z",
		"budget":     1500,
	})
	require.Equal(t, 201, w.Code, w.Body.String())
	created := decode[trip.Trip](t, w)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, 3, created.Duration())

	w = do(t, r, "GET", "/api/trips", nil)
	assert.Len(t, decode[[]trip.Trip](t, w), 1)

	w = do(t, r, "PUT", "/api/trips/"+created.ID, map[string]any{
		"name":       "Kyoto & Nara",
		"start_date": "2026-05-01T00:00:00Z",
		"end_date":   "2026-05-05T00:00:00Z",
	})
	require.Equal(t, 200, w.Code, w.Body.String())
	updated := decode[trip.Trip](t, w)
	assert.Equal(t, "Kyoto & Nara", updated.Name)
	assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())
	assert.Nil(t, updated.Budget)

	w = do(t, r, "DELETE", "/api/trips/"+created.ID, nil)
	assert.Equal(t, 200, w.Code)

	w = do(t, r, "GET", "/api/trips/"+created.ID, nil)
	assert.Equal(t, 404, w.Code)
	assert.Equal(t, "Trip not found", decode[map[string]string](t, w)["error"])
}

func TestCreateTrip_Validation(t *testing.T) {
	r, _ := setupTest(t, testConfig())

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing name", map[string]any{"category": "Beach"}},
		{"end before start", map[string]any{
			"name":       "Backwards",
			"start_date": "2026-05-04T00:00:00Z",
			"end_date":   "2026-05-01T00:00:00Z",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, "POST", "/api/trips", tt.body)
			assert.Equal(t, 400, w.Code)
			assert.Contains(t, decode[map[string]string](t, w), "error")
		})
	}
}

func TestChat_BudgetWarningIsStored(t *testing.T) {
	r, st := setupTest(t, testConfig())
	tr := seedTrip(t, st, lisbon())

	w := do(t, r, "POST", "/api/trips/"+tr.ID+"/chat", ChatRequest{Message: "How is my budget?"})
	require.Equal(t, 200, w.Code, w.Body.String())

	resp := decode[ChatResponse](t, w)
	assert.Equal(t, assistant.IntentBudget, resp.Intent)
	assert.Contains(t, resp.Text, "Budget Warning")
	assert.Contains(t, resp.Text, "85%")

	w = do(t, r, "GET", "/api/trips/"+tr.ID+"/messages", nil)
	msgs := decode[[]trip.ChatMessage](t, w)
	require.Len(t, msgs, 2)
	assert.True(t, msgs[0].IsUser)
	assert.Equal(t, "How is my budget?", msgs[0].Text)
	assert.False(t, msgs[1].IsUser)
	assert.Equal(t, resp.Text, msgs[1].Text)
}

func TestChat_StoredHistoryDrivesFollowUp(t *testing.T) {
	r, st := setupTest(t, testConfig())
	tr := seedTrip(t, st, lisbon())

	require.NoError(t, st.AppendMessages(t.Context(), tr.ID,
		trip.NewUserMessage("What about money?", now.Add(-2*time.Minute)),
		trip.NewAssistantMessage("Your budget looks healthy so far.", now.Add(-time.Minute)),
	))

	w := do(t, r, "POST", "/api/trips/"+tr.ID+"/chat", ChatRequest{Message: "and the hotels?"})
	require.Equal(t, 200, w.Code, w.Body.String())
	assert.Equal(t, assistant.IntentBudget, decode[ChatResponse](t, w).Intent)
}

func TestChat_ExplicitHistoryOverridesStore(t *testing.T) {
	r, st := setupTest(t, testConfig())
	tr := seedTrip(t, st, lisbon())

	require.NoError(t, st.AppendMessages(t.Context(), tr.ID,
		trip.NewAssistantMessage("Your budget looks healthy so far.", now.Add(-time.Minute)),
	))

	// An empty, non-nil history means "no prior turns".
	w := do(t, r, "POST", "/api/trips/"+tr.ID+"/chat", map[string]any{
		"message": "and the hotels?",
		"history": []ChatPart{},
	})
	require.Equal(t, 200, w.Code, w.Body.String())
	assert.NotEqual(t, assistant.IntentBudget, decode[ChatResponse](t, w).Intent)
}

func TestChat_UnknownTrip(t *testing.T) {
	r, _ := setupTest(t, testConfig())

	w := do(t, r, "POST", "/api/trips/nope/chat", ChatRequest{Message: "hi"})
	assert.Equal(t, 404, w.Code)
}

func TestChat_RateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.ChatRatePerMinute = 1
	cfg.ChatRateBurst = 1
	r, st := setupTest(t, cfg)
	tr := seedTrip(t, st, lisbon())

	w := do(t, r, "POST", "/api/trips/"+tr.ID+"/chat", ChatRequest{Message: "hello"})
	require.Equal(t, 200, w.Code)

	w = do(t, r, "POST", "/api/trips/"+tr.ID+"/chat", ChatRequest{Message: "hello again"})
	assert.Equal(t, 429, w.Code)
	assert.Equal(t, "Too many requests", decode[map[string]string](t, w)["error"])

	// other routes are not limited
	w = do(t, r, "GET", "/api/trips/"+tr.ID, nil)
	assert.Equal(t, 200, w.Code)
}

func TestInsights(t *testing.T) {
	r, st := setupTest(t, testConfig())
	tr := seedTrip(t, st, lisbon())

	w := do(t, r, "GET", "/api/trips/"+tr.ID+"/insights", nil)
	require.Equal(t, 200, w.Code)

	cards := decode[[]assistant.Insight](t, w)
	titles := make([]string, 0, len(cards))
	for _, c := range cards {
		titles = append(titles, c.Title)
	}
	assert.Contains(t, titles, "Budget Alert")
	assert.Contains(t, titles, "Adventure Ready")
}

func TestSaveItineraryFromChat(t *testing.T) {
	r, st := setupTest(t, testConfig())
	tr := lisbon()
	tr.EndDate = tr.StartDate.AddDate(0, 0, 3)
	tr = seedTrip(t, st, tr)

	w := do(t, r, "POST", "/api/trips/"+tr.ID+"/chat", ChatRequest{Message: "Can you create an itinerary for us?"})
	require.Equal(t, 200, w.Code)
	resp := decode[ChatResponse](t, w)
	require.NotNil(t, resp.StructuredData)
	require.Len(t, resp.StructuredData.ItineraryItems, 6)

	w = do(t, r, "POST", "/api/trips/"+tr.ID+"/itinerary", ItineraryRequest{Items: resp.StructuredData.ItineraryItems})
	require.Equal(t, 200, w.Code, w.Body.String())

	saved := decode[trip.Trip](t, w)
	require.Len(t, saved.Itinerary, 6)
	assert.Equal(t, 1, saved.Itinerary[0].Day)
	assert.True(t, saved.Itinerary[0].Date.Equal(tr.StartDate))
}

func TestApplySuggestion(t *testing.T) {
	r, st := setupTest(t, testConfig())
	tr := seedTrip(t, st, lisbon())

	w := do(t, r, "POST", "/api/trips/"+tr.ID+"/suggestions/apply", assistant.StructuredSuggestion{
		Type:     "destination",
		Title:    "Add Porto",
		Action:   assistant.ActionAddDestination,
		Metadata: map[string]string{"location": "Porto"},
	})
	require.Equal(t, 200, w.Code, w.Body.String())
	updated := decode[trip.Trip](t, w)
	assert.Equal(t, []string{"Porto"}, updated.DestinationNames())

	w = do(t, r, "POST", "/api/trips/"+tr.ID+"/suggestions/apply", assistant.StructuredSuggestion{
		Type:   "budget",
		Title:  "Review budget",
		Action: assistant.ActionViewBudget,
	})
	assert.Equal(t, 422, w.Code)
}

func TestPlanSuggestions(t *testing.T) {
	r, _ := setupTest(t, testConfig())

	w := do(t, r, "POST", "/api/planner/suggestions", map[string]any{"destination": "Paris", "days": 2})
	require.Equal(t, 200, w.Code, w.Body.String())

	var body struct {
		Suggestions []planner.Suggestion `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Suggestions)
	assert.Equal(t, "Eiffel Tower Visit", body.Suggestions[0].Title)

	w = do(t, r, "POST", "/api/planner/suggestions", map[string]any{"days": 2})
	assert.Equal(t, 400, w.Code)
}

func TestToHistory(t *testing.T) {
	got := toHistory([]ChatPart{
		{Role: "user", Text: "hi"},
		{Role: "model", Text: "hello!"},
		{Role: "assistant", Text: "anything else?"},
		{Role: "user", Text: "  "},
	})

	require.Len(t, got, 3)
	assert.True(t, got[0].IsUser)
	assert.False(t, got[1].IsUser)
	assert.False(t, got[2].IsUser)
}

func TestSaveReceipt(t *testing.T) {
	r, st := setupTest(t, testConfig())
	tr := seedTrip(t, st, lisbon())

	w := do(t, r, "POST", "/api/trips/"+tr.ID+"/receipts", ReceiptRequest{
		Text:     "Time Out Market\n04/02/2026\nTotal $42.30",
		Category: "Food",
	})
	require.Equal(t, 200, w.Code, w.Body.String())

	var body struct {
		Trip trip.Trip `json:"trip"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Trip.Expenses, 2)
	added := body.Trip.Expenses[1]
	assert.Equal(t, "Time Out Market", added.Title)
	assert.Equal(t, 42.30, added.Amount)
	assert.Equal(t, "Food", added.Category)

	w = do(t, r, "POST", "/api/trips/"+tr.ID+"/receipts", ReceiptRequest{Text: "see you soon"})
	assert.Equal(t, 422, w.Code)

	w = do(t, r, "POST", "/api/trips/"+tr.ID+"/receipts", map[string]string{})
	assert.Equal(t, 400, w.Code)
}
