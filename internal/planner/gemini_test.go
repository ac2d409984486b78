package planner

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"triply/internal/assistant"
)

func stubbed(reply string, err error) *GeminiPlanner {
	return &GeminiPlanner{
		fallback: NewRulePlanner(nil),
		logger:   zap.NewNop(),
		generate: func(context.Context, string) (string, error) { return reply, err },
	}
}

func TestGeminiPlanner_ParsesFencedReply(t *testing.T) {
	reply := "Here are some ideas.\n```json\n" +
		`{"text":"ideas","structured_data":{"suggestions":[` +
		`{"type":"restaurant","title":"Time Out Market","description":"Food hall","priority":"medium"},` +
		`{"type":"activity","title":"Tram 28","description":"Ride across the hills","priority":"high"},` +
		`{"type":"tip","title":"","description":"dropped"}]}}` +
		"\n```"

	out, err := stubbed(reply, nil).Suggest(context.Background(), Request{Destination: "Lisbon", Days: 4})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Tram 28", out[0].Title)
	assert.Equal(t, assistant.PriorityHigh, out[0].Priority)
	assert.Equal(t, TypeRestaurant, out[1].Type)
	assert.NotEmpty(t, out[1].ID)
}

func TestGeminiPlanner_FallsBack(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		err   error
	}{
		{"call error", "", errors.New("quota exceeded")},
		{"plain text", "Lisbon is lovely in spring.", nil},
		{"malformed json", "```json\n{nope\n```", nil},
		{"no suggestions", `{"text":"hi"}`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := stubbed(tt.reply, tt.err).Suggest(context.Background(), Request{Destination: "Tokyo", Days: 5})
			require.NoError(t, err)
			require.Len(t, out, 1)
			assert.Equal(t, "Shibuya & Harajuku", out[0].Title)
		})
	}
}

func TestGeminiPlanner_CancelledContextSkipsFallback(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := stubbed("", context.Canceled)

	_, err := p.Suggest(ctx, Request{Destination: "Tokyo"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildPrompt(t *testing.T) {
	budget := 1500.0
	prompt := buildPrompt(Request{Destination: "Kyoto", Days: 3, Budget: &budget, Interests: []string{"food", "temples"}})
	assert.Equal(t, "Suggest things to do for a 3-day trip to Kyoto. The total budget is 1500.00. "+
		"The traveller is interested in food, temples. Return between 3 and 6 suggestions.", prompt)
}

func TestNewGeminiPlanner_RequiresKey(t *testing.T) {
	_, err := NewGeminiPlanner(context.Background(), "", "", nil, nil)
	assert.Error(t, err)
}
