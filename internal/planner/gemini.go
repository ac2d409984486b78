package planner

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"triply/internal/assistant"
)

const DefaultModel = "gemini-2.5-flash-lite"

const systemPrompt = "You are a professional travel guide. Answer with a short sentence followed by a ```json fenced block " +
	`of the form {"text": "...", "structured_data": {"suggestions": [{"type": "activity|tip|budget|accommodation|restaurant", ` +
	`"title": "...", "description": "...", "priority": "high|medium|low"}]}}.`

// GeminiPlanner asks a Gemini model for suggestions and falls back to another
// planner whenever the call fails or the reply carries no usable suggestions.
type GeminiPlanner struct {
	client   *genai.Client
	model    string
	fallback Planner
	logger   *zap.Logger

	generate func(ctx context.Context, prompt string) (string, error)
}

func NewGeminiPlanner(ctx context.Context, apiKey, model string, fallback Planner, logger *zap.Logger) (*GeminiPlanner, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is empty")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, errors.Wrap(err, "create gemini client")
	}
	if model == "" {
		model = DefaultModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &GeminiPlanner{client: client, model: model, fallback: fallback, logger: logger}
	p.generate = p.callGemini
	return p, nil
}

func (p *GeminiPlanner) Close() error {
	if p.client == nil {
		return nil
	}
	return p.client.Close()
}

func (p *GeminiPlanner) Suggest(ctx context.Context, req Request) ([]Suggestion, error) {
	text, err := p.generate(ctx, buildPrompt(req))
	if err == nil {
		if out := fromStructured(assistant.ParseStructuredResponse(text)); len(out) > 0 {
			return byPriority(out), nil
		}
		err = errors.New("reply carried no suggestions")
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	p.logger.Warn("gemini planner fell back to rules",
		zap.String("destination", req.Destination),
		zap.Error(err),
	)
	if p.fallback == nil {
		return nil, err
	}
	return p.fallback.Suggest(ctx, req)
}

func (p *GeminiPlanner) callGemini(ctx context.Context, prompt string) (string, error) {
	model := p.client.GenerativeModel(p.model)
	model.SystemInstruction = genai.NewUserContent(genai.Text(systemPrompt))
	model.SetMaxOutputTokens(2048)
	model.SetTemperature(0.7)

	res, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", errors.Wrap(err, "gemini generate")
	}

	var b strings.Builder
	if len(res.Candidates) > 0 && res.Candidates[0].Content != nil {
		for _, part := range res.Candidates[0].Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				b.WriteString(string(txt))
			}
		}
	}
	return b.String(), nil
}

func buildPrompt(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Suggest things to do for a %d-day trip to %s.", req.Days, req.Destination)
	if req.Budget != nil {
		fmt.Fprintf(&b, " The total budget is %.2f.", *req.Budget)
	}
	if len(req.Interests) > 0 {
		fmt.Fprintf(&b, " The traveller is interested in %s.", strings.Join(req.Interests, ", "))
	}
	b.WriteString(" Return between 3 and 6 suggestions.")
	return b.String()
}

func fromStructured(resp *assistant.StructuredResponse) []Suggestion {
	if resp == nil || resp.StructuredData == nil {
		return nil
	}
	var out []Suggestion
	for _, s := range resp.StructuredData.Suggestions {
		if strings.TrimSpace(s.Title) == "" {
			continue
		}
		kind := SuggestionType(strings.ToLower(s.Type))
		if kind == "" {
			kind = TypeTip
		}
		out = append(out, newSuggestion(kind, s.Title, s.Description, parsePriority(s.Priority)))
	}
	return out
}
