package assistant

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"triply/internal/nlp"
	"triply/internal/trip"
)

const DefaultAnalysisCacheSize = 256

// Response is a reply plus how the message was understood.
type Response struct {
	StructuredResponse
	Understanding Understanding `json:"understanding"`
}

// Service runs the assistant pipeline. It keeps no per-conversation state and
// is safe for concurrent use.
type Service struct {
	analyzer  *nlp.Analyzer
	notes     *lru.Cache[string, nlp.NotesAnalysis]
	cacheSize int
	choose    Chooser
	now       func() time.Time
	minDelay  time.Duration
	maxDelay  time.Duration
	currency  *CurrencyFormatter
	logger    *zap.Logger
	tagger    nlp.Tagger
}

type Option func(*Service)

// WithTagger swaps the text-analysis provider.
func WithTagger(t nlp.Tagger) Option {
	return func(s *Service) { s.tagger = t }
}

func WithChooser(c Chooser) Option {
	return func(s *Service) { s.choose = c }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithThinkingDelay waits a random duration in [lo, hi] before answering.
func WithThinkingDelay(lo, hi time.Duration) Option {
	return func(s *Service) {
		if hi < lo {
			lo, hi = hi, lo
		}
		s.minDelay, s.maxDelay = lo, hi
	}
}

// WithCurrency sets the ISO 4217 code used for amounts; unknown codes are ignored.
func WithCurrency(code string) Option {
	return func(s *Service) {
		if f, err := NewCurrencyFormatter(code); err == nil {
			s.currency = f
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.logger = l }
}

func WithAnalysisCacheSize(n int) Option {
	return func(s *Service) { s.cacheSize = n }
}

func NewService(opts ...Option) *Service {
	s := &Service{
		choose:    func(n int) int { return rand.IntN(n) },
		now:       time.Now,
		cacheSize: DefaultAnalysisCacheSize,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.currency == nil {
		s.currency = mustCurrencyFormatter(DefaultCurrency)
	}
	s.analyzer = nlp.NewAnalyzer(s.tagger)
	if s.cacheSize > 0 {
		// lru.New only fails for non-positive sizes.
		s.notes, _ = lru.New[string, nlp.NotesAnalysis](s.cacheSize)
	}
	return s
}

// Analyze runs the text analyzer on one message.
func (s *Service) Analyze(text string) nlp.TextAnalysis {
	return s.analyzer.Analyze(text)
}

// AnalyzeNotes memoizes notes analysis; assistant turns are re-read on every
// following turn of a conversation.
func (s *Service) AnalyzeNotes(notes string) nlp.NotesAnalysis {
	if s.notes == nil {
		return s.analyzer.AnalyzeNotes(notes)
	}
	if cached, ok := s.notes.Get(notes); ok {
		return cached
	}
	analysis := s.analyzer.AnalyzeNotes(notes)
	s.notes.Add(notes, analysis)
	return analysis
}

func (s *Service) FormatCurrency(amount float64) string {
	return s.currency.Format(amount)
}

// Now reads the service clock.
func (s *Service) Now() time.Time {
	return s.now()
}

// Respond answers one user message about a trip. The trip is copied on entry.
// The only error is the context's, while waiting out the thinking delay.
func (s *Service) Respond(ctx context.Context, message string, t *trip.Trip, history []trip.ChatMessage) (*Response, error) {
	if err := s.think(ctx); err != nil {
		return nil, err
	}

	snapshot := trip.Trip{}
	if t != nil {
		snapshot = t.Clone()
	}
	history = append([]trip.ChatMessage(nil), history...)

	lower := strings.ToLower(message)
	convo := BuildContext(s, lower, history)
	u := s.understand(message, lower, &snapshot, convo, history)

	g := &generator{
		trip:   &snapshot,
		msg:    u.Analysis,
		ctx:    convo,
		u:      u,
		raw:    message,
		now:    s.now(),
		choose: s.choose,
		money:  s.FormatCurrency,
	}
	out := g.generate(u.PrimaryIntent)
	text := Enhance(out.text, u, s.choose)

	s.logger.Debug("assistant reply",
		zap.String("trip_id", snapshot.ID),
		zap.String("intent", string(u.PrimaryIntent)),
		zap.String("style", string(u.Style)),
		zap.Bool("follow_up", convo.FollowUp),
		zap.Int("itinerary_items", len(out.items)),
	)

	return &Response{
		StructuredResponse: NewStructuredResponse(text, out.items, out.suggestions, out.actions),
		Understanding:      u,
	}, nil
}

func (s *Service) understand(message, lower string, t *trip.Trip, convo ConversationContext, history []trip.ChatMessage) Understanding {
	analysis := s.analyzer.Analyze(message)
	personality := DetectPersonality(message)
	urgency := DetectUrgency(lower)
	return Understanding{
		PrimaryIntent:       ClassifyIntent(lower, convo),
		SecondaryIntents:    SecondaryIntents(lower),
		Analysis:            analysis,
		ConversationSummary: conversationSummary(s, history),
		Personality:         personality,
		Urgency:             urgency,
		Style:               ResponseStyleFor(personality, analysis.Sentiment, urgency),
		KeyInsights:         keyInsights(t, analysis, s.FormatCurrency),
	}
}

// Insights returns tip cards for the whole trip.
func (s *Service) Insights(t *trip.Trip) []Insight {
	if t == nil {
		return nil
	}
	snapshot := t.Clone()
	return tripInsights(&snapshot, s.AnalyzeNotes(snapshot.Notes), s.now(), s.FormatCurrency)
}

func (s *Service) think(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.maxDelay <= 0 {
		return nil
	}
	d := s.minDelay
	if span := s.maxDelay - s.minDelay; span > 0 {
		d += rand.N(span + 1)
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
