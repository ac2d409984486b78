package nlp

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

type QuestionType string

const (
	QuestionNone     QuestionType = ""
	QuestionCost     QuestionType = "cost"
	QuestionTime     QuestionType = "time"
	QuestionLocation QuestionType = "location"
	QuestionReason   QuestionType = "reason"
	QuestionMethod   QuestionType = "method"
)

const (
	maxKeyTopics    = 10
	minTopicLength  = 4
	sentimentCutoff = 0.3
	preferenceSpan  = 3
)

// TextAnalysis is everything extracted from one message.
type TextAnalysis struct {
	Locations    []string     `json:"locations"`
	Entities     []string     `json:"entities"`
	Preferences  []string     `json:"preferences"`
	Amounts      []float64    `json:"amounts"`
	KeyTopics    []string     `json:"key_topics"`
	Sentiment    Sentiment    `json:"sentiment"`
	QuestionType QuestionType `json:"question_type,omitempty"`
}

// NotesAnalysis is the lighter analysis run over trip notes and assistant turns.
type NotesAnalysis struct {
	Locations  []string  `json:"locations"`
	Activities []string  `json:"activities"`
	Sentiment  Sentiment `json:"sentiment"`
	Keywords   []string  `json:"keywords"`
}

// The first pattern prefers grouped thousands and otherwise takes the whole digit run.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\$?\s*(\d{1,3}(?:,\d{3})+(?:\.\d{2})?|\d+(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)(\d+)\s*(?:dollars?|usd)`),
	regexp.MustCompile(`(?i)(\d+\.?\d{0,2})\s*(?:per|/)\s*(?:day|night|person)`),
}

// Analyzer extracts structure from free text. It holds no mutable state and
// is safe for concurrent use.
type Analyzer struct {
	tagger Tagger
}

func NewAnalyzer(tagger Tagger) *Analyzer {
	if tagger == nil {
		tagger = NewLexiconTagger()
	}
	return &Analyzer{tagger: tagger}
}

// Analyze never fails; empty text yields an empty, neutral analysis.
func (a *Analyzer) Analyze(text string) TextAnalysis {
	analysis := TextAnalysis{Sentiment: SentimentNeutral}
	text = strings.ToValidUTF8(text, "\uFFFD")
	if strings.TrimSpace(text) == "" {
		return analysis
	}

	for _, tok := range a.tagger.Tag(text, SchemeNameType) {
		switch tok.Tag {
		case TagPlaceName:
			analysis.Locations = appendUnique(analysis.Locations, tok.Text)
		case TagOrganizationName, TagPersonalName:
			analysis.Entities = append(analysis.Entities, tok.Text)
		}
	}

	score := a.tagger.Sentiment(text)
	switch {
	case score > sentimentCutoff:
		analysis.Sentiment = SentimentPositive
	case score < -sentimentCutoff:
		analysis.Sentiment = SentimentNegative
	}

	analysis.KeyTopics = a.keywords(text)
	analysis.Amounts = ExtractAmounts(text)
	analysis.Preferences = ExtractPreferences(text)
	analysis.QuestionType = ClassifyQuestion(text)
	return analysis
}

// AnalyzeNotes extracts places, activity verbs, lexicon sentiment and keywords.
func (a *Analyzer) AnalyzeNotes(notes string) NotesAnalysis {
	analysis := NotesAnalysis{Sentiment: SentimentNeutral}
	notes = strings.ToValidUTF8(notes, "\uFFFD")
	if strings.TrimSpace(notes) == "" {
		return analysis
	}
	for _, tok := range a.tagger.Tag(notes, SchemeNameType) {
		if tok.Tag == TagPlaceName {
			analysis.Locations = appendUnique(analysis.Locations, tok.Text)
		}
	}
	for _, tok := range a.tagger.Tag(notes, SchemeLexicalClass) {
		if tok.Tag != TagVerb {
			continue
		}
		w := strings.ToLower(tok.Text)
		if containsWord(activityWords, w) {
			analysis.Activities = appendUnique(analysis.Activities, w)
		}
	}
	analysis.Sentiment = LexiconSentiment(notes)
	analysis.Keywords = a.keywords(notes)
	return analysis
}

// keywords keeps nouns, verbs and adjectives longer than three letters that are
// not stop words, deduplicated in first-seen order.
func (a *Analyzer) keywords(text string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, tok := range a.tagger.Tag(text, SchemeLexicalClass) {
		if tok.Tag != TagNoun && tok.Tag != TagVerb && tok.Tag != TagAdjective {
			continue
		}
		w := strings.ToLower(tok.Text)
		if len([]rune(w)) < minTopicLength || IsStopWord(w) {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
		if len(out) == maxKeyTopics {
			break
		}
	}
	return out
}

// LexiconSentiment counts positive against negative vocabulary as substrings;
// the majority wins and ties are neutral.
func LexiconSentiment(text string) Sentiment {
	if text == "" {
		return SentimentNeutral
	}
	lower := strings.ToLower(text)
	pos, neg := 0, 0
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			pos++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			neg++
		}
	}
	switch {
	case pos > neg:
		return SentimentPositive
	case neg > pos:
		return SentimentNegative
	}
	return SentimentNeutral
}

// ExtractAmounts collects every match of every amount pattern, in pattern order.
func ExtractAmounts(text string) []float64 {
	var amounts []float64
	for _, re := range amountPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if len(m) < 2 {
				continue
			}
			v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
			if err != nil {
				continue
			}
			amounts = append(amounts, v)
		}
	}
	return amounts
}

// ExtractPreferences takes up to three tokens after the first occurrence of each
// preference keyword, dropping tokens of two characters or fewer.
func ExtractPreferences(text string) []string {
	var prefs []string
	text = strings.ToValidUTF8(text, "\uFFFD")
	for _, kw := range preferenceKeywords {
		idx := indexFold(text, kw)
		if idx < 0 {
			continue
		}
		fields := strings.Fields(text[idx+len(kw):])
		if len(fields) > preferenceSpan {
			fields = fields[:preferenceSpan]
		}
		for _, f := range fields {
			f = strings.TrimFunc(f, unicode.IsPunct)
			if len([]rune(f)) > 2 {
				prefs = append(prefs, f)
			}
		}
	}
	return prefs
}

// indexFold finds kw in text ignoring case. The offset is into text itself,
// so it stays valid when lower-casing would change byte lengths.
func indexFold(text, kw string) int {
	for i := range text {
		if i+len(kw) > len(text) {
			break
		}
		if strings.EqualFold(text[i:i+len(kw)], kw) {
			return i
		}
	}
	return -1
}

// ClassifyQuestion only looks at text containing a question mark.
func ClassifyQuestion(text string) QuestionType {
	if !strings.Contains(text, "?") {
		return QuestionNone
	}
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "how much"), strings.Contains(lower, "what's the cost"):
		return QuestionCost
	case strings.Contains(lower, "when"):
		return QuestionTime
	case strings.Contains(lower, "where"):
		return QuestionLocation
	case strings.Contains(lower, "why"):
		return QuestionReason
	case strings.Contains(lower, "how"):
		return QuestionMethod
	}
	return QuestionNone
}

func appendUnique(list []string, v string) []string {
	if v == "" || containsWord(list, v) {
		return list
	}
	return append(list, v)
}
