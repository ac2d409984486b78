package nlp

import (
	"regexp"
	"strings"
	"unicode"
)

// Scheme selects which tags a Tagger reports.
type Scheme int

const (
	SchemeLexicalClass Scheme = iota
	SchemeNameType
)

type Tag string

const (
	TagNoun      Tag = "noun"
	TagVerb      Tag = "verb"
	TagAdjective Tag = "adjective"
	TagAdverb    Tag = "adverb"
	TagOther     Tag = "other"

	TagPlaceName        Tag = "place"
	TagPersonalName     Tag = "person"
	TagOrganizationName Tag = "organization"
)

type Token struct {
	Text string
	Tag  Tag
}

// Tagger is the text-analysis provider behind the Analyzer. Implementations must
// be deterministic: the same text always yields the same tokens and score.
type Tagger interface {
	Tag(text string, scheme Scheme) []Token
	// Sentiment returns a document score in [-1, 1].
	Sentiment(text string) float64
}

var wordPattern = regexp.MustCompile(`[\p{L}][\p{L}\p{N}'’-]*|\p{N}+(?:[.,]\p{N}+)*`)

// LexiconTagger tags words from fixed vocabularies and a place gazetteer.
type LexiconTagger struct {
	places    map[string]struct{}
	maxPlace  int
	orgSuffix map[string]struct{}
}

// NewLexiconTagger builds a tagger; extra place names extend the built-in gazetteer.
func NewLexiconTagger(extraPlaces ...string) *LexiconTagger {
	lt := &LexiconTagger{
		places:    make(map[string]struct{}, len(gazetteer)+len(extraPlaces)),
		orgSuffix: toSet(organizationSuffixes),
	}
	for _, p := range append(append([]string{}, gazetteer...), extraPlaces...) {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		lt.places[p] = struct{}{}
		if n := len(strings.Fields(p)); n > lt.maxPlace {
			lt.maxPlace = n
		}
	}
	return lt
}

type span struct {
	text  string
	lower string
	start int
}

func words(text string) []span {
	idx := wordPattern.FindAllStringIndex(text, -1)
	out := make([]span, 0, len(idx))
	for _, loc := range idx {
		w := text[loc[0]:loc[1]]
		out = append(out, span{text: w, lower: strings.ToLower(w), start: loc[0]})
	}
	return out
}

func (lt *LexiconTagger) Tag(text string, scheme Scheme) []Token {
	ws := words(text)
	if scheme == SchemeNameType {
		return lt.nameTypes(text, ws)
	}
	tokens := make([]Token, 0, len(ws))
	for _, w := range ws {
		tokens = append(tokens, Token{Text: w.text, Tag: lexicalClass(w.lower)})
	}
	return tokens
}

func (lt *LexiconTagger) nameTypes(text string, ws []span) []Token {
	var tokens []Token
	for i := 0; i < len(ws); {
		if n := lt.matchPlace(ws, i); n > 0 {
			last := ws[i+n-1]
			tokens = append(tokens, Token{
				Text: text[ws[i].start : last.start+len(last.text)],
				Tag:  TagPlaceName,
			})
			i += n
			continue
		}
		w := ws[i]
		if isCapitalized(w.text) && !sentenceInitial(text, w.start) && !isFunctionWord(w.lower) && w.text != "I" {
			tag := TagPersonalName
			if i+1 < len(ws) {
				if _, ok := lt.orgSuffix[ws[i+1].lower]; ok {
					tag = TagOrganizationName
				}
			}
			tokens = append(tokens, Token{Text: w.text, Tag: tag})
		}
		i++
	}
	return tokens
}

// matchPlace returns how many words starting at i form the longest gazetteer entry.
func (lt *LexiconTagger) matchPlace(ws []span, i int) int {
	for n := lt.maxPlace; n >= 1; n-- {
		if i+n > len(ws) {
			continue
		}
		parts := make([]string, n)
		for k := 0; k < n; k++ {
			parts[k] = ws[i+k].lower
		}
		if _, ok := lt.places[strings.Join(parts, " ")]; ok {
			return n
		}
	}
	return 0
}

// Sentiment scores positive minus negative lexicon hits over all hits. A
// negator directly before a hit flips it.
func (lt *LexiconTagger) Sentiment(text string) float64 {
	ws := words(text)
	pos, neg := 0, 0
	for i, w := range ws {
		polarity := 0
		switch {
		case containsWord(positiveWords, w.lower):
			polarity = 1
		case containsWord(negativeWords, w.lower):
			polarity = -1
		}
		if polarity == 0 {
			continue
		}
		if i > 0 && containsWord(negators, ws[i-1].lower) {
			polarity = -polarity
		}
		if polarity > 0 {
			pos++
		} else {
			neg++
		}
	}
	if pos+neg == 0 {
		return 0
	}
	return float64(pos-neg) / float64(pos+neg)
}

func lexicalClass(word string) Tag {
	switch {
	case word == "" || unicode.IsDigit([]rune(word)[0]):
		return TagOther
	case isFunctionWord(word):
		return TagOther
	case containsWord(commonVerbs, word):
		return TagVerb
	case containsWord(commonAdjectives, word), containsWord(positiveWords, word), containsWord(negativeWords, word):
		return TagAdjective
	case strings.HasSuffix(word, "ly") && len(word) > 4:
		return TagAdverb
	case hasAnySuffix(word, adjectiveSuffixes):
		return TagAdjective
	case strings.HasSuffix(word, "ing") && len(word) > 5:
		return TagVerb
	}
	return TagNoun
}

func isCapitalized(w string) bool {
	r := []rune(w)
	return len(r) > 0 && unicode.IsUpper(r[0])
}

// sentenceInitial reports whether only whitespace or sentence punctuation
// precedes offset since the last sentence boundary.
func sentenceInitial(text string, offset int) bool {
	prefix := strings.TrimRightFunc(text[:offset], unicode.IsSpace)
	if prefix == "" {
		return true
	}
	last := prefix[len(prefix)-1]
	return last == '.' || last == '!' || last == '?' || last == '\n'
}

func hasAnySuffix(word string, suffixes []string) bool {
	for _, s := range suffixes {
		if len(word) > len(s)+2 && strings.HasSuffix(word, s) {
			return true
		}
	}
	return false
}

func toSet(items []string) map[string]struct{} {
	m := make(map[string]struct{}, len(items))
	for _, it := range items {
		m[it] = struct{}{}
	}
	return m
}
