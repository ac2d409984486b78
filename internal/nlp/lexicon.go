package nlp

import (
	"slices"
	"strings"
)

// Vocabularies below are matched verbatim; behaviour depends on exact membership.

var positiveWords = []string{
	"excited", "amazing", "wonderful", "great", "love", "enjoy", "fantastic",
	"beautiful", "perfect", "awesome", "happy", "fun",
}

var negativeWords = []string{
	"worried", "stress", "problem", "bad", "terrible", "awful", "disappointed", "sad", "difficult",
}

var activityWords = []string{
	"visit", "explore", "see", "go", "travel", "tour", "hike", "swim", "dive", "climb", "sightsee", "discover",
}

var stopWords = []string{
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with", "by", "from",
	"as", "is", "was", "are", "were", "be", "been", "being", "have", "has", "had", "do", "does", "did",
	"will", "would", "should", "could", "may", "might", "must", "can", "this", "that", "these", "those",
	"i", "you", "he", "she", "it", "we", "they", "what", "which", "who", "whom", "whose", "where",
	"when", "why", "how",
}

var preferenceKeywords = []string{
	"like", "love", "enjoy", "prefer", "want", "need", "interested", "favorite", "best",
}

// Tagger-only vocabularies.

var negators = []string{"not", "no", "never", "isn't", "wasn't", "don't", "didn't", "without"}

var functionWords = []string{
	"my", "your", "our", "their", "his", "her", "its", "me", "us", "them", "him", "mine", "yours",
	"there", "here", "not", "no", "so", "if", "than", "then", "about", "into", "out", "up", "down",
	"just", "very", "also", "too", "any", "some", "all", "each", "every", "more", "most", "much",
	"many", "few", "other", "such", "only", "own", "same", "over", "under", "again", "once",
	"after", "before", "during", "while", "until", "through", "between", "against", "above", "below",
	"off", "nor", "yes", "please", "thanks", "thank", "hi", "hello", "hey", "what's", "i'm", "i'd",
	"i've", "i'll", "it's", "don't", "can't", "won't", "let's", "there's", "that's",
}

var commonVerbs = []string{
	"visit", "explore", "see", "go", "travel", "tour", "hike", "swim", "dive", "climb", "sightsee",
	"discover", "love", "like", "enjoy", "prefer", "want", "need", "plan", "book", "pack", "bring",
	"spend", "spent", "paid", "pay", "bought", "buy", "eat", "drink", "stay", "fly", "drive", "walk",
	"suggest", "recommend", "create", "generate", "make", "build", "develop", "check", "try",
	"help", "know", "think", "tell", "show", "find", "take", "keep", "track", "save", "get", "give",
	"explain", "elaborate", "compare", "afford", "relax", "shop", "arrive", "leave", "return",
}

var commonAdjectives = []string{
	"good", "best", "better", "cheap", "expensive", "hot", "cold", "warm", "cool", "sunny", "rainy",
	"local", "famous", "popular", "quiet", "busy", "nice", "new", "old", "big", "small", "long",
	"short", "detailed", "budget", "luxury", "free", "early", "late", "quick", "fast", "slow",
	"easy", "hard", "safe", "romantic", "cultural", "historic", "scenic",
}

var adjectiveSuffixes = []string{"ful", "ous", "ive", "able", "ible", "al", "ic", "less", "ish"}

var organizationSuffixes = []string{
	"inc", "corp", "corporation", "company", "airlines", "airways", "hotel", "hotels", "group", "ltd", "llc",
}

// gazetteer is the built-in list of place names recognised as locations.
var gazetteer = []string{
	// cities
	"paris", "london", "rome", "tokyo", "kyoto", "osaka", "new york", "nyc", "los angeles", "san francisco",
	"chicago", "miami", "las vegas", "seattle", "boston", "washington", "toronto", "vancouver", "montreal",
	"mexico city", "cancun", "rio de janeiro", "buenos aires", "lima", "barcelona", "madrid", "lisbon",
	"porto", "berlin", "munich", "amsterdam", "brussels", "vienna", "prague", "budapest", "zurich",
	"geneva", "venice", "florence", "milan", "naples", "athens", "santorini", "istanbul", "dubai",
	"cairo", "marrakech", "cape town", "nairobi", "bangkok", "phuket", "singapore", "hong kong",
	"seoul", "taipei", "beijing", "shanghai", "bali", "sydney", "melbourne", "auckland", "honolulu",
	"reykjavik", "dublin", "edinburgh", "copenhagen", "stockholm", "oslo", "helsinki", "hanoi",
	"ho chi minh city", "delhi", "mumbai", "goa",
	// countries and regions
	"france", "italy", "spain", "portugal", "germany", "japan", "china", "korea", "thailand", "vietnam",
	"indonesia", "australia", "new zealand", "canada", "mexico", "brazil", "argentina", "peru", "chile",
	"greece", "turkey", "egypt", "morocco", "kenya", "south africa", "india", "iceland", "ireland",
	"scotland", "england", "norway", "sweden", "denmark", "finland", "switzerland", "austria",
	"netherlands", "belgium", "hawaii", "california", "florida", "alaska", "europe", "asia", "africa",
	"patagonia", "tuscany", "provence", "the alps", "alps",
}

func containsWord(list []string, w string) bool {
	return slices.Contains(list, w)
}

func isFunctionWord(w string) bool {
	return containsWord(stopWords, w) || containsWord(functionWords, w)
}

// IsStopWord reports membership in the stop-word list, case-insensitively.
func IsStopWord(w string) bool {
	return containsWord(stopWords, strings.ToLower(w))
}
