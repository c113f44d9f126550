package analyzer

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"quiz-forge/internal/domain"
)

const (
	maxKeyTerms       = 10
	minTermLength     = 4
	minSentenceLength = 11
)

// wordPattern matches maximal runs of ASCII letters. Anything else,
// digits included, separates tokens and is discarded.
var wordPattern = regexp.MustCompile(`[a-z]+`)

// sentencePattern consumes one or more sentence delimiters.
var sentencePattern = regexp.MustCompile(`[.!?]+`)

var stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"being": {}, "have": {}, "has": {}, "had": {}, "do": {}, "does": {},
	"did": {}, "will": {}, "would": {}, "could": {}, "should": {}, "may": {},
	"might": {}, "must": {}, "can": {}, "this": {}, "that": {}, "these": {},
	"those": {},
}

// Analyzer tokenizes and segments raw text into key terms and candidate
// sentences. It is stateless and safe for concurrent use.
type Analyzer struct{}

// NewAnalyzer creates a new Analyzer instance
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// ExtractKeyTerms returns up to ten terms ordered by descending frequency.
// Ties keep first-seen document order. Stopwords and tokens shorter than
// four letters never appear. An empty result is valid output, not an error.
func (a *Analyzer) ExtractKeyTerms(text string) []domain.Term {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)

	freq := make(map[string]int)
	var order []string
	for _, word := range words {
		if len(word) < minTermLength {
			continue
		}
		if _, stop := stopwords[word]; stop {
			continue
		}
		if freq[word] == 0 {
			order = append(order, word)
		}
		freq[word]++
	}

	terms := make([]domain.Term, 0, len(order))
	for _, word := range order {
		terms = append(terms, domain.Term{Text: word, Frequency: freq[word]})
	}

	// Stable sort preserves first-seen order among equal frequencies.
	sort.SliceStable(terms, func(i, j int) bool {
		return terms[i].Frequency > terms[j].Frequency
	})

	if len(terms) > maxKeyTerms {
		terms = terms[:maxKeyTerms]
	}
	return terms
}

// ExtractSentences splits text on runs of '.', '!' and '?', trims each piece
// and keeps pieces longer than ten characters, in document order.
func (a *Analyzer) ExtractSentences(text string) []string {
	pieces := sentencePattern.Split(text, -1)

	var sentences []string
	for _, piece := range pieces {
		sentence := strings.TrimSpace(piece)
		if utf8.RuneCountInString(sentence) >= minSentenceLength {
			sentences = append(sentences, sentence)
		}
	}
	return sentences
}
