package generator

import (
	"fmt"
	"math/rand"

	"quiz-forge/internal/domain"
)

const (
	definitionTermPool        = 5
	comprehensionSentencePool = 3
	comprehensionSnippetLen   = 50
)

// questionStrategy builds one question from the analyzer's output. The set of
// implementations is closed: definition, comprehension, inference, plus the
// fallback used when a strategy's required input is missing.
type questionStrategy interface {
	Build(terms []domain.Term, sentences []string) domain.Question
}

// definitionStrategy asks about one of the top-ranked key terms.
type definitionStrategy struct {
	rng *rand.Rand
}

func (s *definitionStrategy) Build(terms []domain.Term, sentences []string) domain.Question {
	if len(terms) == 0 {
		return fallbackQuestion()
	}

	pool := definitionTermPool
	if len(terms) < pool {
		pool = len(terms)
	}
	term := terms[s.rng.Intn(pool)].Text

	correct := fmt.Sprintf("The text discusses %s in the context provided", term)
	distractors := []string{
		fmt.Sprintf("%s is completely unrelated to the main topic", term),
		fmt.Sprintf("%s is mentioned only in passing without significance", term),
		fmt.Sprintf("The text contradicts common understanding of %s", term),
	}

	options, correctIndex := shuffleOptions(s.rng, correct, distractors)

	return domain.Question{
		Text:         fmt.Sprintf("What is the main focus regarding '%s' in the text?", term),
		Options:      options,
		CorrectIndex: correctIndex,
		Explanation:  fmt.Sprintf("The correct answer focuses on how %s relates to the main content.", term),
	}
}

// comprehensionStrategy quotes one of the leading sentences.
type comprehensionStrategy struct {
	rng *rand.Rand
}

func (s *comprehensionStrategy) Build(terms []domain.Term, sentences []string) domain.Question {
	if len(sentences) == 0 {
		return fallbackQuestion()
	}

	pool := comprehensionSentencePool
	if len(sentences) < pool {
		pool = len(sentences)
	}
	sentence := sentences[s.rng.Intn(pool)]

	// Fixed fifty-character slice, counted in runes so multibyte text is
	// never cut mid-character. No word-boundary handling; short sentences
	// are quoted whole. The ellipsis is appended either way.
	snippet := sentence
	if runes := []rune(snippet); len(runes) > comprehensionSnippetLen {
		snippet = string(runes[:comprehensionSnippetLen])
	}
	correct := "The text mentions: " + snippet + "..."

	distractors := []string{
		"The text primarily focuses on historical events",
		"The content is mainly theoretical without practical application",
		"The text contradicts established principles in the field",
	}

	options, correctIndex := shuffleOptions(s.rng, correct, distractors)

	return domain.Question{
		Text:         "According to the text, which statement is most accurate?",
		Options:      options,
		CorrectIndex: correctIndex,
		Explanation:  "This option best reflects the content mentioned in the text.",
	}
}

// inferenceStrategy needs no input and never shuffles.
type inferenceStrategy struct{}

func (s *inferenceStrategy) Build(terms []domain.Term, sentences []string) domain.Question {
	return domain.Question{
		Text: "What can be inferred from the overall content?",
		Options: []string{
			"The content provides informative material on the topic",
			"The text is purely fictional with no factual basis",
			"The content contradicts all established knowledge",
			"The text is primarily focused on entertainment",
		},
		CorrectIndex: 0,
		Explanation:  "This inference is most reasonable based on the informative nature of the content.",
	}
}

// fallbackQuestion is the fixed question returned when a strategy's required
// input (terms or sentences) is empty.
func fallbackQuestion() domain.Question {
	return domain.Question{
		Text: "What is the primary characteristic of the provided text?",
		Options: []string{
			"It contains informative content",
			"It is completely empty",
			"It consists only of numbers",
			"It is written in a foreign language",
		},
		CorrectIndex: 0,
		Explanation:  "The text provides information that can be analyzed.",
	}
}
