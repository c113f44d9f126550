// Package generator implements the study-material generation engine: subject
// resolution, template-based assignment prompts and the multiple-choice
// question strategies. All randomness flows through the *rand.Rand handed to
// NewEngine, so callers (and tests) control reproducibility.
package generator

import (
	"math/rand"
	"strings"

	"quiz-forge/internal/analyzer"
	"quiz-forge/internal/domain"
)

// Engine orchestrates the analyzer, the assignment composer and the question
// strategies for one generation request at a time. A single Engine must not
// be shared across goroutines because of its rand.Rand.
type Engine struct {
	analyzer   *analyzer.Analyzer
	rng        *rand.Rand
	strategies []questionStrategy
}

// NewEngine creates an Engine drawing randomness from rng.
func NewEngine(rng *rand.Rand) *Engine {
	return &Engine{
		analyzer: analyzer.NewAnalyzer(),
		rng:      rng,
		strategies: []questionStrategy{
			&definitionStrategy{rng: rng},
			&comprehensionStrategy{rng: rng},
			&inferenceStrategy{},
		},
	}
}

// Generate produces the full study set for the given text. The assignment and
// question draws are independent of each other.
func (e *Engine) Generate(text, topic string) (*domain.StudySet, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.NewEmptyInputError()
	}

	subject := e.ResolveSubject(text, topic)

	assignments, err := e.GenerateAssignments(text, topic)
	if err != nil {
		return nil, err
	}

	questions, err := e.GenerateQuizQuestions(text)
	if err != nil {
		return nil, err
	}

	return &domain.StudySet{
		Subject:     subject,
		Assignments: assignments,
		Questions:   questions,
	}, nil
}

// GenerateQuizQuestions builds exactly three questions, cycling through the
// definition, comprehension and inference strategies in that fixed order.
// Strategies whose required input is missing fall back to a fixed question
// rather than failing.
func (e *Engine) GenerateQuizQuestions(text string) ([]domain.Question, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.NewEmptyInputError()
	}

	sentences := e.analyzer.ExtractSentences(text)
	terms := e.analyzer.ExtractKeyTerms(text)

	questions := make([]domain.Question, 0, domain.NumQuestions)
	for i := 0; i < domain.NumQuestions; i++ {
		strategy := e.strategies[i%len(e.strategies)]
		questions = append(questions, strategy.Build(terms, sentences))
	}
	return questions, nil
}
