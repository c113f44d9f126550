package generator

import (
	"fmt"

	"quiz-forge/internal/domain"
)

// assignmentTemplates is the fixed pool essay prompts are drawn from. Each
// template has a single subject placeholder.
var assignmentTemplates = []string{
	"Analyze the main themes in the following content: %s",
	"Discuss the key concepts and their relationships in: %s",
	"Evaluate the arguments presented in: %s",
	"Compare and contrast different viewpoints on: %s",
	"Explain the significance and implications of: %s",
	"Critically examine the evidence presented for: %s",
	"Describe the process or methodology outlined in: %s",
	"Assess the strengths and weaknesses of: %s",
}

// GenerateAssignments fills two distinct templates, sampled without
// replacement, with the resolved subject. Both prompts share the same
// subject.
func (e *Engine) GenerateAssignments(text, topic string) ([]string, error) {
	if len(assignmentTemplates) < domain.NumAssignments {
		return nil, domain.NewInvalidInputError("assignment template pool requires at least two entries")
	}

	subject := e.ResolveSubject(text, topic)

	picks := e.rng.Perm(len(assignmentTemplates))[:domain.NumAssignments]

	assignments := make([]string, 0, domain.NumAssignments)
	for _, idx := range picks {
		assignments = append(assignments, fmt.Sprintf(assignmentTemplates[idx], subject))
	}
	return assignments, nil
}
