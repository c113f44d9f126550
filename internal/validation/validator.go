package validation

import (
	"quiz-forge/internal/domain"
	"strings"
)

// Validator provides request validation functionality
type Validator struct {
	maxTextLength int
}

// NewValidator creates a new validator instance. maxTextLength of 0 disables
// the length cap.
func NewValidator(maxTextLength int) *Validator {
	return &Validator{maxTextLength: maxTextLength}
}

// ValidateGenerationText guards the engine boundary: empty or whitespace-only
// text is rejected with EMPTY_INPUT before the engine is invoked, and
// oversized text is rejected with a field-level out-of-range error.
func (v *Validator) ValidateGenerationText(text string) error {
	if strings.TrimSpace(text) == "" {
		return domain.NewEmptyInputError()
	}
	if v.maxTextLength > 0 && len(text) > v.maxTextLength {
		return domain.ValidationErrors{
			domain.NewOutOfRangeError("text", len(text), 1, v.maxTextLength),
		}
	}
	return nil
}

// ValidateGradeRequest checks that the submitted answers line up with the
// submitted questions. Out-of-range answer indices are not an error; they
// simply score as incorrect.
func (v *Validator) ValidateGradeRequest(numQuestions, numAnswers int) error {
	if numQuestions == 0 {
		return domain.ValidationErrors{domain.NewMissingFieldError("questions")}
	}
	if numAnswers != numQuestions {
		return domain.NewInvalidInputError("answers must match questions one-to-one")
	}
	return nil
}
