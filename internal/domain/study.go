package domain

// Cardinalities of a generated study set. The engine always returns exactly
// these counts for any accepted input.
const (
	NumAssignments = 2
	NumQuestions   = 3
	NumOptions     = 4
)

// Term is a ranked key term extracted from source text
type Term struct {
	Text      string
	Frequency int
}

// Question represents a multiple-choice quiz question. CorrectIndex addresses
// Options after any shuffling has been applied.
type Question struct {
	Text         string
	Options      []string
	CorrectIndex int
	Explanation  string
}

// Validate validates the question
func (q *Question) Validate() error {
	if q.Text == "" {
		return NewInvalidInputError("question text is required")
	}
	if len(q.Options) != NumOptions {
		return NewInvalidInputError("question requires exactly four options")
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return NewInvalidInputError("correct index is out of range")
	}
	return nil
}

// StudySet is the full artifact bundle produced for one generation request
type StudySet struct {
	Subject     string
	Assignments []string
	Questions   []Question
}

// Validate validates the study set
func (s *StudySet) Validate() error {
	if len(s.Assignments) != NumAssignments {
		return NewInvalidInputError("study set requires exactly two assignments")
	}
	if len(s.Questions) != NumQuestions {
		return NewInvalidInputError("study set requires exactly three questions")
	}
	for i := range s.Questions {
		if err := s.Questions[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}
