package dto

// GenerateRequest is the request body shared by the generation endpoints
// @Description Source text and optional topic for study-material generation
type GenerateRequest struct {
	Text  string `json:"text"`
	Topic string `json:"topic,omitempty"`
}

// QuestionResponse represents a multiple-choice question in the API response
// @Description Quiz question with shuffled options and tracked correct index
type QuestionResponse struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`       // 4 options, shuffled where the strategy shuffles
	CorrectIndex int      `json:"correct_index"` // 0-based into options after shuffling
	Explanation  string   `json:"explanation"`
}

// GenerateResponse is the full artifact bundle for one generation request
type GenerateResponse struct {
	RequestID   string             `json:"request_id"`
	Subject     string             `json:"subject"`
	Assignments []string           `json:"assignments"`
	Questions   []QuestionResponse `json:"questions"`
}

// AssignmentsResponse carries only the essay assignment prompts
type AssignmentsResponse struct {
	RequestID   string   `json:"request_id"`
	Assignments []string `json:"assignments"`
}

// QuestionsResponse carries only the quiz questions
type QuestionsResponse struct {
	RequestID string             `json:"request_id"`
	Questions []QuestionResponse `json:"questions"`
}

// ExportRequest requests a rendered markdown study sheet
type ExportRequest struct {
	Text  string `json:"text"`
	Topic string `json:"topic,omitempty"`
	Title string `json:"title,omitempty"`
}

// GradeRequest submits chosen option indices against previously generated
// questions for scoring
type GradeRequest struct {
	Questions []QuestionResponse `json:"questions"`
	Answers   []int              `json:"answers"`
}

// GradeResult is the per-question outcome of a graded quiz
type GradeResult struct {
	Correct      bool `json:"correct"`
	CorrectIndex int  `json:"correct_index"`
}

// GradeResponse is the scoring summary for a graded quiz
type GradeResponse struct {
	Score      int           `json:"score"`
	Total      int           `json:"total"`
	Percentage float64       `json:"percentage"`
	Results    []GradeResult `json:"results"`
}
