package service

import (
	"quiz-forge/internal/domain"
	"quiz-forge/internal/dto"
	"quiz-forge/internal/export"
	"quiz-forge/internal/logger"
	"quiz-forge/internal/util"

	"go.uber.org/zap"
)

// StudySetGenerator is the engine boundary consumed by this service.
// *generator.Engine satisfies it.
type StudySetGenerator interface {
	Generate(text, topic string) (*domain.StudySet, error)
	GenerateAssignments(text, topic string) ([]string, error)
	GenerateQuizQuestions(text string) ([]domain.Question, error)
}

// GenerationService defines the interface for study-material operations
type GenerationService interface {
	Generate(req *dto.GenerateRequest) (*dto.GenerateResponse, error)
	GenerateAssignments(req *dto.GenerateRequest) (*dto.AssignmentsResponse, error)
	GenerateQuestions(req *dto.GenerateRequest) (*dto.QuestionsResponse, error)
	ExportStudySheet(req *dto.ExportRequest) (string, error)
	GradeQuiz(req *dto.GradeRequest) (*dto.GradeResponse, error)
}

// generationService implements GenerationService
type generationService struct {
	engine StudySetGenerator
}

// NewGenerationService creates a new instance of generationService
func NewGenerationService(engine StudySetGenerator) GenerationService {
	return &generationService{engine: engine}
}

// Generate implements GenerationService
func (s *generationService) Generate(req *dto.GenerateRequest) (*dto.GenerateResponse, error) {
	requestID := util.NewULID()

	set, err := s.engine.Generate(req.Text, req.Topic)
	if err != nil {
		return nil, err
	}

	logger.Get().Info("Generated study set",
		zap.String("request_id", requestID),
		zap.String("subject", set.Subject),
		zap.Int("assignments", len(set.Assignments)),
		zap.Int("questions", len(set.Questions)),
	)

	return &dto.GenerateResponse{
		RequestID:   requestID,
		Subject:     set.Subject,
		Assignments: set.Assignments,
		Questions:   toQuestionResponses(set.Questions),
	}, nil
}

// GenerateAssignments implements GenerationService
func (s *generationService) GenerateAssignments(req *dto.GenerateRequest) (*dto.AssignmentsResponse, error) {
	requestID := util.NewULID()

	assignments, err := s.engine.GenerateAssignments(req.Text, req.Topic)
	if err != nil {
		return nil, err
	}

	logger.Get().Info("Generated assignments",
		zap.String("request_id", requestID),
		zap.Int("assignments", len(assignments)),
	)

	return &dto.AssignmentsResponse{
		RequestID:   requestID,
		Assignments: assignments,
	}, nil
}

// GenerateQuestions implements GenerationService
func (s *generationService) GenerateQuestions(req *dto.GenerateRequest) (*dto.QuestionsResponse, error) {
	requestID := util.NewULID()

	questions, err := s.engine.GenerateQuizQuestions(req.Text)
	if err != nil {
		return nil, err
	}

	logger.Get().Info("Generated quiz questions",
		zap.String("request_id", requestID),
		zap.Int("questions", len(questions)),
	)

	return &dto.QuestionsResponse{
		RequestID: requestID,
		Questions: toQuestionResponses(questions),
	}, nil
}

// ExportStudySheet implements GenerationService
func (s *generationService) ExportStudySheet(req *dto.ExportRequest) (string, error) {
	set, err := s.engine.Generate(req.Text, req.Topic)
	if err != nil {
		return "", err
	}
	return export.StudySheet(req.Title, set), nil
}

// GradeQuiz implements GenerationService. Grading is a pure function of the
// submitted indices against the submitted records; nothing is stored.
func (s *generationService) GradeQuiz(req *dto.GradeRequest) (*dto.GradeResponse, error) {
	if len(req.Answers) != len(req.Questions) {
		return nil, domain.NewInvalidInputError("answers must match questions one-to-one")
	}

	results := make([]dto.GradeResult, 0, len(req.Questions))
	score := 0
	for i, q := range req.Questions {
		correct := req.Answers[i] == q.CorrectIndex
		if correct {
			score++
		}
		results = append(results, dto.GradeResult{
			Correct:      correct,
			CorrectIndex: q.CorrectIndex,
		})
	}

	total := len(req.Questions)
	percentage := 0.0
	if total > 0 {
		percentage = float64(score) / float64(total) * 100
	}

	return &dto.GradeResponse{
		Score:      score,
		Total:      total,
		Percentage: percentage,
		Results:    results,
	}, nil
}

func toQuestionResponses(questions []domain.Question) []dto.QuestionResponse {
	out := make([]dto.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, dto.QuestionResponse{
			Question:     q.Text,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
			Explanation:  q.Explanation,
		})
	}
	return out
}
