package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"testing"

	"quiz-forge/internal/config"
	"quiz-forge/internal/domain"
	"quiz-forge/internal/dto"
	"quiz-forge/internal/handler"
	"quiz-forge/internal/logger"
	"quiz-forge/internal/middleware"
	"quiz-forge/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain initializes the logger used by the error middleware
func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Level: "debug"}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}
	exitVal := m.Run()
	_ = logger.Sync()
	os.Exit(exitVal)
}

// --- Manual Mocks ---

// MockGenerationService
type MockGenerationService struct {
	GenerateFunc            func(req *dto.GenerateRequest) (*dto.GenerateResponse, error)
	GenerateAssignmentsFunc func(req *dto.GenerateRequest) (*dto.AssignmentsResponse, error)
	GenerateQuestionsFunc   func(req *dto.GenerateRequest) (*dto.QuestionsResponse, error)
	ExportStudySheetFunc    func(req *dto.ExportRequest) (string, error)
	GradeQuizFunc           func(req *dto.GradeRequest) (*dto.GradeResponse, error)
}

func (m *MockGenerationService) Generate(req *dto.GenerateRequest) (*dto.GenerateResponse, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(req)
	}
	panic("MockGenerationService.GenerateFunc not implemented")
}
func (m *MockGenerationService) GenerateAssignments(req *dto.GenerateRequest) (*dto.AssignmentsResponse, error) {
	if m.GenerateAssignmentsFunc != nil {
		return m.GenerateAssignmentsFunc(req)
	}
	panic("MockGenerationService.GenerateAssignmentsFunc not implemented")
}
func (m *MockGenerationService) GenerateQuestions(req *dto.GenerateRequest) (*dto.QuestionsResponse, error) {
	if m.GenerateQuestionsFunc != nil {
		return m.GenerateQuestionsFunc(req)
	}
	panic("MockGenerationService.GenerateQuestionsFunc not implemented")
}
func (m *MockGenerationService) ExportStudySheet(req *dto.ExportRequest) (string, error) {
	if m.ExportStudySheetFunc != nil {
		return m.ExportStudySheetFunc(req)
	}
	panic("MockGenerationService.ExportStudySheetFunc not implemented")
}
func (m *MockGenerationService) GradeQuiz(req *dto.GradeRequest) (*dto.GradeResponse, error) {
	if m.GradeQuizFunc != nil {
		return m.GradeQuizFunc(req)
	}
	panic("MockGenerationService.GradeQuizFunc not implemented")
}

func setupApp(svc *MockGenerationService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	h := handler.NewGenerationHandler(svc, validation.NewValidator(1000))

	api := app.Group("/api")
	api.Post("/generate", h.Generate)
	api.Post("/generate/assignments", h.GenerateAssignments)
	api.Post("/generate/questions", h.GenerateQuestions)
	api.Post("/generate/export", h.ExportStudySheet)
	api.Post("/quiz/grade", h.GradeQuiz)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (int, string, []byte) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, resp.Header.Get("Content-Type"), data
}

func TestGenerateEndpoint(t *testing.T) {
	svc := &MockGenerationService{
		GenerateFunc: func(req *dto.GenerateRequest) (*dto.GenerateResponse, error) {
			assert.Equal(t, "Cats are nice.", req.Text)
			return &dto.GenerateResponse{
				RequestID:   "01HZXCVBNMASDFGHJKLQWERTYU",
				Subject:     "the concept of cats",
				Assignments: []string{"a1", "a2"},
				Questions: []dto.QuestionResponse{
					{Question: "q1", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 2, Explanation: "e1"},
					{Question: "q2", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 0, Explanation: "e2"},
					{Question: "q3", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 0, Explanation: "e3"},
				},
			}, nil
		},
	}
	app := setupApp(svc)

	status, _, body := postJSON(t, app, "/api/generate", dto.GenerateRequest{Text: "Cats are nice."})
	require.Equal(t, fiber.StatusOK, status)

	var resp dto.GenerateResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, "the concept of cats", resp.Subject)
	assert.Len(t, resp.Assignments, 2)
	assert.Len(t, resp.Questions, 3)
	assert.Equal(t, 2, resp.Questions[0].CorrectIndex)
}

func TestGenerateEndpointEmptyText(t *testing.T) {
	app := setupApp(&MockGenerationService{})

	status, _, body := postJSON(t, app, "/api/generate", dto.GenerateRequest{Text: "   "})
	require.Equal(t, fiber.StatusBadRequest, status)

	var errResp middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, string(domain.CodeEmptyInput), errResp.Code)
}

func TestGenerateEndpointOversizedText(t *testing.T) {
	app := setupApp(&MockGenerationService{})

	status, _, body := postJSON(t, app, "/api/generate", dto.GenerateRequest{Text: string(bytes.Repeat([]byte("a"), 1001))})
	require.Equal(t, fiber.StatusBadRequest, status)

	var errResp middleware.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, string(domain.CodeValidation), errResp.Code)
	require.Len(t, errResp.Errors, 1)
	assert.Equal(t, "text", errResp.Errors[0].Field)
}

func TestGenerateAssignmentsEndpoint(t *testing.T) {
	svc := &MockGenerationService{
		GenerateAssignmentsFunc: func(req *dto.GenerateRequest) (*dto.AssignmentsResponse, error) {
			assert.Equal(t, "History", req.Topic)
			return &dto.AssignmentsResponse{
				RequestID:   "01HZXCVBNMASDFGHJKLQWERTYU",
				Assignments: []string{"about History one", "about History two"},
			}, nil
		},
	}
	app := setupApp(svc)

	status, _, body := postJSON(t, app, "/api/generate/assignments", dto.GenerateRequest{Text: "Long ago things happened.", Topic: "History"})
	require.Equal(t, fiber.StatusOK, status)

	var resp dto.AssignmentsResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Len(t, resp.Assignments, 2)
}

func TestExportEndpointReturnsMarkdown(t *testing.T) {
	svc := &MockGenerationService{
		ExportStudySheetFunc: func(req *dto.ExportRequest) (string, error) {
			return "# Generated Assignments and Quiz\n\n## Assignment Questions\n", nil
		},
	}
	app := setupApp(svc)

	status, contentType, body := postJSON(t, app, "/api/generate/export", dto.ExportRequest{Text: "Cats are nice."})
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, contentType, "text/markdown")
	assert.Contains(t, string(body), "# Generated Assignments and Quiz")
}

func TestGradeQuizEndpoint(t *testing.T) {
	svc := &MockGenerationService{
		GradeQuizFunc: func(req *dto.GradeRequest) (*dto.GradeResponse, error) {
			return &dto.GradeResponse{
				Score: 2, Total: 3, Percentage: 66.67,
				Results: []dto.GradeResult{
					{Correct: true, CorrectIndex: 1},
					{Correct: false, CorrectIndex: 0},
					{Correct: true, CorrectIndex: 3},
				},
			}, nil
		},
	}
	app := setupApp(svc)

	status, _, body := postJSON(t, app, "/api/quiz/grade", dto.GradeRequest{
		Questions: []dto.QuestionResponse{
			{Question: "q1", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 1},
			{Question: "q2", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 0},
			{Question: "q3", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 3},
		},
		Answers: []int{1, 2, 3},
	})
	require.Equal(t, fiber.StatusOK, status)

	var resp dto.GradeResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, 2, resp.Score)
	assert.Equal(t, 3, resp.Total)
}

func TestGradeQuizEndpointMismatch(t *testing.T) {
	app := setupApp(&MockGenerationService{})

	status, _, body := postJSON(t, app, "/api/quiz/grade", dto.GradeRequest{
		Questions: []dto.QuestionResponse{{Question: "q1", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 1}},
		Answers:   []int{1, 2},
	})
	require.Equal(t, fiber.StatusBadRequest, status)

	var errResp middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, string(domain.CodeInvalidInput), errResp.Code)
}

func TestGenerateEndpointBadBody(t *testing.T) {
	app := setupApp(&MockGenerationService{})

	req := httptest.NewRequest("POST", "/api/generate", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
