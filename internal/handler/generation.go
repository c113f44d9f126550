package handler

import (
	"quiz-forge/internal/dto"
	"quiz-forge/internal/service"
	"quiz-forge/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GenerationHandler handles study-material generation HTTP requests
type GenerationHandler struct {
	service   service.GenerationService
	validator *validation.Validator
}

// NewGenerationHandler creates a new GenerationHandler instance
func NewGenerationHandler(service service.GenerationService, validator *validation.Validator) *GenerationHandler {
	return &GenerationHandler{
		service:   service,
		validator: validator,
	}
}

// Generate godoc
// @Summary Generate a study set
// @Description Generates 2 assignment prompts and 3 quiz questions from text
// @Tags generation
// @Accept json
// @Produce json
// @Param request body dto.GenerateRequest true "Source text and optional topic"
// @Success 200 {object} dto.GenerateResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /generate [post]
func (h *GenerationHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.validator.ValidateGenerationText(req.Text); err != nil {
		return err
	}

	resp, err := h.service.Generate(&req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GenerateAssignments godoc
// @Summary Generate assignment prompts
// @Description Generates 2 essay assignment prompts from text
// @Tags generation
// @Accept json
// @Produce json
// @Param request body dto.GenerateRequest true "Source text and optional topic"
// @Success 200 {object} dto.AssignmentsResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /generate/assignments [post]
func (h *GenerationHandler) GenerateAssignments(c *fiber.Ctx) error {
	var req dto.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.validator.ValidateGenerationText(req.Text); err != nil {
		return err
	}

	resp, err := h.service.GenerateAssignments(&req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GenerateQuestions godoc
// @Summary Generate quiz questions
// @Description Generates 3 multiple-choice questions from text
// @Tags generation
// @Accept json
// @Produce json
// @Param request body dto.GenerateRequest true "Source text"
// @Success 200 {object} dto.QuestionsResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /generate/questions [post]
func (h *GenerationHandler) GenerateQuestions(c *fiber.Ctx) error {
	var req dto.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.validator.ValidateGenerationText(req.Text); err != nil {
		return err
	}

	resp, err := h.service.GenerateQuestions(&req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ExportStudySheet godoc
// @Summary Export a markdown study sheet
// @Description Generates a study set and renders it as a markdown document
// @Tags generation
// @Accept json
// @Produce plain
// @Param request body dto.ExportRequest true "Source text, optional topic and title"
// @Success 200 {string} string "Markdown study sheet"
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /generate/export [post]
func (h *GenerationHandler) ExportStudySheet(c *fiber.Ctx) error {
	var req dto.ExportRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.validator.ValidateGenerationText(req.Text); err != nil {
		return err
	}

	sheet, err := h.service.ExportStudySheet(&req)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "text/markdown; charset=utf-8")
	return c.SendString(sheet)
}

// GradeQuiz godoc
// @Summary Grade submitted quiz answers
// @Description Scores chosen option indices against generated question records
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.GradeRequest true "Questions and chosen answers"
// @Success 200 {object} dto.GradeResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quiz/grade [post]
func (h *GenerationHandler) GradeQuiz(c *fiber.Ctx) error {
	var req dto.GradeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.validator.ValidateGradeRequest(len(req.Questions), len(req.Answers)); err != nil {
		return err
	}

	resp, err := h.service.GradeQuiz(&req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
