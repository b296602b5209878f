package handlers

import (
	"log"
	"net/http"

	"quiz-platform-backend/internal/models"
	"quiz-platform-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService *services.QuizService
}

func NewQuizHandler(quizService *services.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

type CreateQuizRequest struct {
	Title       string              `json:"title" binding:"required,min=1,max=255" example:"Onboarding Quiz"`
	Description string              `json:"description"`
	Content     *models.QuizContent `json:"content" binding:"required"`
}

// ListQuizzes godoc
// @Summary      List all quizzes
// @Description  Get all quizzes ordered by creation time descending
// @Tags         quizzes
// @Produce      json
// @Security     AdminToken
// @Success      200 {array} Quiz
// @Failure      401 {object} ErrorResponse
// @Router       /api/quizzes [get]
func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	quizzes, err := h.quizService.ListQuizzes()
	if err != nil {
		log.Printf("list quizzes: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, quizzes)
}

// CreateQuiz godoc
// @Summary      Create a quiz
// @Description  Create a quiz from a structured content document. Malformed content is rejected.
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Security     AdminToken
// @Param        request body CreateQuizRequest true "Quiz data"
// @Success      201 {object} Quiz
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/quizzes [post]
func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var req CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "title and content required"})
		return
	}

	if err := services.ValidateContent(*req.Content); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	quiz, err := h.quizService.CreateQuiz(req.Title, req.Description, *req.Content)
	if err != nil {
		log.Printf("create quiz: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, quiz)
}
