package handlers

import (
	"log"
	"net/http"

	"quiz-platform-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type GenerateHandler struct {
	aiService *services.AIGenerateService
}

func NewGenerateHandler(aiService *services.AIGenerateService) *GenerateHandler {
	return &GenerateHandler{aiService: aiService}
}

type GenerateRequest struct {
	Text    string `json:"text" binding:"required,min=3"`
	Context string `json:"context"`
}

// Generate godoc
// @Summary      Generate a quiz from training text
// @Description  Turns free text into a structured 10-question quiz document via the Gemini API
// @Tags         generate
// @Accept       json
// @Produce      json
// @Security     AdminToken
// @Param        request body GenerateRequest true "Training text and optional context instructions"
// @Success      200 {object} QuizContent
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /api/generate [post]
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "text content is required"})
		return
	}

	content, err := h.aiService.GenerateQuiz(req.Text, req.Context)
	if err != nil {
		log.Printf("quiz generation: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to generate quiz: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, content)
}
