package handlers

import (
	"errors"
	"log"
	"net/http"

	"quiz-platform-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// PublicHandler serves the unauthenticated quiz-taking endpoints.
type PublicHandler struct {
	sessionService *services.SessionService
}

func NewPublicHandler(sessionService *services.SessionService) *PublicHandler {
	return &PublicHandler{sessionService: sessionService}
}

type SubmitRequest struct {
	SessionID uint                        `json:"sessionId" binding:"required"`
	Name      string                      `json:"name" binding:"required,min=1,max=255"`
	Email     string                      `json:"email" binding:"required,email"`
	Answers   []services.AnswerSubmission `json:"answers"`
}

type SubmitResponseBody struct {
	Success       bool                     `json:"success"`
	ParticipantID string                   `json:"participantId"`
	Score         int                      `json:"score"`
	Total         int                      `json:"total"`
	Results       []services.AnswerVerdict `json:"results"`
}

// GetSessionBySlug godoc
// @Summary      Look up a session by public slug
// @Description  Returns quiz questions and options only; correct answers stay server-side
// @Tags         public
// @Produce      json
// @Param        slug query string true "Public session slug"
// @Success      200 {object} services.PublicSession
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/session [get]
func (h *PublicHandler) GetSessionBySlug(c *gin.Context) {
	slug := c.Query("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid slug"})
		return
	}

	session, err := h.sessionService.GetSessionBySlug(slug)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "session not found"})
		case errors.Is(err, services.ErrSessionClosed):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "session is closed"})
		default:
			log.Printf("get session by slug: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, session)
}

// SubmitResponse godoc
// @Summary      Submit quiz answers
// @Description  Grades the submission server-side against the stored answer key and archives participant + response
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        request body SubmitRequest true "Submission"
// @Success      200 {object} SubmitResponseBody
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/submit [post]
func (h *PublicHandler) SubmitResponse(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing required fields"})
		return
	}

	result, err := h.sessionService.SubmitResponse(services.SubmissionInput{
		SessionID: req.SessionID,
		Name:      req.Name,
		Email:     req.Email,
		Answers:   req.Answers,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "session not found"})
		case errors.Is(err, services.ErrSessionClosed):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "session is closed"})
		default:
			log.Printf("submit response: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to submit response"})
		}
		return
	}

	c.JSON(http.StatusOK, SubmitResponseBody{
		Success:       true,
		ParticipantID: result.ParticipantID.String(),
		Score:         result.Score,
		Total:         result.Total,
		Results:       result.Results,
	})
}
