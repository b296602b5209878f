package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"quiz-platform-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessionService *services.SessionService
}

func NewSessionHandler(sessionService *services.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

type CreateSessionRequest struct {
	CompanyID uint `json:"companyId" binding:"required"`
	QuizID    uint `json:"quizId" binding:"required"`
}

type UpdateSessionRequest struct {
	Status string `json:"status" binding:"required" example:"closed"`
}

// ListSessions godoc
// @Summary      List all sessions
// @Description  Get all sessions with joined company and quiz display names
// @Tags         sessions
// @Produce      json
// @Security     AdminToken
// @Success      200 {array} services.SessionListItem
// @Failure      401 {object} ErrorResponse
// @Router       /api/sessions [get]
func (h *SessionHandler) ListSessions(c *gin.Context) {
	sessions, err := h.sessionService.ListSessions()
	if err != nil {
		log.Printf("list sessions: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// CreateSession godoc
// @Summary      Create a session
// @Description  Spawn a shareable quiz session for a company with a generated public slug
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     AdminToken
// @Param        request body CreateSessionRequest true "Session data"
// @Success      201 {object} Session
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "companyId and quizId required"})
		return
	}

	session, err := h.sessionService.CreateSession(req.CompanyID, req.QuizID)
	if err != nil {
		if errors.Is(err, services.ErrCompanyNotFound) || errors.Is(err, services.ErrQuizNotFound) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		log.Printf("create session: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, session)
}

// UpdateSession godoc
// @Summary      Update session status
// @Description  Open or close public access to a session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     AdminToken
// @Param        id path int true "Session ID"
// @Param        request body UpdateSessionRequest true "New status"
// @Success      200 {object} Session
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/sessions/{id} [patch]
func (h *SessionHandler) UpdateSession(c *gin.Context) {
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return
	}

	var req UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "status required"})
		return
	}

	session, err := h.sessionService.UpdateStatus(uint(sessionID), req.Status)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, session)
}
