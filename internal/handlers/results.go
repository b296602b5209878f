package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"quiz-platform-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ResultsHandler struct {
	resultsService *services.ResultsService
}

func NewResultsHandler(resultsService *services.ResultsService) *ResultsHandler {
	return &ResultsHandler{resultsService: resultsService}
}

// GetResults godoc
// @Summary      Get session results
// @Description  Session info plus every participant with their archived response documents
// @Tags         results
// @Produce      json
// @Security     AdminToken
// @Param        sessionId query int true "Session ID"
// @Success      200 {object} services.SessionResults
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/results [get]
func (h *ResultsHandler) GetResults(c *gin.Context) {
	results, ok := h.loadResults(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, results)
}

// ExportResults godoc
// @Summary      Export session results as CSV
// @Tags         results
// @Produce      text/csv
// @Security     AdminToken
// @Param        sessionId query int true "Session ID"
// @Success      200 {string} string "CSV attachment"
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/results/export [get]
func (h *ResultsHandler) ExportResults(c *gin.Context) {
	results, ok := h.loadResults(c)
	if !ok {
		return
	}

	filename := strings.ReplaceAll(results.Info.QuizTitle, " ", "_")
	if filename == "" {
		filename = "results"
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))

	w := csv.NewWriter(c.Writer)
	w.Write([]string{"name", "email", "score", "completed_at"})
	for _, r := range results.Results {
		p := r.Participant
		score := ""
		if p.Score != nil {
			score = strconv.Itoa(*p.Score)
		}
		completed := ""
		if p.CompletedAt != nil {
			completed = p.CompletedAt.Format("2006-01-02 15:04:05")
		}
		w.Write([]string{p.Name, p.Email, score, completed})
	}
	w.Flush()
}

func (h *ResultsHandler) loadResults(c *gin.Context) (*services.SessionResults, bool) {
	sessionIDParam := c.Query("sessionId")
	if sessionIDParam == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing sessionId"})
		return nil, false
	}

	sessionID, err := strconv.ParseUint(sessionIDParam, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid sessionId"})
		return nil, false
	}

	results, err := h.resultsService.GetResults(uint(sessionID))
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "session not found"})
			return nil, false
		}
		log.Printf("get results: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return nil, false
	}

	return results, true
}
