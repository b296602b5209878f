package handlers

import "quiz-platform-backend/internal/models"

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// Type aliases so swag can resolve models in annotations.
type Company = models.Company
type Quiz = models.Quiz
type QuizContent = models.QuizContent
type Session = models.Session
