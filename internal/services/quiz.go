package services

import (
	"errors"
	"fmt"
	"strings"

	"quiz-platform-backend/internal/models"

	"gorm.io/gorm"
)

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

func (s *QuizService) ListQuizzes() ([]models.Quiz, error) {
	var quizzes []models.Quiz
	if err := s.db.Order("created_at DESC").Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (s *QuizService) CreateQuiz(title, description string, content models.QuizContent) (*models.Quiz, error) {
	if err := ValidateContent(content); err != nil {
		return nil, err
	}

	quiz := models.Quiz{
		Title:       title,
		Description: description,
		Content:     content,
	}
	if err := s.db.Create(&quiz).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

// ValidateContent rejects malformed quiz documents at creation time so the
// public quiz flow can assume a well-formed shape.
func ValidateContent(content models.QuizContent) error {
	if len(content.Questions) == 0 {
		return errors.New("quiz content must contain at least one question")
	}
	for i, q := range content.Questions {
		if strings.TrimSpace(q.Question) == "" {
			return fmt.Errorf("question %d has empty text", i+1)
		}
		if len(q.Options) < 2 || len(q.Options) > 6 {
			return fmt.Errorf("question %d must have 2 to 6 options", i+1)
		}
		if q.CorrectAnswerIndex < 0 || q.CorrectAnswerIndex >= len(q.Options) {
			return fmt.Errorf("question %d has correctAnswerIndex out of range", i+1)
		}
	}
	return nil
}
