package services

import (
	"encoding/json"
	"errors"
	"math/rand"
	"time"

	"quiz-platform-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	slugAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	slugLength   = 6
)

type SessionService struct {
	db      *gorm.DB
	scoring *ScoringService
}

func NewSessionService(db *gorm.DB, scoring *ScoringService) *SessionService {
	return &SessionService{db: db, scoring: scoring}
}

// GenerateSlug draws a 6-character public identifier from a lowercase
// alphanumeric alphabet. Uniqueness is enforced only by the database
// constraint; no retry on collision.
func GenerateSlug() string {
	b := make([]byte, slugLength)
	for i := range b {
		b[i] = slugAlphabet[rand.Intn(len(slugAlphabet))]
	}
	return string(b)
}

// SessionListItem is one row of the admin session table, with company and
// quiz display names joined in.
type SessionListItem struct {
	ID          uint      `json:"id"`
	Slug        string    `json:"slug"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	CompanyName string    `json:"companyName"`
	QuizTitle   string    `json:"quizTitle"`
}

func (s *SessionService) ListSessions() ([]SessionListItem, error) {
	var items []SessionListItem
	err := s.db.Table("sessions").
		Select("sessions.id, sessions.slug, sessions.status, sessions.created_at, companies.name AS company_name, quizzes.title AS quiz_title").
		Joins("LEFT JOIN companies ON companies.id = sessions.company_id").
		Joins("LEFT JOIN quizzes ON quizzes.id = sessions.quiz_id").
		Order("sessions.created_at DESC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SessionService) CreateSession(companyID, quizID uint) (*models.Session, error) {
	var company models.Company
	if err := s.db.First(&company, companyID).Error; err != nil {
		return nil, ErrCompanyNotFound
	}
	var quiz models.Quiz
	if err := s.db.First(&quiz, quizID).Error; err != nil {
		return nil, ErrQuizNotFound
	}

	session := models.Session{
		CompanyID: companyID,
		QuizID:    quizID,
		Slug:      GenerateSlug(),
		Status:    models.SessionStatusActive,
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *SessionService) UpdateStatus(sessionID uint, status string) (*models.Session, error) {
	if status != models.SessionStatusActive && status != models.SessionStatusClosed {
		return nil, errors.New("status must be active or closed")
	}

	var session models.Session
	if err := s.db.First(&session, sessionID).Error; err != nil {
		return nil, ErrSessionNotFound
	}

	session.Status = status
	if err := s.db.Save(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// PublicQuestion carries only what a participant may see before submitting:
// the answer key never leaves the server.
type PublicQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type PublicQuiz struct {
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Questions   []PublicQuestion `json:"questions"`
}

type PublicSession struct {
	ID              uint       `json:"id"`
	Status          string     `json:"status"`
	CompanyName     string     `json:"companyName"`
	QuizTitle       string     `json:"quizTitle"`
	QuizDescription string     `json:"quizDescription,omitempty"`
	Quiz            PublicQuiz `json:"quiz"`
}

func (s *SessionService) GetSessionBySlug(slug string) (*PublicSession, error) {
	var session models.Session
	err := s.db.Preload("Company").Preload("Quiz").
		Where("slug = ?", slug).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	if session.Status != models.SessionStatusActive {
		return nil, ErrSessionClosed
	}

	public := PublicSession{
		ID:              session.ID,
		Status:          session.Status,
		CompanyName:     session.Company.Name,
		QuizTitle:       session.Quiz.Title,
		QuizDescription: session.Quiz.Description,
		Quiz: PublicQuiz{
			Title:       session.Quiz.Content.Title,
			Description: session.Quiz.Content.Description,
		},
	}
	for _, q := range session.Quiz.Content.Questions {
		public.Quiz.Questions = append(public.Quiz.Questions, PublicQuestion{
			Question: q.Question,
			Options:  q.Options,
		})
	}

	return &public, nil
}

type SubmissionInput struct {
	SessionID uint
	Name      string
	Email     string
	Answers   []AnswerSubmission
}

type SubmissionResult struct {
	ParticipantID uuid.UUID       `json:"participantId"`
	Score         int             `json:"score"`
	Total         int             `json:"total"`
	Results       []AnswerVerdict `json:"results"`
}

// SubmitResponse grades the submission against the stored answer key and
// persists participant + response atomically.
func (s *SessionService) SubmitResponse(in SubmissionInput) (*SubmissionResult, error) {
	var session models.Session
	err := s.db.Preload("Quiz").First(&session, in.SessionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	if session.Status != models.SessionStatusActive {
		return nil, ErrSessionClosed
	}

	score, verdicts := s.scoring.Grade(session.Quiz.Content, in.Answers)

	answersDoc, err := json.Marshal(verdicts)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	participant := models.Participant{
		SessionID:   session.ID,
		Name:        in.Name,
		Email:       in.Email,
		Score:       &score,
		CompletedAt: &now,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&participant).Error; err != nil {
			return err
		}
		response := models.Response{
			ParticipantID: participant.ID,
			Answers:       answersDoc,
		}
		return tx.Create(&response).Error
	})
	if err != nil {
		return nil, err
	}

	return &SubmissionResult{
		ParticipantID: participant.ID,
		Score:         score,
		Total:         len(session.Quiz.Content.Questions),
		Results:       verdicts,
	}, nil
}
