package services

import (
	"errors"
	"time"

	"quiz-platform-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ResultsService struct {
	db *gorm.DB
}

func NewResultsService(db *gorm.DB) *ResultsService {
	return &ResultsService{db: db}
}

type SessionInfo struct {
	Company   string    `json:"company"`
	QuizTitle string    `json:"quizTitle"`
	Date      time.Time `json:"date"`
}

type ParticipantResult struct {
	Participant models.Participant `json:"participant"`
	Responses   []models.Response  `json:"responses"`
}

type SessionResults struct {
	Info    SessionInfo         `json:"info"`
	Results []ParticipantResult `json:"results"`
}

// GetResults returns session display info plus every participant with their
// response documents. Responses are fetched with a single join through
// participants rather than one query per participant.
func (s *ResultsService) GetResults(sessionID uint) (*SessionResults, error) {
	var info SessionInfo
	err := s.db.Table("sessions").
		Select("companies.name AS company, quizzes.title AS quiz_title, sessions.created_at AS date").
		Joins("LEFT JOIN companies ON companies.id = sessions.company_id").
		Joins("LEFT JOIN quizzes ON quizzes.id = sessions.quiz_id").
		Where("sessions.id = ?", sessionID).
		Take(&info).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	var participants []models.Participant
	err = s.db.Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&participants).Error
	if err != nil {
		return nil, err
	}

	var responses []models.Response
	err = s.db.Model(&models.Response{}).
		Joins("JOIN participants ON participants.id = responses.participant_id").
		Where("participants.session_id = ?", sessionID).
		Find(&responses).Error
	if err != nil {
		return nil, err
	}

	byParticipant := make(map[uuid.UUID][]models.Response, len(participants))
	for _, r := range responses {
		byParticipant[r.ParticipantID] = append(byParticipant[r.ParticipantID], r)
	}

	results := make([]ParticipantResult, 0, len(participants))
	for _, p := range participants {
		results = append(results, ParticipantResult{
			Participant: p,
			Responses:   byParticipant[p.ID],
		})
	}

	return &SessionResults{Info: info, Results: results}, nil
}
