package services_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"quiz-platform-backend/internal/models"
	"quiz-platform-backend/internal/services"

	"gorm.io/gorm"
)

func seedSession(t *testing.T, db *gorm.DB) (*services.SessionService, *models.Session) {
	t.Helper()

	company, err := services.NewCompanyService(db).CreateCompany("Acme")
	if err != nil {
		t.Fatalf("seed company: %v", err)
	}
	quiz, err := services.NewQuizService(db).CreateQuiz("T", "", sampleContent())
	if err != nil {
		t.Fatalf("seed quiz: %v", err)
	}

	service := services.NewSessionService(db, services.NewScoringService())
	session, err := service.CreateSession(company.ID, quiz.ID)
	if err != nil {
		t.Fatalf("seed session: %v", err)
	}
	return service, session
}

func TestGenerateSlugShape(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		slug := services.GenerateSlug()
		if len(slug) != 6 {
			t.Fatalf("expected 6-character slug, got %q", slug)
		}
		for _, r := range slug {
			if !strings.ContainsRune("abcdefghijklmnopqrstuvwxyz0123456789", r) {
				t.Fatalf("slug %q contains %q outside the alphabet", slug, r)
			}
		}
		seen[slug] = true
	}
	// Not a hard guarantee, but 200 draws out of ~2.2e9 colliding would
	// point at a broken generator.
	if len(seen) != 200 {
		t.Fatalf("expected 200 distinct slugs, got %d", len(seen))
	}
}

func TestCreateSessionDefaults(t *testing.T) {
	db := newTestDB(t)
	_, session := seedSession(t, db)

	if session.Status != models.SessionStatusActive {
		t.Fatalf("expected active status, got %q", session.Status)
	}
	if len(session.Slug) != 6 {
		t.Fatalf("expected 6-character slug, got %q", session.Slug)
	}
}

func TestCreateSessionUnknownReferences(t *testing.T) {
	db := newTestDB(t)
	service := services.NewSessionService(db, services.NewScoringService())

	if _, err := service.CreateSession(99, 99); !errors.Is(err, services.ErrCompanyNotFound) {
		t.Fatalf("expected company not found, got %v", err)
	}

	company, _ := services.NewCompanyService(db).CreateCompany("Acme")
	if _, err := service.CreateSession(company.ID, 99); !errors.Is(err, services.ErrQuizNotFound) {
		t.Fatalf("expected quiz not found, got %v", err)
	}
}

func TestGetSessionBySlug(t *testing.T) {
	db := newTestDB(t)
	service, session := seedSession(t, db)

	if _, err := service.GetSessionBySlug("nosuch"); !errors.Is(err, services.ErrSessionNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	public, err := service.GetSessionBySlug(session.Slug)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if public.CompanyName != "Acme" || public.QuizTitle != "T" {
		t.Fatalf("unexpected display metadata: %+v", public)
	}
	if len(public.Quiz.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(public.Quiz.Questions))
	}

	if _, err := service.UpdateStatus(session.ID, models.SessionStatusClosed); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := service.GetSessionBySlug(session.Slug); !errors.Is(err, services.ErrSessionClosed) {
		t.Fatalf("expected closed error, got %v", err)
	}
}

func TestPublicSessionOmitsAnswerKey(t *testing.T) {
	db := newTestDB(t)
	service, session := seedSession(t, db)

	public, err := service.GetSessionBySlug(session.Slug)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}

	payload, err := json.Marshal(public)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(payload), "correctAnswerIndex") {
		t.Fatalf("public payload leaks the answer key: %s", payload)
	}
	if strings.Contains(string(payload), "explanation") {
		t.Fatalf("public payload leaks explanations: %s", payload)
	}
}

func TestSubmitResponseScoresServerSide(t *testing.T) {
	db := newTestDB(t)
	service, session := seedSession(t, db)

	result, err := service.SubmitResponse(services.SubmissionInput{
		SessionID: session.ID,
		Name:      "Alice",
		Email:     "alice@example.com",
		Answers: []services.AnswerSubmission{
			{QuestionIndex: 0, SelectedIndex: 1},
			{QuestionIndex: 1, SelectedIndex: 1},
		},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if result.Score != 1 || result.Total != 2 {
		t.Fatalf("expected score 1/2, got %d/%d", result.Score, result.Total)
	}

	var participant models.Participant
	if err := db.First(&participant, "id = ?", result.ParticipantID).Error; err != nil {
		t.Fatalf("load participant: %v", err)
	}
	if participant.Score == nil || *participant.Score != 1 {
		t.Fatalf("expected stored score 1, got %v", participant.Score)
	}
	if participant.CompletedAt == nil {
		t.Fatal("expected completedAt to be stamped")
	}

	var response models.Response
	if err := db.First(&response, "participant_id = ?", result.ParticipantID).Error; err != nil {
		t.Fatalf("load response: %v", err)
	}
	var verdicts []services.AnswerVerdict
	if err := json.Unmarshal(response.Answers, &verdicts); err != nil {
		t.Fatalf("decode answers document: %v", err)
	}
	if len(verdicts) != 2 || !verdicts[0].Correct || verdicts[1].Correct {
		t.Fatalf("unexpected archived verdicts: %+v", verdicts)
	}
}

func TestSubmitResponseRejectsClosedSession(t *testing.T) {
	db := newTestDB(t)
	service, session := seedSession(t, db)

	if _, err := service.UpdateStatus(session.ID, models.SessionStatusClosed); err != nil {
		t.Fatalf("close: %v", err)
	}

	_, err := service.SubmitResponse(services.SubmissionInput{
		SessionID: session.ID,
		Name:      "Bob",
		Email:     "bob@example.com",
	})
	if !errors.Is(err, services.ErrSessionClosed) {
		t.Fatalf("expected closed error, got %v", err)
	}
}

func TestSubmitResponseUnknownSession(t *testing.T) {
	db := newTestDB(t)
	service := services.NewSessionService(db, services.NewScoringService())

	_, err := service.SubmitResponse(services.SubmissionInput{
		SessionID: 404,
		Name:      "Bob",
		Email:     "bob@example.com",
	})
	if !errors.Is(err, services.ErrSessionNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateStatusValidation(t *testing.T) {
	db := newTestDB(t)
	service, session := seedSession(t, db)

	if _, err := service.UpdateStatus(session.ID, "archived"); err == nil {
		t.Fatal("expected invalid status to be rejected")
	}
	if _, err := service.UpdateStatus(999, models.SessionStatusClosed); !errors.Is(err, services.ErrSessionNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
