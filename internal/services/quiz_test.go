package services_test

import (
	"testing"
	"time"

	"quiz-platform-backend/internal/models"
	"quiz-platform-backend/internal/services"
)

func TestValidateContent(t *testing.T) {
	valid := sampleContent()

	cases := []struct {
		name    string
		mutate  func(*models.QuizContent)
		wantErr bool
	}{
		{"valid", func(c *models.QuizContent) {}, false},
		{"no questions", func(c *models.QuizContent) { c.Questions = nil }, true},
		{"empty question text", func(c *models.QuizContent) { c.Questions[0].Question = "  " }, true},
		{"single option", func(c *models.QuizContent) { c.Questions[0].Options = []string{"A"} }, true},
		{"too many options", func(c *models.QuizContent) {
			c.Questions[0].Options = []string{"A", "B", "C", "D", "E", "F", "G"}
		}, true},
		{"negative correct index", func(c *models.QuizContent) { c.Questions[0].CorrectAnswerIndex = -1 }, true},
		{"correct index out of range", func(c *models.QuizContent) { c.Questions[0].CorrectAnswerIndex = 4 }, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			content := valid
			content.Questions = append([]models.QuizQuestion(nil), valid.Questions...)
			tc.mutate(&content)

			err := services.ValidateContent(content)
			if tc.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestQuizCreateRejectsMalformedContent(t *testing.T) {
	db := newTestDB(t)
	service := services.NewQuizService(db)

	if _, err := service.CreateQuiz("broken", "", models.QuizContent{}); err == nil {
		t.Fatal("expected malformed content to be rejected")
	}

	quizzes, err := service.ListQuizzes()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(quizzes) != 0 {
		t.Fatalf("expected nothing persisted, got %d quizzes", len(quizzes))
	}
}

func TestQuizListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	service := services.NewQuizService(db)

	older, err := service.CreateQuiz("older", "", sampleContent())
	if err != nil {
		t.Fatalf("create older: %v", err)
	}
	db.Model(older).Update("created_at", time.Now().Add(-time.Hour))

	newer, err := service.CreateQuiz("newer", "", sampleContent())
	if err != nil {
		t.Fatalf("create newer: %v", err)
	}

	quizzes, err := service.ListQuizzes()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(quizzes) != 2 {
		t.Fatalf("expected 2 quizzes, got %d", len(quizzes))
	}
	if quizzes[0].ID != newer.ID {
		t.Fatalf("expected newest quiz first, got id %d", quizzes[0].ID)
	}
}

func TestQuizContentRoundTrip(t *testing.T) {
	db := newTestDB(t)
	service := services.NewQuizService(db)

	created, err := service.CreateQuiz("T", "desc", sampleContent())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	var loaded models.Quiz
	if err := db.First(&loaded, created.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(loaded.Content.Questions) != 2 {
		t.Fatalf("expected 2 questions after reload, got %d", len(loaded.Content.Questions))
	}
	if loaded.Content.Questions[0].CorrectAnswerIndex != 1 {
		t.Fatalf("answer key lost in round trip: %+v", loaded.Content.Questions[0])
	}
}
