package services_test

import (
	"testing"

	"quiz-platform-backend/internal/services"
)

func TestGradeCountsCorrectAnswers(t *testing.T) {
	scoring := services.NewScoringService()
	content := sampleContent()

	score, verdicts := scoring.Grade(content, []services.AnswerSubmission{
		{QuestionIndex: 0, SelectedIndex: 1},
		{QuestionIndex: 1, SelectedIndex: 1},
	})

	if score != 1 {
		t.Fatalf("expected score 1, got %d", score)
	}
	if len(verdicts) != 2 {
		t.Fatalf("expected 2 verdicts, got %d", len(verdicts))
	}
	if !verdicts[0].Correct || verdicts[1].Correct {
		t.Fatalf("unexpected verdicts: %+v", verdicts)
	}
	if verdicts[0].Explanation != "B is right" {
		t.Fatalf("expected explanation in verdict, got %q", verdicts[0].Explanation)
	}
}

func TestGradeDropsUnknownQuestions(t *testing.T) {
	scoring := services.NewScoringService()
	content := sampleContent()

	score, verdicts := scoring.Grade(content, []services.AnswerSubmission{
		{QuestionIndex: 99, SelectedIndex: 0},
		{QuestionIndex: -1, SelectedIndex: 0},
	})

	if score != 0 || len(verdicts) != 0 {
		t.Fatalf("expected nothing graded, got score=%d verdicts=%d", score, len(verdicts))
	}
}

func TestGradeDuplicateAnswerLastWins(t *testing.T) {
	scoring := services.NewScoringService()
	content := sampleContent()

	score, verdicts := scoring.Grade(content, []services.AnswerSubmission{
		{QuestionIndex: 0, SelectedIndex: 1}, // correct
		{QuestionIndex: 0, SelectedIndex: 3}, // overrides, wrong
	})

	if score != 0 {
		t.Fatalf("duplicate answers must not inflate score, got %d", score)
	}
	if len(verdicts) != 1 || verdicts[0].SelectedIndex != 3 {
		t.Fatalf("expected last answer to win, got %+v", verdicts)
	}
}

func TestGradeOutOfRangeSelectionIsWrong(t *testing.T) {
	scoring := services.NewScoringService()
	content := sampleContent()

	score, verdicts := scoring.Grade(content, []services.AnswerSubmission{
		{QuestionIndex: 0, SelectedIndex: 42},
	})

	if score != 0 {
		t.Fatalf("expected score 0, got %d", score)
	}
	if len(verdicts) != 1 || verdicts[0].Correct {
		t.Fatalf("out-of-range selection must be wrong: %+v", verdicts)
	}
	if verdicts[0].CorrectAnswerIndex != 1 {
		t.Fatalf("verdict must carry the answer key, got %+v", verdicts[0])
	}
}
