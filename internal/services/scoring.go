package services

import (
	"sort"

	"quiz-platform-backend/internal/models"
)

type ScoringService struct{}

func NewScoringService() *ScoringService {
	return &ScoringService{}
}

// AnswerSubmission is one selected option as sent by the public client.
type AnswerSubmission struct {
	QuestionIndex int `json:"questionIndex"`
	SelectedIndex int `json:"selectedIndex"`
}

// AnswerVerdict is the server-side judgement of one answer. The stored
// response document is an array of these.
type AnswerVerdict struct {
	QuestionIndex      int    `json:"questionIndex"`
	SelectedIndex      int    `json:"selectedIndex"`
	Correct            bool   `json:"correct"`
	CorrectAnswerIndex int    `json:"correctAnswerIndex"`
	Explanation        string `json:"explanation,omitempty"`
}

// Grade recomputes correctness against the stored answer key. The client is
// never trusted with scoring: answers to unknown questions are dropped, a
// duplicate answer for the same question keeps only the last one, and an
// out-of-range selection counts as wrong.
func (s *ScoringService) Grade(content models.QuizContent, answers []AnswerSubmission) (int, []AnswerVerdict) {
	byQuestion := make(map[int]AnswerSubmission)
	for _, a := range answers {
		if a.QuestionIndex < 0 || a.QuestionIndex >= len(content.Questions) {
			continue
		}
		byQuestion[a.QuestionIndex] = a
	}

	indexes := make([]int, 0, len(byQuestion))
	for idx := range byQuestion {
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)

	score := 0
	verdicts := make([]AnswerVerdict, 0, len(indexes))
	for _, idx := range indexes {
		a := byQuestion[idx]
		q := content.Questions[idx]

		correct := a.SelectedIndex >= 0 &&
			a.SelectedIndex < len(q.Options) &&
			a.SelectedIndex == q.CorrectAnswerIndex
		if correct {
			score++
		}

		verdicts = append(verdicts, AnswerVerdict{
			QuestionIndex:      idx,
			SelectedIndex:      a.SelectedIndex,
			Correct:            correct,
			CorrectAnswerIndex: q.CorrectAnswerIndex,
			Explanation:        q.Explanation,
		})
	}

	return score, verdicts
}
