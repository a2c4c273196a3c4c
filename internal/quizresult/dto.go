package quizresult

import util "github.com/saulo-duarte/quiz-lambda/internal/utils"

type SubmitResultRequest struct {
	UserID           *int64             `json:"userId" validate:"required"`
	QuizID           *int64             `json:"quizId" validate:"required"`
	Username         string             `json:"username"`
	QuizTitle        string             `json:"quizTitle"`
	Score            int                `json:"score"`
	TotalQuestions   int                `json:"totalQuestions"`
	TimeTakenSeconds *int               `json:"timeTakenSeconds"`
	CompletedAt      util.LocalDateTime `json:"completedAt"`
}

// ToResult derives the percentage from score and totalQuestions; any
// client-supplied percentage is ignored.
func (r SubmitResultRequest) ToResult() *QuizResult {
	res := NewQuizResult(*r.UserID, r.Username, *r.QuizID, r.QuizTitle, r.Score, r.TotalQuestions)
	res.TimeTakenSeconds = r.TimeTakenSeconds
	if !r.CompletedAt.IsZero() {
		res.CompletedAt = r.CompletedAt
	}
	return res
}

type AttemptsResponse struct {
	HasTaken     bool `json:"hasTaken"`
	AttemptCount int  `json:"attemptCount"`
}
