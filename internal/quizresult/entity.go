package quizresult

import util "github.com/saulo-duarte/quiz-lambda/internal/utils"

// QuizResult is one attempt at one quiz. Username and QuizTitle are copied at
// creation time and are not updated when the user or quiz is renamed.
type QuizResult struct {
	ID               int64              `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID           int64              `gorm:"column:user_id;index" json:"userId"`
	Username         string             `gorm:"column:username;index" json:"username"`
	QuizID           int64              `gorm:"column:quiz_id;index" json:"quizId"`
	QuizTitle        string             `gorm:"column:quiz_title" json:"quizTitle"`
	Score            int                `gorm:"column:score" json:"score"`
	TotalQuestions   int                `gorm:"column:total_questions" json:"totalQuestions"`
	Percentage       float64            `gorm:"column:percentage" json:"percentage"`
	CompletedAt      util.LocalDateTime `gorm:"column:completed_at;index" json:"completedAt"`
	TimeTakenSeconds *int               `gorm:"column:time_taken_seconds" json:"timeTakenSeconds"`
}

func (QuizResult) TableName() string {
	return "quiz_results"
}

func NewQuizResult(userID int64, username string, quizID int64, quizTitle string, score, totalQuestions int) *QuizResult {
	return &QuizResult{
		UserID:         userID,
		Username:       username,
		QuizID:         quizID,
		QuizTitle:      quizTitle,
		Score:          score,
		TotalQuestions: totalQuestions,
		Percentage:     Percentage(score, totalQuestions),
		CompletedAt:    util.Now(),
	}
}

// Percentage returns score*100/totalQuestions, or 0 when totalQuestions <= 0.
func Percentage(score, totalQuestions int) float64 {
	if totalQuestions <= 0 {
		return 0
	}
	return float64(score) * 100.0 / float64(totalQuestions)
}

func (r *QuizResult) SetScore(score int) {
	r.Score = score
	if r.TotalQuestions > 0 {
		r.Percentage = Percentage(score, r.TotalQuestions)
	}
}

func (r *QuizResult) SetTotalQuestions(totalQuestions int) {
	r.TotalQuestions = totalQuestions
	if totalQuestions > 0 {
		r.Percentage = Percentage(r.Score, totalQuestions)
	}
}

type QuizStatistic struct {
	QuizID        int64   `json:"quizId"`
	QuizTitle     string  `json:"quizTitle"`
	TotalAttempts int64   `json:"totalAttempts"`
	AverageScore  float64 `json:"averageScore"`
	HighestScore  int     `json:"highestScore"`
	LowestScore   int     `json:"lowestScore"`
}
