package quizresult

import (
	"context"
	"database/sql"
	"errors"
	"time"

	util "github.com/saulo-duarte/quiz-lambda/internal/utils"
	"gorm.io/gorm"
)

type QuizResultRepository interface {
	Save(ctx context.Context, r *QuizResult) error
	FindByID(ctx context.Context, id int64) (*QuizResult, error)
	FindAll(ctx context.Context) ([]*QuizResult, error)
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error

	FindByUserID(ctx context.Context, userID int64) ([]*QuizResult, error)
	FindByQuizID(ctx context.Context, quizID int64) ([]*QuizResult, error)
	FindByUserIDAndQuizID(ctx context.Context, userID, quizID int64) ([]*QuizResult, error)
	FindByUsername(ctx context.Context, username string) ([]*QuizResult, error)
	FindAllOrderByCompletedAtDesc(ctx context.Context) ([]*QuizResult, error)
	FindByQuizIDOrderByScoreDesc(ctx context.Context, quizID int64) ([]*QuizResult, error)
	FindByCompletedAtBetween(ctx context.Context, start, end time.Time) ([]*QuizResult, error)

	AverageScoreForQuiz(ctx context.Context, quizID int64) (*float64, error)
	TopPerformersForQuiz(ctx context.Context, quizID int64) ([]*QuizResult, error)
	RecentResults(ctx context.Context, since time.Time) ([]*QuizResult, error)
	QuizStatistics(ctx context.Context) ([]StatisticsRow, error)
}

// StatisticsRow is one GROUP BY (quiz_id, quiz_title) aggregate.
type StatisticsRow struct {
	QuizID        int64
	QuizTitle     string
	TotalAttempts int64
	AverageScore  float64
	HighestScore  int
	LowestScore   int
}

type quizResultRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizResultRepository {
	return &quizResultRepository{db: db}
}

func (r *quizResultRepository) Save(ctx context.Context, res *QuizResult) error {
	if res.CompletedAt.IsZero() {
		res.CompletedAt = util.Now()
	}
	return r.db.WithContext(ctx).Save(res).Error
}

func (r *quizResultRepository) FindByID(ctx context.Context, id int64) (*QuizResult, error) {
	var res QuizResult
	if err := r.db.WithContext(ctx).First(&res, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

func (r *quizResultRepository) FindAll(ctx context.Context) ([]*QuizResult, error) {
	return r.find(r.db.WithContext(ctx).Order("id ASC"))
}

func (r *quizResultRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&QuizResult{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *quizResultRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&QuizResult{}).Error
}

func (r *quizResultRepository) FindByUserID(ctx context.Context, userID int64) ([]*QuizResult, error) {
	return r.find(r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC"))
}

func (r *quizResultRepository) FindByQuizID(ctx context.Context, quizID int64) ([]*QuizResult, error) {
	return r.find(r.db.WithContext(ctx).Where("quiz_id = ?", quizID).Order("id ASC"))
}

func (r *quizResultRepository) FindByUserIDAndQuizID(ctx context.Context, userID, quizID int64) ([]*QuizResult, error) {
	return r.find(r.db.WithContext(ctx).
		Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Order("id ASC"))
}

func (r *quizResultRepository) FindByUsername(ctx context.Context, username string) ([]*QuizResult, error) {
	return r.find(r.db.WithContext(ctx).Where("username = ?", username).Order("id ASC"))
}

func (r *quizResultRepository) FindAllOrderByCompletedAtDesc(ctx context.Context) ([]*QuizResult, error) {
	return r.find(r.db.WithContext(ctx).Order("completed_at DESC"))
}

func (r *quizResultRepository) FindByQuizIDOrderByScoreDesc(ctx context.Context, quizID int64) ([]*QuizResult, error) {
	return r.find(r.db.WithContext(ctx).Where("quiz_id = ?", quizID).Order("score DESC"))
}

// FindByCompletedAtBetween is inclusive on both bounds.
func (r *quizResultRepository) FindByCompletedAtBetween(ctx context.Context, start, end time.Time) ([]*QuizResult, error) {
	return r.find(r.db.WithContext(ctx).
		Where("completed_at BETWEEN ? AND ?", util.NewLocalDateTime(start), util.NewLocalDateTime(end)).
		Order("completed_at ASC"))
}

// AverageScoreForQuiz returns nil when the quiz has no results.
func (r *quizResultRepository) AverageScoreForQuiz(ctx context.Context, quizID int64) (*float64, error) {
	var avg sql.NullFloat64
	row := r.db.WithContext(ctx).
		Model(&QuizResult{}).
		Select("AVG(percentage)").
		Where("quiz_id = ?", quizID).
		Row()
	if err := row.Scan(&avg); err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}

// TopPerformersForQuiz ranks by score; earlier submissions win ties.
func (r *quizResultRepository) TopPerformersForQuiz(ctx context.Context, quizID int64) ([]*QuizResult, error) {
	return r.find(r.db.WithContext(ctx).
		Where("quiz_id = ?", quizID).
		Order("score DESC").
		Order("completed_at ASC"))
}

func (r *quizResultRepository) RecentResults(ctx context.Context, since time.Time) ([]*QuizResult, error) {
	return r.find(r.db.WithContext(ctx).
		Where("completed_at >= ?", util.NewLocalDateTime(since)).
		Order("completed_at DESC"))
}

func (r *quizResultRepository) QuizStatistics(ctx context.Context) ([]StatisticsRow, error) {
	rows := []StatisticsRow{}
	if err := r.db.WithContext(ctx).
		Model(&QuizResult{}).
		Select(`quiz_id AS quiz_id,
			quiz_title AS quiz_title,
			COUNT(*) AS total_attempts,
			AVG(percentage) AS average_score,
			MAX(score) AS highest_score,
			MIN(score) AS lowest_score`).
		Group("quiz_id, quiz_title").
		Order("quiz_id ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *quizResultRepository) find(q *gorm.DB) ([]*QuizResult, error) {
	results := []*QuizResult{}
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
