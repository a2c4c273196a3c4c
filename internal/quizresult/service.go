package quizresult

import (
	"context"
	"errors"
	"time"

	"github.com/saulo-duarte/quiz-lambda/internal/config"
	"github.com/sirupsen/logrus"
)

const recentWindow = 30 * 24 * time.Hour

var ErrInvalidRange = errors.New("start must not be after end")

type QuizResultService interface {
	SaveResult(ctx context.Context, r *QuizResult) (*QuizResult, error)
	CreateResult(ctx context.Context, userID int64, username string, quizID int64, quizTitle string, score, totalQuestions int) (*QuizResult, error)
	AllResults(ctx context.Context) ([]*QuizResult, error)
	ResultsByUserID(ctx context.Context, userID int64) ([]*QuizResult, error)
	ResultsByQuizID(ctx context.Context, quizID int64) ([]*QuizResult, error)
	ResultsByUsername(ctx context.Context, username string) ([]*QuizResult, error)
	ResultsBetween(ctx context.Context, start, end time.Time) ([]*QuizResult, error)
	RecentResults(ctx context.Context) ([]*QuizResult, error)
	TopPerformersForQuiz(ctx context.Context, quizID int64) ([]*QuizResult, error)
	AverageScoreForQuiz(ctx context.Context, quizID int64) (float64, error)
	QuizStatistics(ctx context.Context) ([]QuizStatistic, error)
	BestScore(ctx context.Context, userID, quizID int64) (*QuizResult, error)
	HasTaken(ctx context.Context, userID, quizID int64) (bool, error)
	AttemptCount(ctx context.Context, userID, quizID int64) (int, error)
}

type quizResultService struct {
	repo QuizResultRepository
	now  func() time.Time
}

func NewService(repo QuizResultRepository) QuizResultService {
	return &quizResultService{repo: repo, now: time.Now}
}

func (s *quizResultService) SaveResult(ctx context.Context, r *QuizResult) (*QuizResult, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"user_id": r.UserID,
		"quiz_id": r.QuizID,
	})
	log.Debug("Saving quiz result")

	if err := s.repo.Save(ctx, r); err != nil {
		log.WithError(err).Error("Failed to save quiz result")
		return nil, err
	}

	log.WithField("result_id", r.ID).Info("Quiz result saved")
	return r, nil
}

func (s *quizResultService) CreateResult(ctx context.Context, userID int64, username string, quizID int64, quizTitle string, score, totalQuestions int) (*QuizResult, error) {
	return s.SaveResult(ctx, NewQuizResult(userID, username, quizID, quizTitle, score, totalQuestions))
}

func (s *quizResultService) AllResults(ctx context.Context) ([]*QuizResult, error) {
	config.WithContext(ctx).Debug("Fetching all quiz results")
	return s.repo.FindAllOrderByCompletedAtDesc(ctx)
}

func (s *quizResultService) ResultsByUserID(ctx context.Context, userID int64) ([]*QuizResult, error) {
	config.WithContext(ctx).WithField("user_id", userID).Debug("Fetching quiz results for user")
	return s.repo.FindByUserID(ctx, userID)
}

func (s *quizResultService) ResultsByQuizID(ctx context.Context, quizID int64) ([]*QuizResult, error) {
	config.WithContext(ctx).WithField("quiz_id", quizID).Debug("Fetching quiz results for quiz")
	return s.repo.FindByQuizIDOrderByScoreDesc(ctx, quizID)
}

func (s *quizResultService) ResultsByUsername(ctx context.Context, username string) ([]*QuizResult, error) {
	config.WithContext(ctx).WithField("username", username).Debug("Fetching quiz results for username")
	return s.repo.FindByUsername(ctx, username)
}

func (s *quizResultService) ResultsBetween(ctx context.Context, start, end time.Time) ([]*QuizResult, error) {
	if start.After(end) {
		return nil, ErrInvalidRange
	}
	config.WithContext(ctx).WithFields(logrus.Fields{
		"start": start,
		"end":   end,
	}).Debug("Fetching quiz results in range")
	return s.repo.FindByCompletedAtBetween(ctx, start, end)
}

func (s *quizResultService) RecentResults(ctx context.Context) ([]*QuizResult, error) {
	config.WithContext(ctx).Debug("Fetching recent quiz results")
	return s.repo.RecentResults(ctx, s.now().Add(-recentWindow))
}

func (s *quizResultService) TopPerformersForQuiz(ctx context.Context, quizID int64) ([]*QuizResult, error) {
	config.WithContext(ctx).WithField("quiz_id", quizID).Debug("Fetching top performers")
	return s.repo.TopPerformersForQuiz(ctx, quizID)
}

func (s *quizResultService) AverageScoreForQuiz(ctx context.Context, quizID int64) (float64, error) {
	config.WithContext(ctx).WithField("quiz_id", quizID).Debug("Fetching average score")

	avg, err := s.repo.AverageScoreForQuiz(ctx, quizID)
	if err != nil {
		return 0, err
	}
	if avg == nil {
		return 0.0, nil
	}
	return *avg, nil
}

func (s *quizResultService) QuizStatistics(ctx context.Context) ([]QuizStatistic, error) {
	config.WithContext(ctx).Debug("Fetching quiz statistics")

	rows, err := s.repo.QuizStatistics(ctx)
	if err != nil {
		return nil, err
	}

	stats := make([]QuizStatistic, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, QuizStatistic{
			QuizID:        row.QuizID,
			QuizTitle:     row.QuizTitle,
			TotalAttempts: row.TotalAttempts,
			AverageScore:  row.AverageScore,
			HighestScore:  row.HighestScore,
			LowestScore:   row.LowestScore,
		})
	}
	return stats, nil
}

// BestScore returns the first attempt holding the maximum score, or nil.
func (s *quizResultService) BestScore(ctx context.Context, userID, quizID int64) (*QuizResult, error) {
	results, err := s.attempts(ctx, userID, quizID)
	if err != nil {
		return nil, err
	}

	var best *QuizResult
	for _, r := range results {
		if best == nil || r.Score > best.Score {
			best = r
		}
	}
	return best, nil
}

func (s *quizResultService) HasTaken(ctx context.Context, userID, quizID int64) (bool, error) {
	n, err := s.AttemptCount(ctx, userID, quizID)
	return n > 0, err
}

func (s *quizResultService) AttemptCount(ctx context.Context, userID, quizID int64) (int, error) {
	results, err := s.attempts(ctx, userID, quizID)
	if err != nil {
		return 0, err
	}
	return len(results), nil
}

func (s *quizResultService) attempts(ctx context.Context, userID, quizID int64) ([]*QuizResult, error) {
	config.WithContext(ctx).WithFields(logrus.Fields{
		"user_id": userID,
		"quiz_id": quizID,
	}).Debug("Fetching attempts")
	return s.repo.FindByUserIDAndQuizID(ctx, userID, quizID)
}
