package quiz

import (
	"context"

	"github.com/saulo-duarte/quiz-lambda/internal/config"
)

type QuizService interface {
	CreateQuiz(ctx context.Context, q *Quiz) error
	GetQuiz(ctx context.Context, id int64) (*Quiz, error)
	ListQuizzes(ctx context.Context) ([]*Quiz, error)
}

type quizService struct {
	repo QuizRepository
}

func NewService(repo QuizRepository) QuizService {
	return &quizService{repo: repo}
}

func (s *quizService) CreateQuiz(ctx context.Context, q *Quiz) error {
	log := config.WithContext(ctx).WithField("title", q.Title)
	log.Debug("Creating quiz")

	if err := s.repo.Save(ctx, q); err != nil {
		log.WithError(err).Error("Failed to create quiz")
		return err
	}

	log.WithField("quiz_id", q.ID).Info("Quiz created successfully")
	return nil
}

func (s *quizService) GetQuiz(ctx context.Context, id int64) (*Quiz, error) {
	log := config.WithContext(ctx).WithField("quiz_id", id)
	log.Debug("Fetching quiz")

	q, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to fetch quiz")
		return nil, err
	}
	if q == nil {
		log.Warn("Quiz not found")
	}
	return q, nil
}

func (s *quizService) ListQuizzes(ctx context.Context) ([]*Quiz, error) {
	config.WithContext(ctx).Debug("Fetching all quizzes")
	return s.repo.FindAll(ctx)
}
