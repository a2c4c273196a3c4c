package quiz

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type QuizRepository interface {
	Save(ctx context.Context, q *Quiz) error
	FindByID(ctx context.Context, id int64) (*Quiz, error)
	FindAll(ctx context.Context) ([]*Quiz, error)
	DeleteAll(ctx context.Context) error
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func orderedQuestions(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// Save inserts or updates the quiz and replaces its question set.
func (r *quizRepository) Save(ctx context.Context, q *Quiz) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if q.ID != 0 {
			if err := tx.Where("quiz_id = ?", q.ID).Delete(&Question{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Omit("Questions").Save(q).Error; err != nil {
			return err
		}

		if len(q.Questions) == 0 {
			q.Questions = []Question{}
			return nil
		}
		for i := range q.Questions {
			q.Questions[i].ID = 0
			q.Questions[i].QuizID = q.ID
			q.Questions[i].Position = i
		}
		return tx.Create(&q.Questions).Error
	})
}

func (r *quizRepository) FindByID(ctx context.Context, id int64) (*Quiz, error) {
	var q Quiz
	if err := r.db.WithContext(ctx).
		Preload("Questions", orderedQuestions).
		First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if q.Questions == nil {
		q.Questions = []Question{}
	}
	return &q, nil
}

func (r *quizRepository) FindAll(ctx context.Context) ([]*Quiz, error) {
	quizzes := []*Quiz{}
	if err := r.db.WithContext(ctx).
		Preload("Questions", orderedQuestions).
		Order("id ASC").
		Find(&quizzes).Error; err != nil {
		return nil, err
	}
	for _, q := range quizzes {
		if q.Questions == nil {
			q.Questions = []Question{}
		}
	}
	return quizzes, nil
}

func (r *quizRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&Question{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&Quiz{}).Error
	})
}
