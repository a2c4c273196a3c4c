package seeds

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/saulo-duarte/quiz-lambda/internal/config"
	"github.com/saulo-duarte/quiz-lambda/internal/quiz"
	"github.com/saulo-duarte/quiz-lambda/internal/quizresult"
	"github.com/saulo-duarte/quiz-lambda/internal/user"
	util "github.com/saulo-duarte/quiz-lambda/internal/utils"
	"gorm.io/gorm"
)

const participationCutoff = 0.3

// Seeder fills an empty database with a teacher, students, quizzes and results.
type Seeder struct {
	db   *gorm.DB
	rand *rand.Rand
	now  func() time.Time
}

type Option func(*Seeder)

func WithRand(r *rand.Rand) Option {
	return func(s *Seeder) { s.rand = r }
}

func WithClock(now func() time.Time) Option {
	return func(s *Seeder) { s.now = now }
}

func NewSeeder(db *gorm.DB, opts ...Option) *Seeder {
	s := &Seeder{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run seeds only when quiz_results is empty. The whole reset-and-populate
// sequence runs in one transaction.
func (s *Seeder) Run(ctx context.Context) error {
	log := config.WithContext(ctx)

	count, err := quizresult.NewRepository(s.db).Count(ctx)
	if err != nil {
		return fmt.Errorf("count quiz results: %w", err)
	}
	if count > 0 {
		log.WithField("results", count).Info("Quiz results present, skipping sample data")
		return nil
	}

	log.Info("Initializing sample student data...")
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := user.NewRepository(tx)
		quizzes := quiz.NewRepository(tx)
		results := quizresult.NewRepository(tx)

		if err := users.DeleteAll(ctx); err != nil {
			return fmt.Errorf("clear users: %w", err)
		}
		if err := quizzes.DeleteAll(ctx); err != nil {
			return fmt.Errorf("clear quizzes: %w", err)
		}
		if err := results.DeleteAll(ctx); err != nil {
			return fmt.Errorf("clear quiz results: %w", err)
		}

		if err := s.createTeacher(ctx, users); err != nil {
			return err
		}
		students, err := s.createStudents(ctx, users)
		if err != nil {
			return err
		}
		created, err := s.createQuizzes(ctx, quizzes)
		if err != nil {
			return err
		}
		return s.createResults(ctx, results, students, created)
	})
	if err != nil {
		log.WithError(err).Error("Sample data initialization failed")
		return err
	}

	log.Info("Sample data initialization completed!")
	return nil
}

func (s *Seeder) createTeacher(ctx context.Context, users user.UserRepository) error {
	isTeacher := true
	teacher := &user.User{
		Username:  teacherUsername,
		Email:     "teacher@school.edu",
		Password:  samplePassword,
		IsTeacher: &isTeacher,
		Phone:     "123-456-7890",
	}
	if err := users.Save(ctx, teacher); err != nil {
		return fmt.Errorf("create teacher: %w", err)
	}
	config.WithContext(ctx).Info("Created teacher user.")
	return nil
}

func (s *Seeder) createStudents(ctx context.Context, users user.UserRepository) ([]*user.User, error) {
	for _, name := range studentNames {
		existing, err := users.FindByUsername(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("look up student %s: %w", name, err)
		}
		if existing != nil {
			continue
		}

		isTeacher := false
		student := &user.User{
			Username:  name,
			Email:     name + "@student.edu",
			Password:  samplePassword,
			IsTeacher: &isTeacher,
			Phone:     "000-000-0000",
		}
		if err := users.Save(ctx, student); err != nil {
			return nil, fmt.Errorf("create student %s: %w", name, err)
		}
	}

	students, err := users.FindAllStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

func (s *Seeder) createQuizzes(ctx context.Context, quizzes quiz.QuizRepository) ([]*quiz.Quiz, error) {
	created := sampleQuizzes()
	for _, q := range created {
		if err := quizzes.Save(ctx, q); err != nil {
			return nil, fmt.Errorf("create quiz %q: %w", q.Title, err)
		}
	}
	return created, nil
}

func (s *Seeder) createResults(ctx context.Context, results quizresult.QuizResultRepository, students []*user.User, quizzes []*quiz.Quiz) error {
	now := s.now()

	for _, student := range students {
		for _, q := range quizzes {
			if s.rand.Float64() <= participationCutoff {
				continue
			}

			total := len(q.Questions)
			res := quizresult.NewQuizResult(student.ID, student.Username, q.ID, q.Title, s.realisticScore(total), total)

			completed := now.
				AddDate(0, 0, -s.rand.Intn(30)).
				Add(-time.Duration(s.rand.Intn(24)) * time.Hour).
				Add(-time.Duration(s.rand.Intn(60)) * time.Minute)
			res.CompletedAt = util.NewLocalDateTime(completed)

			taken := 60 + s.rand.Intn(540)
			res.TimeTakenSeconds = &taken

			if err := results.Save(ctx, res); err != nil {
				return fmt.Errorf("create result for %s on %q: %w", student.Username, q.Title, err)
			}
		}
	}
	return nil
}

// realisticScore draws from four tiers: 20% at 90-100%, 30% at 75-89%,
// 30% at 60-74% and 20% at 40-59%, rounded up to whole answers.
func (s *Seeder) realisticScore(total int) int {
	var low, span float64
	switch tier := s.rand.Float64(); {
	case tier < 0.2:
		low, span = 0.9, 0.1
	case tier < 0.5:
		low, span = 0.75, 0.14
	case tier < 0.8:
		low, span = 0.6, 0.14
	default:
		low, span = 0.4, 0.19
	}
	return int(math.Ceil(float64(total) * (low + s.rand.Float64()*span)))
}
