package container

import (
	"context"
	"fmt"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/saulo-duarte/quiz-lambda/internal/auth"
	"github.com/saulo-duarte/quiz-lambda/internal/config"
	"github.com/saulo-duarte/quiz-lambda/internal/quiz"
	"github.com/saulo-duarte/quiz-lambda/internal/quizresult"
	"github.com/saulo-duarte/quiz-lambda/internal/router"
	"github.com/saulo-duarte/quiz-lambda/internal/seeds"
	"github.com/saulo-duarte/quiz-lambda/internal/user"
	util "github.com/saulo-duarte/quiz-lambda/internal/utils"
)

type Container struct {
	Settings            *config.Settings
	DB                  *gorm.DB
	UserContainer       *user.UserContainer
	AuthContainer       *auth.AuthContainer
	QuizContainer       *quiz.QuizContainer
	QuizResultContainer *quizresult.QuizResultContainer
}

// New loads configuration, connects to Postgres and migrates the schema.
func New(ctx context.Context) (*Container, error) {
	config.LoadEnv()
	config.Init()

	settings, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := util.SetLocation(settings.TimeZone); err != nil {
		return nil, err
	}

	if err := config.Connect(ctx, settings.DatabaseDSN, config.PoolOptions{
		MaxOpenConns:    settings.MaxOpenConns,
		MaxIdleConns:    settings.MaxIdleConns,
		ConnMaxLifetime: settings.ConnMaxLifetime,
	}); err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}

	if err := Migrate(config.DB); err != nil {
		return nil, err
	}

	return NewWithDB(config.DB, settings), nil
}

func NewWithDB(db *gorm.DB, settings *config.Settings) *Container {
	userContainer := user.NewUserContainer(db)
	authContainer := auth.NewAuthContainer(userContainer.Repo)
	quizContainer := quiz.NewQuizContainer(db)
	quizResultContainer := quizresult.NewQuizResultContainer(db)

	return &Container{
		Settings:            settings,
		DB:                  db,
		UserContainer:       userContainer,
		AuthContainer:       authContainer,
		QuizContainer:       quizContainer,
		QuizResultContainer: quizResultContainer,
	}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&user.User{},
		&quiz.Quiz{},
		&quiz.Question{},
		&quizresult.QuizResult{},
	); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// Seed populates sample data when enabled and the result table is empty.
func (c *Container) Seed(ctx context.Context) error {
	if c.Settings != nil && !c.Settings.SeedOnStart {
		config.WithContext(ctx).Info("Sample data seeding disabled")
		return nil
	}
	return seeds.NewSeeder(c.DB).Run(ctx)
}

func (c *Container) Router() *chi.Mux {
	origin := config.DefaultAllowedOrigin
	if c.Settings != nil {
		origin = c.Settings.AllowedOrigin
	}

	return router.New(router.RouterConfig{
		AllowedOrigin:     origin,
		UserHandler:       c.UserContainer.Handler,
		AuthHandler:       c.AuthContainer.Handler,
		QuizHandler:       c.QuizContainer.Handler,
		QuizResultHandler: c.QuizResultContainer.Handler,
	})
}
