package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saulo-duarte/quiz-lambda/internal/auth"
	"github.com/saulo-duarte/quiz-lambda/internal/middlewares"
	"github.com/saulo-duarte/quiz-lambda/internal/quiz"
	"github.com/saulo-duarte/quiz-lambda/internal/quizresult"
	"github.com/saulo-duarte/quiz-lambda/internal/user"
)

type RouterConfig struct {
	AllowedOrigin     string
	UserHandler       *user.Handler
	AuthHandler       *auth.Handler
	QuizHandler       *quiz.Handler
	QuizResultHandler *quizresult.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middlewares.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.AllowedOrigin))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	user.Routes(r, cfg.UserHandler)
	auth.Routes(r, cfg.AuthHandler)
	r.Mount("/quizzes", quiz.Routes(cfg.QuizHandler))
	r.Mount("/quiz-results", quizresult.Routes(cfg.QuizResultHandler))
	r.Get("/quiz-statistics", cfg.QuizResultHandler.Statistics)

	return r
}
