package quizresult

import "gorm.io/gorm"

type QuizResultContainer struct {
	Handler *Handler
	Service QuizResultService
	Repo    QuizResultRepository
}

func NewQuizResultContainer(db *gorm.DB) *QuizResultContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &QuizResultContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
