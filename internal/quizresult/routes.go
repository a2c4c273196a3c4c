package quizresult

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.SubmitResult)
	r.Get("/", h.ListResults)
	r.Get("/recent", h.ListRecent)
	r.Get("/range", h.ListInRange)
	r.Get("/quiz/{quizId}", h.ListByQuiz)
	r.Get("/user/{userId}", h.ListByUser)
	r.Get("/user/{userId}/quiz/{quizId}/best", h.BestScore)
	r.Get("/user/{userId}/quiz/{quizId}/attempts", h.Attempts)
	r.Get("/username/{username}", h.ListByUsername)
	r.Get("/top-performers/{quizId}", h.ListTopPerformers)
	r.Get("/average-score/{quizId}", h.AverageScore)
	return r
}
