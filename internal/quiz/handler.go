package quiz

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/quiz-lambda/internal/config"
)

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req CreateQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid quiz request body")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := config.Validate(req); err != nil {
		log.WithError(err).Warn("Invalid quiz data provided")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	q := req.ToQuiz()
	if err := h.service.CreateQuiz(r.Context(), q); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, q)
}

func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.WithError(err).Warn("Invalid quiz id")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	q, err := h.service.GetQuiz(r.Context(), id)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if q == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, q)
}

func (h *Handler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quizzes, err := h.service.ListQuizzes(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list quizzes")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, quizzes)
}
