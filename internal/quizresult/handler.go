package quizresult

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/quiz-lambda/internal/config"
	util "github.com/saulo-duarte/quiz-lambda/internal/utils"
)

type Handler struct {
	service QuizResultService
}

func NewHandler(s QuizResultService) *Handler {
	return &Handler{service: s}
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Warnf("Invalid %s", name)
		return 0, false
	}
	return id, true
}

func (h *Handler) SubmitResult(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req SubmitResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid quiz result body")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := config.Validate(req); err != nil {
		log.WithError(err).Warn("Invalid quiz result data provided")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	saved, err := h.service.SaveResult(r.Context(), req.ToResult())
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, saved)
}

func (h *Handler) ListResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.service.AllResults(r.Context())
	h.writeResults(w, r, results, err)
}

func (h *Handler) ListByQuiz(w http.ResponseWriter, r *http.Request) {
	quizID, ok := pathID(r, "quizId")
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	results, err := h.service.ResultsByQuizID(r.Context(), quizID)
	h.writeResults(w, r, results, err)
}

func (h *Handler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "userId")
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	results, err := h.service.ResultsByUserID(r.Context(), userID)
	h.writeResults(w, r, results, err)
}

func (h *Handler) ListByUsername(w http.ResponseWriter, r *http.Request) {
	results, err := h.service.ResultsByUsername(r.Context(), chi.URLParam(r, "username"))
	h.writeResults(w, r, results, err)
}

func (h *Handler) ListRecent(w http.ResponseWriter, r *http.Request) {
	results, err := h.service.RecentResults(r.Context())
	h.writeResults(w, r, results, err)
}

func (h *Handler) ListTopPerformers(w http.ResponseWriter, r *http.Request) {
	quizID, ok := pathID(r, "quizId")
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	results, err := h.service.TopPerformersForQuiz(r.Context(), quizID)
	h.writeResults(w, r, results, err)
}

func (h *Handler) ListInRange(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	start, err := util.ParseLocalDateTime(r.URL.Query().Get("start"))
	if err != nil {
		log.WithError(err).Warn("Invalid range start")
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	end, err := util.ParseLocalDateTime(r.URL.Query().Get("end"))
	if err != nil {
		log.WithError(err).Warn("Invalid range end")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	results, err := h.service.ResultsBetween(r.Context(), start.Time, end.Time)
	if errors.Is(err, ErrInvalidRange) {
		log.WithError(err).Warn("Invalid range")
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	h.writeResults(w, r, results, err)
}

func (h *Handler) AverageScore(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quizID, ok := pathID(r, "quizId")
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	avg, err := h.service.AverageScoreForQuiz(r.Context(), quizID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch average score")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, avg)
}

func (h *Handler) BestScore(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, ok := pathID(r, "userId")
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	quizID, ok := pathID(r, "quizId")
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	best, err := h.service.BestScore(r.Context(), userID, quizID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch best score")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if best == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, best)
}

func (h *Handler) Attempts(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, ok := pathID(r, "userId")
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	quizID, ok := pathID(r, "quizId")
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	count, err := h.service.AttemptCount(r.Context(), userID, quizID)
	if err != nil {
		log.WithError(err).Error("Failed to count attempts")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, AttemptsResponse{
		HasTaken:     count > 0,
		AttemptCount: count,
	})
}

func (h *Handler) Statistics(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	stats, err := h.service.QuizStatistics(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to fetch quiz statistics")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, stats)
}

func (h *Handler) writeResults(w http.ResponseWriter, r *http.Request, results []*QuizResult, err error) {
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Error("Failed to fetch quiz results")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if results == nil {
		results = []*QuizResult{}
	}
	config.JSON(w, http.StatusOK, results)
}
