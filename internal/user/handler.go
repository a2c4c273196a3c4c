package user

import (
	"encoding/json"
	"net/http"

	"github.com/saulo-duarte/quiz-lambda/internal/config"
)

type Handler struct {
	repo UserRepository
}

func NewHandler(repo UserRepository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid register request body")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := config.Validate(req); err != nil {
		log.WithField("password_provided", req.Password != nil).
			WithError(err).
			Warn("Invalid user data")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	u := req.ToUser()
	if err := h.repo.Save(r.Context(), u); err != nil {
		log.WithError(err).Error("Failed to register user")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.WithField("user_id", u.ID).Info("User registered")
	config.JSON(w, http.StatusOK, u)
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	users, err := h.repo.FindAll(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list users")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, users)
}
