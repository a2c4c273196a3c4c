package auth

import (
	"encoding/json"
	"net/http"

	"github.com/saulo-duarte/quiz-lambda/internal/config"
)

type Handler struct {
	service LoginService
}

func NewHandler(service LoginService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid login request body")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := h.service.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		log.WithError(err).Error("Failed to authenticate user")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if !result.Authenticated {
		config.JSON(w, http.StatusUnauthorized, result)
		return
	}

	config.JSON(w, http.StatusOK, result)
}
