package user

import "github.com/go-chi/chi/v5"

// Routes registers the user endpoints at the root of r.
func Routes(r chi.Router, h *Handler) {
	r.Post("/register", h.Register)
	r.Get("/users", h.ListUsers)
}
