package user

import (
	"github.com/go-chi/chi/v5"

	"dental-tracker-api/internal/auth"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/verify-email", h.VerifyEmail)
	r.Post("/reset-password", h.ResetPassword)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Get("/profile", h.Profile)
		r.Put("/profile", h.UpdateProfile)
		r.Post("/change-password", h.ChangePassword)
	})

	return r
}
