package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"dental-tracker-api/internal/activity"
	"dental-tracker-api/internal/auth"
	"dental-tracker-api/internal/goal"
	"dental-tracker-api/internal/middlewares"
	"dental-tracker-api/internal/note"
	"dental-tracker-api/internal/tip"
	"dental-tracker-api/internal/user"
)

type RouterConfig struct {
	UserHandler     *user.Handler
	GoalHandler     *goal.Handler
	ActivityHandler *activity.Handler
	NoteHandler     *note.Handler
	TipHandler      *tip.Handler
	AllowedOrigins  []string
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.AllowedOrigins))

	r.Mount("/users", user.Routes(cfg.UserHandler))

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/goals", goal.Routes(cfg.GoalHandler))
		r.Mount("/activities", activity.Routes(cfg.ActivityHandler, cfg.NoteHandler))
		r.Mount("/tips", tip.Routes(cfg.TipHandler))
	})

	return r
}
