package activity

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"dental-tracker-api/internal/note"
)

// Routes mounts the activity endpoints together with the note endpoints,
// which the clients reach under the /activities prefix.
func Routes(h *Handler, notes *note.Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/last-seven-days", h.ListLastSevenDays)
	r.Get("/goal/{goalId}", h.ListByGoal)
	r.Post("/", h.Create)

	r.Post("/note", notes.Create)
	r.Get("/notes", notes.List)

	return r
}
