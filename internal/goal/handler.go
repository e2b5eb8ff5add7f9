package goal

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"dental-tracker-api/internal/auth"
	"dental-tracker-api/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	responses, err := h.service.List(uuid.MustParse(claims.UserID))
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, responses)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto CreateGoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	response, err := h.service.Create(uuid.MustParse(claims.UserID), dto)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	goalID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var dto UpdateGoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	response, err := h.service.Update(uuid.MustParse(claims.UserID), goalID, dto)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	goalID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(uuid.MustParse(claims.UserID), goalID); err != nil {
		if errors.Is(err, ErrHasActivities) {
			// machine-readable flag so the client can offer force-delete
			config.JSON(w, http.StatusBadRequest, DeleteBlockedResponse{
				Message:       ErrHasActivities.Message,
				HasActivities: true,
			})
			return
		}
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{"message": "goal deleted"})
}

func (h *Handler) ForceDelete(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	goalID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.service.ForceDelete(uuid.MustParse(claims.UserID), goalID); err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{"message": "goal and activities deleted"})
}
