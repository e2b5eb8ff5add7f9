package activity

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"dental-tracker-api/internal/auth"
	"dental-tracker-api/internal/config"
)

const lastNDaysDefault = 7

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListLastSevenDays(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	responses, err := h.service.ListLastNDays(uuid.MustParse(claims.UserID), lastNDaysDefault)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, responses)
}

func (h *Handler) ListByGoal(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	goalID, err := uuid.Parse(chi.URLParam(r, "goalId"))
	if err != nil {
		http.Error(w, "invalid goal id", http.StatusBadRequest)
		return
	}

	responses, err := h.service.ListByGoal(uuid.MustParse(claims.UserID), goalID)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, responses)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto CreateActivityDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("invalid activity payload")
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
