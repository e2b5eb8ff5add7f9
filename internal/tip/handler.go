package tip

import (
	"net/http"

	"dental-tracker-api/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Random(w http.ResponseWriter, r *http.Request) {
	t, err := h.service.Random()
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, t)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	tips, err := h.service.ListActive()
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, tips)
}
