package note

import (
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"

	"dental-tracker-api/internal/auth"
	"dental-tracker-api/internal/config"
)

const maxImageBytes = 5 << 20

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Create consumes multipart/form-data: a description field and an optional
// image file.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		log.WithError(err).Warn("invalid multipart payload")
		http.Error(w, "invalid form data (max image size 5MB)", http.StatusBadRequest)
		return
	}

	var image io.Reader
	file, _, err := r.FormFile("image")
	switch {
	case err == nil:
		defer file.Close()
		image = file
	case errors.Is(err, http.ErrMissingFile):
		// image is optional
	default:
		http.Error(w, "invalid image upload", http.StatusBadRequest)
		return
	}

	response, err := h.service.Create(uuid.MustParse(claims.UserID), r.FormValue("description"), image)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, response)
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
