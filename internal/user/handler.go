package user

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"dental-tracker-api/internal/apperror"
	"dental-tracker-api/internal/auth"
	"dental-tracker-api/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.Register(dto); err != nil {
		log.WithField("email", dto.Email).Warn("registration rejected")
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{"message": "registration successful"})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	response, err := h.service.Login(dto)
	if err != nil {
		log.WithField("email", dto.Email).Warn("login rejected")
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var dto VerifyEmailDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.VerifyEmail(dto); err != nil {
		// the reset flow reports unknown emails as a plain bad request
		if apperror.KindOf(err) == apperror.KindNotFound {
			config.JSON(w, http.StatusBadRequest, config.ErrorResponse{Message: apperror.MessageOf(err)})
			return
		}
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, VerifyEmailResponse{Exists: true})
}

func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto ResetPasswordDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.ResetPassword(dto); err != nil {
		log.WithField("email", dto.Email).Warn("password reset rejected")
		if apperror.KindOf(err) == apperror.KindNotFound {
			config.JSON(w, http.StatusBadRequest, config.ErrorResponse{Message: apperror.MessageOf(err)})
			return
		}
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	response, err := h.service.Profile(uuid.MustParse(claims.UserID))
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto UpdateProfileDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	response, err := h.service.UpdateProfile(uuid.MustParse(claims.UserID), dto)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto ChangePasswordDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.ChangePassword(uuid.MustParse(claims.UserID), dto); err != nil {
		config.Error(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}
