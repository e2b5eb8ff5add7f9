package config

import (
	"encoding/json"
	"net/http"

	"dental-tracker-api/internal/apperror"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// Error translates a service failure into a status code and a caller-safe
// body. Internal errors are logged with full detail and surface only a
// generic message.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	kind := apperror.KindOf(err)
	if kind == apperror.KindInternal {
		WithContext(r.Context()).WithError(err).Error("request failed")
	}
	JSON(w, statusOf(kind), ErrorResponse{Message: apperror.MessageOf(err)})
}

func statusOf(kind apperror.Kind) int {
	switch kind {
	case apperror.KindValidation, apperror.KindConflict:
		return http.StatusBadRequest
	case apperror.KindUnauthorized:
		return http.StatusUnauthorized
	case apperror.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
