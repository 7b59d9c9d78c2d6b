package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/adarsht2308/dellcube-lms-sub000/models"
)

type ApiResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps a domain error onto the HTTP status that tells the caller
// whether to fix the input, give up, or retry.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrInvalidSignature):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrUnauthorizedTransition):
		status = http.StatusForbidden
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrTerminalState), errors.Is(err, models.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, models.ErrPrecondition):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, models.ErrResolverUnavailable):
		status = http.StatusServiceUnavailable
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}
	if status == http.StatusServiceUnavailable {
		message = "a dependency is unavailable, try again"
	}
	writeJSON(w, status, ApiResponse{Success: false, Message: message})
}
