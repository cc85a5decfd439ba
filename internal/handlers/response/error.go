package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"gitlab.com/void-training.net/internal/static/errs"
)

type ErrorMessage struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

func WriteError(w http.ResponseWriter, err ErrorMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.StatusCode)
	_ = json.NewEncoder(w).Encode(err)
}

func WriteSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(data)
}

func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// FromError maps service errors onto HTTP error messages
func FromError(err error) ErrorMessage {
	switch {
	case errors.Is(err, errs.NotFound):
		return ErrorMessage{Message: "Submission not found", StatusCode: http.StatusNotFound}
	case errors.Is(err, errs.InvalidAction), errors.Is(err, errs.InvalidInput):
		return ErrorMessage{Message: err.Error(), StatusCode: http.StatusBadRequest}
	default:
		return ErrorMessage{Message: "Internal server error", StatusCode: http.StatusInternalServerError}
	}
}
