package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vkazmin/accountd/internal/common"
)

// envelope is the uniform response shape: every success carries statusCode,
// message and data; every failure carries statusCode, message and error.
type envelope struct {
	StatusCode int      `json:"statusCode"`
	Message    []string `json:"message"`
	Data       any      `json:"data,omitempty"`
	Error      string   `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, e envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(e)
}

func respondData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{
		StatusCode: status,
		Message:    []string{"Success"},
		Data:       data,
	})
}

func respondError(w http.ResponseWriter, status int, messages ...string) {
	if len(messages) == 0 {
		messages = []string{http.StatusText(status)}
	}
	writeJSON(w, status, envelope{
		StatusCode: status,
		Message:    messages,
		Error:      messages[0],
	})
}

// statusForError is the single error-kind→HTTP-status mapping. Anything not
// listed is an internal failure and must not leak storage detail outward.
func statusForError(err error) int {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrEmailAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, common.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// respondServiceError translates a service error into the envelope, hiding
// internal messages behind a generic text.
func respondServiceError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		respondError(w, status, "Something went wrong")
		return
	}
	respondError(w, status, err.Error())
}
