// Package httputil writes JSON responses and maps errors onto HTTP statuses.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	"mockdata/pkg/platform/sentinel"
)

// ErrorResponse is the body of every error answer.
type ErrorResponse struct {
	Error       string `json:"error"`
	Description string `json:"error_description,omitempty"`
}

// Error codes written in ErrorResponse.Error.
const (
	CodeNotFound        = "not_found"
	CodeDataUnavailable = "data_unavailable"
	CodeInternal        = "internal_error"
)

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps err onto a status and error code. Server-side failures
// never expose their description.
func WriteError(w http.ResponseWriter, err error) {
	status, code := classify(err)
	resp := ErrorResponse{Error: code}
	if status < http.StatusInternalServerError {
		resp.Description = err.Error()
	}
	WriteJSON(w, status, resp)
}

// WriteCode writes an error answer with an explicit status and code and no
// description.
func WriteCode(w http.ResponseWriter, status int, code string) {
	WriteJSON(w, status, ErrorResponse{Error: code})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(err, sentinel.ErrUnavailable):
		return http.StatusServiceUnavailable, CodeDataUnavailable
	}
	return http.StatusInternalServerError, CodeInternal
}
