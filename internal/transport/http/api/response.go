package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"washadmin/internal/domain/records"
)

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     *Error `json:"error,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("write json failed", "err", err)
	}
}

func Success(w http.ResponseWriter, data any, requestID string) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: data, RequestID: requestID})
}

func Created(w http.ResponseWriter, data any, requestID string) {
	WriteJSON(w, http.StatusCreated, Envelope{Success: true, Data: data, RequestID: requestID})
}

func Fail(w http.ResponseWriter, status int, code, message, requestID string) {
	WriteJSON(w, status, Envelope{Success: false, Error: &Error{Code: code, Message: message}, RequestID: requestID})
}

// FailErr maps domain errors onto the response taxonomy. Not-found stays
// 404; a detected aggregate/record mismatch is reported distinctly so the
// operator knows a manual correction may be needed.
func FailErr(w http.ResponseWriter, err error, message, requestID string) {
	switch {
	case errors.Is(err, records.ErrNotFound):
		Fail(w, http.StatusNotFound, "not_found", message, requestID)
	case errors.Is(err, records.ErrInconsistentState):
		Fail(w, http.StatusInternalServerError, "inconsistent_state", message, requestID)
	default:
		Fail(w, http.StatusInternalServerError, "internal", message, requestID)
	}
}
