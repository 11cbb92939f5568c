package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/nishkr/pgmate/internal/service"
	"github.com/nishkr/pgmate/internal/storage"
)

// response is the JSON envelope for every endpoint. Mutations carry a
// message; queries carry data.
type response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeData responds with a successful data payload.
func writeData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, response{Success: true, Data: data})
}

// writeMessage responds with a successful mutation message.
func writeMessage(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusOK, response{Success: true, Message: message, Data: data})
}

// writeError maps a service/storage failure to an HTTP status and a
// user-facing message. The message is the error's reason verbatim; callers
// display it as-is.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, storage.ErrDuplicateKey),
		errors.Is(err, storage.ErrNotAvailable),
		errors.Is(err, storage.ErrAlreadyAssigned):
		status = http.StatusConflict
	case errors.Is(err, storage.ErrNotFound):
		status = http.StatusNotFound
	}

	writeJSON(w, status, response{Success: false, Message: err.Error()})
}

// decode parses a JSON request body into dst.
func decode(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

func badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, response{Success: false, Message: message})
}
