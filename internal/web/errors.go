package web

// errors.go writes the JSON envelopes of the employees API.
//
// Every failure is logged with its support code and request ID, and the
// client receives {success:false, message, error, code}. message is the
// fixed category ("Upload error", "Server / DB error", ...); error carries
// the underlying error text.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/JonMunkholm/prejoin/internal/core"
)

const (
	msgSaved       = "Employee data saved successfully"
	msgServerError = "Server / DB error"
	msgUploadError = "Upload error"
	msgInvalid     = "Validation error"
	msgTooLarge    = "Request body too large"
	msgBusy        = "Server busy"
)

// ErrorResponse is the failure envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
}

// CreateResponse is returned for a stored submission.
type CreateResponse struct {
	Success bool   `json:"success"`
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// ListResponse wraps the stored records.
type ListResponse struct {
	Success bool                  `json:"success"`
	Data    []core.EmployeeRecord `json:"data"`
}

// classifySubmitError picks the status and category message for a failed
// submission.
func classifySubmitError(err error) (int, string) {
	var maxErr *http.MaxBytesError
	var valErr *core.ValidationError
	switch {
	case errors.As(err, &maxErr):
		return http.StatusRequestEntityTooLarge, msgTooLarge
	case errors.Is(err, core.ErrTooManySubmissions):
		return http.StatusServiceUnavailable, msgBusy
	case errors.As(err, &valErr):
		return http.StatusBadRequest, msgInvalid
	case core.IsClientError(err):
		return http.StatusBadRequest, msgUploadError
	default:
		return http.StatusInternalServerError, msgServerError
	}
}

// respondError logs err and writes the JSON failure envelope.
func respondError(w http.ResponseWriter, r *http.Request, err error, status int, message string) {
	userMsg := core.MapError(err)

	level := slog.LevelError
	if status < http.StatusInternalServerError {
		level = slog.LevelWarn
	}
	slog.Log(r.Context(), level, "request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"error", err.Error(),
		"code", userMsg.Code,
		"request_id", middleware.GetReqID(r.Context()),
	)

	if status == http.StatusServiceUnavailable {
		w.Header().Set("Retry-After", "5")
	}
	writeJSON(w, status, ErrorResponse{
		Success: false,
		Message: message,
		Error:   err.Error(),
		Action:  userMsg.Action,
		Code:    userMsg.Code,
	})
}

// writeJSON encodes v as the response body.
// Encoding errors are only logged since the status line is already sent.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode error", "error", err)
	}
}
