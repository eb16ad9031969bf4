package server

import (
	"encoding/json"
	"net/http"
	"time"
)

// Error codes carried in ErrorBody.Code.
const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeNotAllowed     = "METHOD_NOT_ALLOWED"
	CodeRateLimited    = "RATE_LIMITED"
	CodeNotFound       = "NOT_FOUND"
	CodeInternal       = "INTERNAL_ERROR"
)

// Response is the envelope every API endpoint answers with.
type Response struct {
	Success   bool       `json:"success"`
	Data      any        `json:"data,omitempty"`
	Error     *ErrorBody `json:"error,omitempty"`
	Timestamp string     `json:"timestamp"`
}

// ErrorBody describes a failed request.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, Response{Success: true, Data: data, Timestamp: timestamp()})
}

func writeError(w http.ResponseWriter, status int, code, message string, details any) {
	writeJSON(w, status, Response{
		Success:   false,
		Error:     &ErrorBody{Code: code, Message: message, Details: details},
		Timestamp: timestamp(),
	})
}
