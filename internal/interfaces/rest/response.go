// Package rest defines the HTTP response envelopes and the mapping from
// domain errors to status codes.
package rest

import (
	"encoding/json"
	"net/http"
	"time"
)

// SuccessResponse is the envelope for successful requests.
type SuccessResponse struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data"`
	Timestamp string `json:"timestamp"`
}

// ErrorResponse is the envelope for failed requests.
type ErrorResponse struct {
	Success    bool             `json:"success"`
	StatusCode int              `json:"statusCode"`
	ErrorCode  string           `json:"errorCode"`
	Message    string           `json:"message"`
	Errors     []FieldViolation `json:"errors"`
	Timestamp  string           `json:"timestamp"`
}

// FieldViolation reports one request field that failed validation.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// WriteJSON writes data wrapped in the success envelope.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(SuccessResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
