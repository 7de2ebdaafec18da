package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ledgerline/transfer-service/internal/application"
	"github.com/ledgerline/transfer-service/internal/domain"
)

// ErrCodeValidation tags request-shape failures raised at the HTTP boundary.
const ErrCodeValidation = "VALIDATION_ERROR"

// WriteError maps domain and application errors to HTTP responses. Account
// lookups that miss map to 404, every other business rule violation to 400,
// anything unrecognized to 500.
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	statusCode := http.StatusInternalServerError
	errorCode := application.ErrCodeInternal
	message := "Internal server error"

	var domainErr *domain.DomainError
	var svcErr *application.ServiceError

	switch {
	case errors.As(err, &domainErr):
		errorCode = domainErr.Code
		message = domainErr.Message
		if domainErr.Code == domain.ErrCodeAccountNotFound {
			statusCode = http.StatusNotFound
		} else {
			statusCode = http.StatusBadRequest
		}
	case errors.As(err, &svcErr):
		errorCode = svcErr.Code
		message = svcErr.Message
		statusCode = svcErr.HTTPStatus
	default:
		logger.Error("unexpected error", "error", err)
	}

	writeErrorResponse(w, statusCode, errorCode, message, nil)
}

// WriteValidationError reports request-shape failures with one entry per
// offending field.
func WriteValidationError(w http.ResponseWriter, violations []FieldViolation) {
	writeErrorResponse(w, http.StatusBadRequest, ErrCodeValidation, "Validation failed", violations)
}

func writeErrorResponse(w http.ResponseWriter, statusCode int, errorCode, message string, violations []FieldViolation) {
	if violations == nil {
		violations = []FieldViolation{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Success:    false,
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
		Errors:     violations,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
}
