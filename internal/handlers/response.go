package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"prompt-manager/internal/contextutil"
	"prompt-manager/internal/service"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// StatusResponse is the minimal success envelope.
type StatusResponse struct {
	Status string `json:"status"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// writeJSON writes v as a JSON body with the given status code.
func writeJSON(w http.ResponseWriter, ctx context.Context, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, ctx context.Context, statusCode int, message string) {
	writeJSON(w, ctx, statusCode, ErrorResponse{
		Status:  statusError,
		Message: message,
	})
}

// decodeJSON decodes the request body into v, answering 400 on failure.
// Returns false if a response has already been written.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	ctx := r.Context()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, ctx, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// handleServiceError maps service errors to appropriate HTTP status codes and responses.
func handleServiceError(w http.ResponseWriter, ctx context.Context, err error) {
	logger := contextutil.LoggerFromContext(ctx)

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		logger.WarnContext(ctx, "validation error", "error", err)
		writeError(w, ctx, http.StatusBadRequest, service.ValidationMessage(err))
		return
	}

	if errors.Is(err, service.ErrNotFound) {
		writeError(w, ctx, http.StatusNotFound, "Resource not found")
		return
	}

	logger.ErrorContext(ctx, "service error", "error", err)
	writeError(w, ctx, http.StatusInternalServerError, err.Error())
}
