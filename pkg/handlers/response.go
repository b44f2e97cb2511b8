package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/salvacode/orientlink/pkg/apperrors"
	"github.com/salvacode/orientlink/pkg/llm"
)

// ErrorEnvelope is the uniform error body across all endpoints.
// Details carries a field-name to message map for validation failures only.
type ErrorEnvelope struct {
	Timestamp time.Time         `json:"timestamp"`
	Status    int               `json:"status"`
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
}

// WriteJSON writes a JSON response and returns any encoding error.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	if statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
	}
	return json.NewEncoder(w).Encode(data)
}

// WriteError writes the uniform error envelope and returns any encoding error.
func WriteError(w http.ResponseWriter, statusCode int, errorLabel, message string) error {
	return WriteJSON(w, statusCode, ErrorEnvelope{
		Timestamp: time.Now(),
		Status:    statusCode,
		Error:     errorLabel,
		Message:   message,
	})
}

// WriteValidationError writes a 400 envelope with the per-field message map.
func WriteValidationError(w http.ResponseWriter, details map[string]string) error {
	return WriteJSON(w, http.StatusBadRequest, ErrorEnvelope{
		Timestamp: time.Now(),
		Status:    http.StatusBadRequest,
		Error:     "Validation Failed",
		Message:   "Invalid request parameters",
		Details:   details,
	})
}

// writeServiceError maps a flow error onto the envelope. Model call and
// parse failures surface their message; anything else gets a generic body
// with the full detail logged server-side only.
func writeServiceError(w http.ResponseWriter, logger *zap.Logger, err error) {
	var llmErr *llm.Error
	switch {
	case errors.As(err, &llmErr):
		logger.Error("Model call failed", zap.Error(err))
		if werr := WriteError(w, http.StatusInternalServerError, "Model Call Failed", err.Error()); werr != nil {
			logger.Error("Failed to write error response", zap.Error(werr))
		}
	case errors.Is(err, apperrors.ErrMalformedModelResponse):
		logger.Error("Malformed model response", zap.Error(err))
		if werr := WriteError(w, http.StatusInternalServerError, "Malformed Model Response", err.Error()); werr != nil {
			logger.Error("Failed to write error response", zap.Error(werr))
		}
	default:
		logger.Error("Unexpected error", zap.Error(err))
		if werr := WriteError(w, http.StatusInternalServerError, "Unexpected Error",
			"An unexpected error occurred. Please contact support."); werr != nil {
			logger.Error("Failed to write error response", zap.Error(werr))
		}
	}
}
