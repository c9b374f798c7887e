package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/FactoryPlanner_Go/internal/domain"
	"github.com/osse101/FactoryPlanner_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped error response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err, "status", status)
	}
	respondError(w, status, message)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgUnknownItemError         = "Unknown item"
	ErrMsgUnknownRecipeError       = "Unknown recipe"
	ErrMsgRecipeMismatchError      = "Recipe does not produce that item"
	ErrMsgInvalidAmountError       = "Amount must be a positive number"
	ErrMsgInvalidRecipeChoiceError = "That recipe cannot be used for this item"
	ErrMsgPathNotFoundError        = "No plan node at that path"
	ErrMsgMaxDepthError            = "Plan is too deep to resolve"
	ErrMsgInvalidPlanError         = "Plan is malformed"
	ErrMsgPlanNotFoundError        = "Plan not found"
	ErrMsgInvalidInputError        = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Caller faults map to 4xx; anything unrecognised is a server error with a generic message.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUnknownItem):
		return http.StatusBadRequest, ErrMsgUnknownItemError
	case errors.Is(err, domain.ErrUnknownRecipe):
		return http.StatusBadRequest, ErrMsgUnknownRecipeError
	case errors.Is(err, domain.ErrRecipeMismatch):
		return http.StatusBadRequest, ErrMsgRecipeMismatchError
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, ErrMsgInvalidAmountError
	case errors.Is(err, domain.ErrInvalidRecipeChoice):
		return http.StatusBadRequest, ErrMsgInvalidRecipeChoiceError
	case errors.Is(err, domain.ErrPathNotFound):
		return http.StatusBadRequest, ErrMsgPathNotFoundError
	case errors.Is(err, domain.ErrMaxDepthExceeded):
		return http.StatusUnprocessableEntity, ErrMsgMaxDepthError
	case errors.Is(err, domain.ErrInvalidPlan):
		return http.StatusBadRequest, ErrMsgInvalidPlanError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrPlanNotFound):
		return http.StatusNotFound, ErrMsgPlanNotFoundError
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
