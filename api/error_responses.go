package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	kerrors "github.com/gcbaptista/go-word-kernel/internal/errors"
)

// ErrorCode represents standardized error codes for the API
type ErrorCode string

const (
	// Client Error Codes (4xx)
	ErrorCodeValidationFailed  ErrorCode = "VALIDATION_FAILED"
	ErrorCodeKernelNotFound    ErrorCode = "KERNEL_NOT_FOUND"
	ErrorCodeEmptyCorpus       ErrorCode = "EMPTY_CORPUS"
	ErrorCodeInvalidJSON       ErrorCode = "INVALID_JSON"
	ErrorCodeDimensionMismatch ErrorCode = "DIMENSION_MISMATCH"

	// Server Error Codes (5xx)
	ErrorCodeInternalError ErrorCode = "INTERNAL_ERROR"
	ErrorCodeFitFailed     ErrorCode = "FIT_FAILED"
)

// ErrorDetail provides additional context for an error
type ErrorDetail struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// APIError represents a standardized API error response
type APIError struct {
	Error     string        `json:"error"`
	Code      ErrorCode     `json:"code"`
	Message   string        `json:"message"`
	Details   []ErrorDetail `json:"details,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
	RequestID string        `json:"request_id,omitempty"`
}

// APIErrorResponse creates a standardized error response
func APIErrorResponse(code ErrorCode, message string, details ...ErrorDetail) *APIError {
	return &APIError{
		Error:     "Request failed",
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now(),
	}
}

// SendError sends a standardized error response
func SendError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...ErrorDetail) {
	errorResponse := APIErrorResponse(code, message, details...)

	// Add request ID if available
	if requestID, exists := c.Get(requestIDKey); exists {
		if id, ok := requestID.(string); ok {
			errorResponse.RequestID = id
		}
	}

	c.JSON(statusCode, errorResponse)
}

// SendStructuredValidationError sends a validation error with structured details
func SendStructuredValidationError(c *gin.Context, result *ValidationResult) {
	details := make([]ErrorDetail, len(result.Errors))
	for i, err := range result.Errors {
		details[i] = ErrorDetail{
			Field:   err.Field,
			Message: err.Message,
			Code:    "VALIDATION_ERROR",
		}
	}

	SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, "Request validation failed", details...)
}

// SendKernelNotFoundError sends a standardized kernel not found error
func SendKernelNotFoundError(c *gin.Context, kernelID string) {
	SendError(c, http.StatusNotFound, ErrorCodeKernelNotFound,
		"Kernel '"+kernelID+"' not found")
}

// SendInvalidJSONError sends a standardized invalid JSON error
func SendInvalidJSONError(c *gin.Context, err error) {
	SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON,
		"Invalid JSON in request body: "+err.Error())
}

// SendInternalError sends a standardized internal server error
func SendInternalError(c *gin.Context, operation string, err error) {
	SendError(c, http.StatusInternalServerError, ErrorCodeInternalError,
		"Internal error during "+operation+": "+err.Error())
}

// SendEngineError maps an engine error onto the matching status and code
func SendEngineError(c *gin.Context, operation, kernelID string, err error) {
	var validationErr *kerrors.ValidationError
	switch {
	case errors.Is(err, kerrors.ErrKernelNotFound):
		SendKernelNotFoundError(c, kernelID)
	case errors.As(err, &validationErr):
		SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, "Request validation failed", ErrorDetail{
			Field:   validationErr.Field,
			Message: validationErr.Message,
			Code:    "VALIDATION_ERROR",
		})
	case errors.Is(err, kerrors.ErrEmptyCorpus):
		SendError(c, http.StatusBadRequest, ErrorCodeEmptyCorpus, "At least one document is required")
	case errors.Is(err, kerrors.ErrDimensionMismatch):
		SendError(c, http.StatusInternalServerError, ErrorCodeDimensionMismatch, err.Error())
	case operation == "fit":
		SendError(c, http.StatusInternalServerError, ErrorCodeFitFailed, "Failed to fit kernel: "+err.Error())
	default:
		SendInternalError(c, operation, err)
	}
}
