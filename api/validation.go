// Package api provides validation utilities for API request handling.
package api

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gcbaptista/go-word-kernel/config"
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the result of validation operations
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// ValidateKernelID validates a kernel ID path parameter
func ValidateKernelID(kernelID string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if kernelID == "" {
		result.AddError("kernelId", "Kernel ID is required")
		return result
	}

	if _, err := uuid.Parse(kernelID); err != nil {
		result.AddError("kernelId", "Kernel ID must be a UUID")
	}

	return result
}

// ValidateDocuments validates a list of raw documents
func ValidateDocuments(field string, docs []string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if len(docs) == 0 {
		result.AddError(field, "At least one document is required")
		return result
	}

	blank := 0
	for _, doc := range docs {
		if strings.TrimSpace(doc) == "" {
			blank++
		}
	}
	if blank == len(docs) {
		result.AddError(field, fmt.Sprintf("All %d documents are blank", blank))
	}

	return result
}

// ValidateKernelSettings validates kernel settings supplied in a request
func ValidateKernelSettings(settings *config.KernelSettings) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if settings == nil {
		result.AddError("settings", "Kernel settings are required")
		return result
	}

	for _, conflict := range settings.Validate() {
		result.AddError("settings", conflict)
	}

	return result
}

// SendValidationError sends a standardized validation error response
func SendValidationError(c *gin.Context, result *ValidationResult) {
	SendStructuredValidationError(c, result)
}

// ValidateJSONBinding binds the request body into target. On failure it sends
// an INVALID_JSON error and returns false.
func ValidateJSONBinding(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		SendInvalidJSONError(c, err)
		return false
	}
	return true
}
