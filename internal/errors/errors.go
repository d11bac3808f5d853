package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrKernelNotFound is returned when no fitted kernel has the requested ID
	ErrKernelNotFound = errors.New("kernel not found")

	// ErrEmptyCorpus is returned when fitting is attempted without documents
	ErrEmptyCorpus = errors.New("corpus is empty")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrDimensionMismatch is returned when vectors of different lengths are compared
	ErrDimensionMismatch = errors.New("vector dimensions do not match")
)

// KernelNotFoundError represents a kernel not found error with context
type KernelNotFoundError struct {
	KernelID string
}

func (e *KernelNotFoundError) Error() string {
	return fmt.Sprintf("kernel with ID '%s' not found", e.KernelID)
}

func (e *KernelNotFoundError) Is(target error) bool {
	return target == ErrKernelNotFound
}

// NewKernelNotFoundError creates a new KernelNotFoundError
func NewKernelNotFoundError(kernelID string) *KernelNotFoundError {
	return &KernelNotFoundError{KernelID: kernelID}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// DimensionMismatchError reports the two lengths that could not be compared
type DimensionMismatchError struct {
	Left  int
	Right int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("vector dimensions do not match: %d != %d", e.Left, e.Right)
}

func (e *DimensionMismatchError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

// NewDimensionMismatchError creates a new DimensionMismatchError
func NewDimensionMismatchError(left, right int) *DimensionMismatchError {
	return &DimensionMismatchError{Left: left, Right: right}
}
