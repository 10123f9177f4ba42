package document

import (
	"errors"
	"fmt"
	"strings"
)

// Common document generation errors.
var (
	// ErrInvalidInvoice is returned when the canonical invoice fails
	// invariant validation; no artifact is produced in that case.
	ErrInvalidInvoice = errors.New("invalid invoice")

	// ErrRenderFailed is returned when one of the output renderers fails.
	// All partial artifacts are discarded.
	ErrRenderFailed = errors.New("document rendering failed")
)

// ValidationError reports a single invariant violation in invoice data.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s (value: %v)", e.Field, e.Message, e.Value)
}

// Unwrap lets errors.Is match ErrInvalidInvoice.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInvoice
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ValidationErrors aggregates every invariant violation found in one pass,
// so the caller sees the full list rather than the first failure.
type ValidationErrors []*ValidationError

// Error implements the error interface.
func (es ValidationErrors) Error() string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("invoice validation failed: %s", strings.Join(msgs, "; "))
}

// Unwrap lets errors.Is match ErrInvalidInvoice.
func (es ValidationErrors) Unwrap() error {
	return ErrInvalidInvoice
}

// GenerationError wraps a failure in one of the three renderers.
type GenerationError struct {
	Format string // "pdf", "json" or "xml"
	Err    error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	return fmt.Sprintf("failed to render %s artifact: %v", e.Format, e.Err)
}

// Unwrap returns the underlying render error.
func (e *GenerationError) Unwrap() error {
	return e.Err
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(format string, err error) *GenerationError {
	return &GenerationError{Format: format, Err: err}
}
