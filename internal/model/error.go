package model

import "fmt"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeValidation           = "VALIDATION_ERROR"
	ErrCodeUnsupportedMediaType = "UNSUPPORTED_MEDIA_TYPE"
	ErrCodeProductNotFound      = "PRODUCT_NOT_FOUND"
	ErrCodeInternalError        = "INTERNAL_ERROR"
)

// ValidationError reports malformed or semantically invalid input. The
// message always names the offending attribute or value.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a new validation error.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an operation that referenced a nonexistent product
// id. Message, when set, overrides the formatted text so callers that only
// have a non-numeric id segment can still echo what was asked for.
type NotFoundError struct {
	ID      int64
	Message string
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("Product with id [%d] was not found.", e.ID)
}

// NewNotFoundError creates a new not-found error for the given id.
func NewNotFoundError(id int64) *NotFoundError {
	return &NotFoundError{ID: id}
}

// UnsupportedMediaTypeError reports a request body sent without a JSON
// content type.
type UnsupportedMediaTypeError struct {
	ContentType string
}

func (e *UnsupportedMediaTypeError) Error() string {
	if e.ContentType == "" {
		return "Content-Type must be application/json"
	}
	return fmt.Sprintf("Content-Type must be application/json, got %s", e.ContentType)
}
