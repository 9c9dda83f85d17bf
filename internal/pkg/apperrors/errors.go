package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Bootcamp errors
var (
	ErrBootcampNotFound   = errors.New("bootcamp not found")
	ErrLocationNotFound   = errors.New("location not found")
	ErrGeocodingFailed    = errors.New("geocoding failed")
	ErrInvalidQueryParams = errors.New("invalid query parameters")
)

// Course errors
var (
	ErrCourseNotFound = errors.New("course not found")
)

// ErrorResponse is an application-raised failure that carries the message and
// HTTP status the client should see.
type ErrorResponse struct {
	Err        error
	Message    string
	StatusCode int
}

// Error implements error interface
func (e *ErrorResponse) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *ErrorResponse) Unwrap() error {
	return e.Err
}

// New creates an ErrorResponse with the given message and status code
func New(err error, message string, statusCode int) *ErrorResponse {
	return &ErrorResponse{
		Err:        err,
		Message:    message,
		StatusCode: statusCode,
	}
}

// NewBootcampNotFoundError creates the 404 raised when a bootcamp lookup yields nothing
func NewBootcampNotFoundError(id string) error {
	return New(ErrBootcampNotFound, fmt.Sprintf("Bootcamp not found with id: %s", id), http.StatusNotFound)
}

// NewCourseNotFoundError creates the 404 raised when a course lookup yields nothing
func NewCourseNotFoundError(id string) error {
	return New(ErrCourseNotFound, fmt.Sprintf("Course not found with id: %s", id), http.StatusNotFound)
}

// NewResourceNotFoundError creates a generic 404 with a message
func NewResourceNotFoundError(message string) error {
	return New(ErrResourceNotFound, message, http.StatusNotFound)
}

// NewBadRequestError creates a 400 with a message
func NewBadRequestError(message string) error {
	return New(ErrBadRequest, message, http.StatusBadRequest)
}

// MalformedIDError reports an identifier that cannot be parsed into the
// storage identifier format.
type MalformedIDError struct {
	Value string
}

func (e *MalformedIDError) Error() string {
	return fmt.Sprintf("malformed identifier %q", e.Value)
}

// ValidationError carries every field-level message of a failed validation.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// Unwrap lets errors.Is match ErrValidationFailed
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// NewValidationError creates a ValidationError from one or more messages
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}
