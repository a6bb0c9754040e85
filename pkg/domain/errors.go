package domain

import "errors"

var (
	// ErrBookNotFound is returned when no book has the requested id
	ErrBookNotFound = errors.New("book not found")

	// ErrMalformedBody is returned when a request body is not valid JSON
	ErrMalformedBody = errors.New("malformed request body")
)

// Client-facing validation messages
const (
	MsgMissingFields   = "Missing required fields: title, author, year"
	MsgYearNotInteger  = "Year must be an integer"
	MsgYearOutOfRange  = "Year is out of range"
	MsgFieldsNotString = "Title and author must be strings"
	MsgNoData          = "No data provided"
)

// ValidationError reports a malformed, missing or mistyped payload field.
// Message is safe to return to the client as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error with the given message
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}
