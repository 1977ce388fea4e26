package middleware

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError carries a status code to the error middleware, which renders
// it as a {"message": ...} payload.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError with the given status and message
func NewHTTPError(status int, format string, args ...any) *HTTPError {
	return &HTTPError{
		Status:  status,
		Message: fmt.Sprintf(format, args...),
	}
}

// NotFoundError creates a 404 HTTPError
func NotFoundError(format string, args ...any) *HTTPError {
	return NewHTTPError(http.StatusNotFound, format, args...)
}

// ValidationError marks a request as malformed. The error middleware
// renders it as a {"errors": [{"msg": ...}]} payload with status 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// NewValidationError creates a ValidationError with the given message
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// AsValidationError unwraps err into a ValidationError if possible
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// AsHTTPError unwraps err into an HTTPError if possible
func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}
