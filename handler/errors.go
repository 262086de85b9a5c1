package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"
)

// ErrNilResponse is reported when a handler returns a nil Response.
var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError carries a status code and a translation key.
type HTTPError struct {
	Code int
	Key  string
}

// Error returns the translation key.
func (e HTTPError) Error() string { return e.Key }

// NewHTTPError pairs a status code with a translation key.
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

var (
	ErrBadRequest            = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrUnauthorized          = HTTPError{Code: http.StatusUnauthorized, Key: "unauthorized"}
	ErrForbidden             = HTTPError{Code: http.StatusForbidden, Key: "forbidden"}
	ErrNotFound              = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrMethodNotAllowed      = HTTPError{Code: http.StatusMethodNotAllowed, Key: "method_not_allowed"}
	ErrRequestEntityTooLarge = HTTPError{Code: http.StatusRequestEntityTooLarge, Key: "request_entity_too_large"}
	ErrUnsupportedMediaType  = HTTPError{Code: http.StatusUnsupportedMediaType, Key: "unsupported_media_type"}
	ErrUnprocessableEntity   = HTTPError{Code: http.StatusUnprocessableEntity, Key: "unprocessable_entity"}
	ErrTooManyRequests       = HTTPError{Code: http.StatusTooManyRequests, Key: "too_many_requests"}
	ErrInternalServerError   = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error"}
	ErrBadGateway            = HTTPError{Code: http.StatusBadGateway, Key: "bad_gateway"}
)

// ValidationError maps field names to their messages.
type ValidationError url.Values

// NewValidationError returns an empty ValidationError.
func NewValidationError() ValidationError {
	return make(ValidationError)
}

// FromMessages builds a ValidationError from one message per field,
// skipping empty messages.
func FromMessages(messages map[string]string) ValidationError {
	e := NewValidationError()
	for field, msg := range messages {
		if msg != "" {
			e.Add(field, msg)
		}
	}
	return e
}

// Add appends message to field.
func (e ValidationError) Add(field, message string) { url.Values(e).Add(field, message) }

// Get returns the first message of field.
func (e ValidationError) Get(field string) string { return url.Values(e).Get(field) }

// Has reports whether field has a message.
func (e ValidationError) Has(field string) bool { return len(e[field]) > 0 }

// IsEmpty reports whether no field failed.
func (e ValidationError) IsEmpty() bool { return len(e) == 0 }

// Error lists the first message of each field, sorted by field.
func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e.Get(field)))
	}
	return "validation error: " + strings.Join(parts, ", ")
}
