// Package apierr defines the typed error produced by calls against the
// remote fitness API. Upstream code branches on the status-class predicates
// instead of re-inspecting raw status numbers.
package apierr

import (
	"errors"
	"net/http"
)

// Error carries the HTTP status of a failed API call, a human-readable
// message, and the structured response body when one was present.
type Error struct {
	Status  int
	Message string
	Body    any
}

// New builds an Error for the given status.
func New(status int, message string, body any) *Error {
	return &Error{Status: status, Message: message, Body: body}
}

func (e *Error) Error() string {
	return e.Message
}

// IsClientError reports a 4xx status.
func (e *Error) IsClientError() bool {
	return e.Status >= 400 && e.Status < 500
}

// IsServerError reports a 5xx (or higher) status.
func (e *Error) IsServerError() bool {
	return e.Status >= 500
}

// IsNotFound reports status 404.
func (e *Error) IsNotFound() bool {
	return e.Status == http.StatusNotFound
}

// IsUnauthorized reports status 401.
func (e *Error) IsUnauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// IsForbidden reports status 403.
func (e *Error) IsForbidden() bool {
	return e.Status == http.StatusForbidden
}

// As unwraps err into an *Error, if it is one.
func As(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// HasStatus reports whether err is an API error with the given status.
func HasStatus(err error, status int) bool {
	apiErr, ok := As(err)
	return ok && apiErr.Status == status
}
