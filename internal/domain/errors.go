package domain

import (
	"errors"
	"fmt"
)

// RequestError is a non-2xx response from the backend or the image host.
// Message comes from the response body's "message" field when present.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed (%d): %s", e.Status, e.Message)
}

// ValidationError is a client-local failure caught before any network call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// UploadError wraps an image upload failure.
type UploadError struct{ Err error }

func (e *UploadError) Error() string { return "image upload failed: " + e.Err.Error() }
func (e *UploadError) Unwrap() error { return e.Err }

func IsRequestError(err error, status int) bool {
	var re *RequestError
	return errors.As(err, &re) && re.Status == status
}

// ErrNoToken means the session store holds no admin token; an external
// login flow is expected to seed it.
var ErrNoToken = errors.New("no admin token in session store")

// ErrTokenExpired means the stored token carries an exp claim in the past.
var ErrTokenExpired = errors.New("admin session expired")
