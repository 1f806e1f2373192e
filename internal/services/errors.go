package services

import (
	"errors"
	"fmt"

	"portfolio/internal/repositories"
)

var (
	// ErrInvalidCredentials is returned by Login for an unknown user or a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidToken is returned for malformed tokens and signature mismatches.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned for well-signed tokens past their expiry.
	ErrExpiredToken = errors.New("token expired")
)

// ValidationError reports missing or invalid input. Fields maps the JSON
// field name to a reason and may be empty.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Fields)
}

// NotFoundError reports that the referenced record does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// AuthError is the rejection produced by the admin gate. Status is an HTTP
// status code and Message is returned to the caller verbatim.
type AuthError struct {
	Status  int
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AuthError) Unwrap() error { return e.Err }

// notFound converts a repository miss into a NotFoundError and passes any
// other error through.
func notFound(err error, resource, id string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return &NotFoundError{Resource: resource, ID: id}
	}
	return err
}
