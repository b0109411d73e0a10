// Package common defines sentinel errors shared across the service layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")

	// Registration conflicts. Username is checked before email, so a request
	// that collides on both reports the username.
	ErrorUsernameTaken = errors.New("username already exists")
	ErrorEmailTaken    = errors.New("email already exists")

	// Login failures.
	ErrorUserNotFound       = errors.New("user not found")
	ErrorInvalidCredentials = errors.New("invalid credentials")

	// Stock mutation errors.
	ErrorInvalidArgument   = errors.New("invalid argument")
	ErrorInsufficientStock = errors.New("insufficient stock")

	// Token lifecycle errors.
	ErrTokenMalformed   = errors.New("token malformed")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrTokenExpired     = errors.New("token expired")
	ErrInvalidToken     = errors.New("invalid token")
)

// ArgumentError is an invalid-argument failure carrying a caller-facing
// message. It matches ErrorInvalidArgument under errors.Is.
type ArgumentError struct {
	Message string
}

func (e *ArgumentError) Error() string { return e.Message }

func (e *ArgumentError) Is(target error) bool { return target == ErrorInvalidArgument }

// InvalidArgument wraps msg into an ArgumentError.
func InvalidArgument(msg string) error { return &ArgumentError{Message: msg} }
