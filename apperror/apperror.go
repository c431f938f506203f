// Package apperror defines the error taxonomy shared by services and
// controllers. Services wrap failures in an *AppError carrying one of the
// sentinel errors below; the HTTP boundary maps sentinels to status codes.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrValidation      = errors.New("validation failed")
	ErrConflict        = errors.New("conflict")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrUpstream        = errors.New("upstream failure")
	ErrStorage         = errors.New("storage unavailable")
)

type AppError struct {
	Err     error  // sentinel (possibly joined with the cause)
	Message string // returned to the client
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Validation(message string) *AppError {
	return &AppError{Err: ErrValidation, Message: message}
}

func Conflict(message string) *AppError {
	return &AppError{Err: ErrConflict, Message: message}
}

func Unauthenticated(message string) *AppError {
	return &AppError{Err: ErrUnauthenticated, Message: message}
}

func Forbidden(message string) *AppError {
	return &AppError{Err: ErrForbidden, Message: message}
}

func NotFound(resource string) *AppError {
	return &AppError{Err: ErrNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

// Upstream covers failures of the external classification / prediction
// services. The cause stays in the chain for logging; the message is what
// the client sees.
func Upstream(message string, cause error) *AppError {
	return &AppError{Err: errors.Join(ErrUpstream, cause), Message: message}
}

// Storage covers persistence-layer failures. Never silently dropped: the
// boundary surfaces these as server faults.
func Storage(op string, cause error) *AppError {
	return &AppError{
		Err:     errors.Join(ErrStorage, cause),
		Message: fmt.Sprintf("%s: storage unavailable", op),
	}
}
