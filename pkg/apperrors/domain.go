package apperrors

import (
	"net/http"
)

// Factories for common business errors.

// ErrNotFound converts a repository miss (e.g. gorm.ErrRecordNotFound)
// into a 404 AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus signals a state-machine transition that is not
// allowed (e.g. re-opening a completed appointment).
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// ErrServiceUnavailable signals a missing or unreachable external
// dependency (e.g. the chat model credential is not configured).
func ErrServiceUnavailable(domain, message string) *AppError {
	return New(CodeServiceUnavailable, domain, message, http.StatusServiceUnavailable)
}

// ErrInvalidUserRole is returned when an operation is not defined for
// the caller's role.
var ErrInvalidUserRole = New(
	CodeInvalidUserRole,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)
