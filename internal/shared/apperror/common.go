package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)

	// ErrStorageUnavailable is returned for any store failure that is not one
	// of the enumerated domain conditions. It is never retried by the core.
	ErrStorageUnavailable = New(
		CodeServiceUnavailable,
		"Storage is temporarily unavailable",
		http.StatusInternalServerError,
	)
)

// RequiredField reports a missing field in a request body or query.
func RequiredField(field string) *AppError {
	return &AppError{
		Code:       CodeInvalidInput,
		Message:    fmt.Sprintf("%s is required", field),
		HTTPStatus: http.StatusBadRequest,
		Field:      field,
	}
}

// InvalidField reports a malformed field in a request body or query.
func InvalidField(field string) *AppError {
	return &AppError{
		Code:       CodeInvalidInput,
		Message:    fmt.Sprintf("%s is invalid", field),
		HTTPStatus: http.StatusBadRequest,
		Field:      field,
	}
}

// Storage wraps a raw store error as ErrStorageUnavailable, keeping the cause
// for logs.
func Storage(err error) *AppError {
	return Wrap(err, ErrStorageUnavailable.Code, ErrStorageUnavailable.Message, ErrStorageUnavailable.HTTPStatus)
}
