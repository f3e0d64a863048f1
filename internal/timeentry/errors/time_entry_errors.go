package timeentryerrors

import (
	"net/http"

	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/apperror"
)

var (
	ErrInvalidFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Date must be YYYY-MM-DD and time must be HH:MM",
		http.StatusBadRequest,
	)
	ErrAlreadyClockedIn = apperror.New(
		apperror.CodeConflict,
		"Employee already has a time entry for this date",
		http.StatusConflict,
	)
	ErrNotClockedIn = apperror.New(
		apperror.CodeInvalidState,
		"Employee is not clocked in for this date",
		http.StatusConflict,
	)
	ErrInvalidTimestamp = &apperror.AppError{
		Code:       apperror.CodeInvalidInput,
		Message:    "Clock-out time is earlier than clock-in time",
		HTTPStatus: http.StatusBadRequest,
		Field:      "clock_out",
	}
	ErrInvalidRate = &apperror.AppError{
		Code:       apperror.CodeInvalidInput,
		Message:    "Hourly rate must be greater than zero",
		HTTPStatus: http.StatusBadRequest,
		Field:      "hourly_rate",
	}
)
