package attendanceerrors

import (
	"net/http"

	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/apperror"
)

var (
	ErrAlreadyCheckedIn = apperror.New(
		apperror.CodeConflict,
		"Employee is already checked in today",
		http.StatusConflict,
	)
	ErrAlreadyCheckedOut = apperror.New(
		apperror.CodeConflict,
		"Employee has already checked out today",
		http.StatusConflict,
	)
	ErrNotCheckedIn = apperror.New(
		apperror.CodeInvalidState,
		"Employee is not checked in",
		http.StatusConflict,
	)
	ErrInvalidTimestamp = &apperror.AppError{
		Code:       apperror.CodeInvalidInput,
		Message:    "Check-out time is earlier than check-in time",
		HTTPStatus: http.StatusBadRequest,
		Field:      "timestamp",
	}
	ErrTimestampNotAllowed = apperror.New(
		apperror.CodeForbidden,
		"Only admin or HR may record an explicit timestamp",
		http.StatusForbidden,
	)
)
