package timeentry

import (
	"errors"
	"strings"

	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/apperror"
	timeentryerrors "github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/timeentry/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueEmployeeDate = "uq_time_entry_employee_date"
	checkPositiveRate  = "chk_employee_settings_rate"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505" && pgErr.ConstraintName == uniqueEmployeeDate:
			return timeentryerrors.ErrAlreadyClockedIn
		case pgErr.Code == "23514" && pgErr.ConstraintName == checkPositiveRate:
			return timeentryerrors.ErrInvalidRate
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, uniqueEmployeeDate) {
		return timeentryerrors.ErrAlreadyClockedIn
	}

	return apperror.Storage(err)
}
