package employee

import (
	"errors"

	employeeerrors "github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/employee/errors"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/apperror"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	return apperror.Storage(err)
}
