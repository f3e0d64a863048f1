package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// formatFieldName turns employee_id into "Employee Id".
func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError converts a gin binding error into a field-level AppError.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		e := errs[0]

		// e.Field() already carries the json name, see Init.
		fieldName := e.Field()
		humanReadableField := formatFieldName(fieldName)

		var appErr *AppError
		switch e.Tag() {
		case "required":
			appErr = RequiredField(fieldName)
			appErr.Message = fmt.Sprintf("%s is required", humanReadableField)
		default:
			appErr = InvalidField(fieldName)
			appErr.Message = fmt.Sprintf("%s is invalid", humanReadableField)
		}
		return appErr
	}

	return New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)
}
