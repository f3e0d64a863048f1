package request

import (
	"errors"
	"io"

	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

// BindOptionalJSON binds the body into dst when there is one. An empty body
// leaves dst untouched.
func BindOptionalJSON(c *gin.Context, dst any) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return apperror.MapValidationError(err)
	}
	return nil
}
