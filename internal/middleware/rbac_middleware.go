package middleware

import (
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/domain"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/rbac"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/apperror"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/contextutil"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RBACService is the part of rbac.Service the middleware needs.
type RBACService interface {
	Enforce(req rbac.EnforceRequest) (bool, error)
}

// RequireRole checks the freshly resolved role against the casbin policy. It
// must run after ResolvePrincipal.
func RequireRole(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			response.FromError(c, apperror.ErrUnauthorized)
			c.Abort()
			return
		}

		if err := Authorize(c, service, p, resource, action); err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}

// AuthorizeEmployee allows p to act on employeeID when it is p's own record
// or when the policy grants resource:action to p's role.
func AuthorizeEmployee(c *gin.Context, service RBACService, p domain.Principal, employeeID, resource, action string) error {
	if p.IsSelf(employeeID) {
		return nil
	}
	return Authorize(c, service, p, resource, action)
}

// Authorize asks the policy whether p's role holds resource:action.
func Authorize(c *gin.Context, service RBACService, p domain.Principal, resource, action string) error {
	if !p.HasRole {
		return apperror.ErrForbidden
	}

	allowed, err := service.Enforce(rbac.EnforceRequest{
		Role:     p.Role,
		Resource: resource,
		Action:   action,
	})
	if err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, apperror.ErrInternal.Message, apperror.ErrInternal.HTTPStatus)
	}
	if !allowed {
		contextutil.GetLogger(c.Request.Context(), zap.L()).Info("authorization denied",
			zap.String("user_id", p.UserID),
			zap.String("role", p.Role.String()),
			zap.String("required", resource+":"+action),
		)
		return apperror.ErrForbidden
	}
	return nil
}
