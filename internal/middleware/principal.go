package middleware

import (
	"context"

	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/domain"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/apperror"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/contextutil"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// PrincipalResolver loads the current state of a user from the credential
// store.
type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, userID string) (domain.Principal, error)
}

// ResolvePrincipal replaces the role claimed by the token with the one in the
// credential store. It must run after Gate.
func ResolvePrincipal(resolver PrincipalResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(CtxUserID)
		if userID == "" {
			response.FromError(c, apperror.ErrUnauthorized)
			c.Abort()
			return
		}

		p, err := resolver.ResolvePrincipal(c.Request.Context(), userID)
		if err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}

		c.Set(CtxPrincipal, p)
		c.Set(CtxRole, p.Role.String())

		ctx := contextutil.WithIdentity(c.Request.Context(), contextutil.Identity{
			UserID:   p.UserID,
			Username: p.Username,
			Role:     p.Role.String(),
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func PrincipalFrom(c *gin.Context) (domain.Principal, bool) {
	v, ok := c.Get(CtxPrincipal)
	if !ok {
		return domain.Principal{}, false
	}
	p, ok := v.(domain.Principal)
	return p, ok
}
