package middleware

import (
	"net/http"
	"strings"

	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/access"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/session"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/apperror"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/contextutil"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Gate runs every request through the authorization gate and applies its
// decision. Pages are redirected, API calls get 401/403.
func Gate(gate *access.Gate, cookie session.CookieOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Header.Del(HeaderUserID)
		c.Request.Header.Del(HeaderUsername)
		c.Request.Header.Del(HeaderUserRole)

		path := c.Request.URL.Path
		res := gate.Decide(path, tokenFromRequest(c, cookie.Name))

		if res.ClearCookie {
			cookie.Clear(c.Writer)
		}

		log := contextutil.GetLogger(c.Request.Context(), zap.L())

		switch res.Decision {
		case access.PassThrough:
			c.Next()

		case access.RedirectLogin, access.RedirectRoleHome:
			log.Debug("gate redirect",
				zap.String("path", path),
				zap.String("decision", res.Decision.String()),
				zap.String("location", res.Location),
			)
			c.Redirect(http.StatusFound, res.Location)
			c.Abort()

		case access.Unauthenticated:
			response.FromError(c, apperror.ErrUnauthorized)
			c.Abort()

		case access.Forbidden:
			log.Info("gate forbidden",
				zap.String("path", path),
				zap.String("user_id", res.Session.UserID),
				zap.String("role", res.Session.Role.String()),
			)
			response.FromError(c, apperror.ErrForbidden)
			c.Abort()

		case access.Allow:
			p := res.Session
			c.Set(CtxUserID, p.UserID)
			c.Set(CtxUsername, p.Username)
			c.Set(CtxRole, p.Role.String())

			c.Request.Header.Set(HeaderUserID, p.UserID)
			c.Request.Header.Set(HeaderUsername, p.Username)
			if p.HasRole {
				c.Request.Header.Set(HeaderUserRole, p.Role.String())
			}

			ctx := contextutil.WithIdentity(c.Request.Context(), contextutil.Identity{
				UserID:   p.UserID,
				Username: p.Username,
				Role:     p.Role.String(),
			})
			ctx = contextutil.WithUserID(ctx, p.UserID)
			ctx = contextutil.WithLogger(ctx, log.With(zap.String("user_id", p.UserID)))
			c.Request = c.Request.WithContext(ctx)
			c.Next()

		default:
			response.FromError(c, apperror.ErrInternal)
			c.Abort()
		}
	}
}

// tokenFromRequest prefers a bearer token and falls back to the session
// cookie.
func tokenFromRequest(c *gin.Context, cookieName string) string {
	if token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); found {
		if token = strings.TrimSpace(token); token != "" {
			return token
		}
	}
	token, _ := session.ExtractCookie(c.GetHeader("Cookie"), cookieName)
	return token
}
