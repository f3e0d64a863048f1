package auth

import (
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/middleware"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, principals middleware.PrincipalResolver, rbacService middleware.RBACService) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.2, 5), handler.Login)
		auth.POST("/logout", handler.Logout)
		auth.GET("/me", middleware.RateLimitByUser(2, 5), handler.Me)
		auth.POST("/register",
			middleware.RateLimitByUser(0.5, 2),
			middleware.ResolvePrincipal(principals),
			middleware.RequireRole(rbacService, rbac.ResourceUser, rbac.ActionCreate),
			handler.Register,
		)
	}
}
