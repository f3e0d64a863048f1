package timeentry

import (
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/middleware"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, principals middleware.PrincipalResolver, rbacService middleware.RBACService) {
	entries := r.Group("/time-entries")
	entries.Use(middleware.ResolvePrincipal(principals))
	{
		entries.POST("/clock-in", middleware.RateLimitByUser(1, 5), h.ClockIn)
		entries.POST("/clock-out", middleware.RateLimitByUser(1, 5), h.ClockOut)
		entries.GET("/status", h.Status)
		entries.GET("/employee/:employee_id", middleware.RateLimitByUser(2, 10), h.EmployeeEntries)
	}

	settings := r.Group("/admin/settings/hourly-rates")
	settings.Use(
		middleware.ResolvePrincipal(principals),
		middleware.RequireRole(rbacService, rbac.ResourceSettings, rbac.ActionManage),
	)
	{
		settings.GET("", h.ListSettings)
		settings.PUT("/:employee_id", middleware.RateLimitByUser(0.5, 2), h.SetHourlyRate)
	}
}
