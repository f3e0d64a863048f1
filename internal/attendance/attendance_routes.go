package attendance

import (
	"slices"
	"time"

	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/middleware"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

// RegisterRoutes mounts the ledger under r. rdb may be nil, in which case
// Idempotency-Key headers are ignored.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, principals middleware.PrincipalResolver, rbacService middleware.RBACService, rdb redis.Cmdable) {
	writes := []gin.HandlerFunc{middleware.RateLimitByUser(1, 5)}
	if rdb != nil {
		writes = append(writes, middleware.Idempotency(rdb, idempotencyTTL))
	}

	attendance := r.Group("/attendance")
	attendance.Use(middleware.ResolvePrincipal(principals))
	{
		attendance.GET("/status", h.Status)
		attendance.POST("/check-in", append(slices.Clip(writes), h.CheckIn)...)
		attendance.POST("/check-out", append(slices.Clip(writes), h.CheckOut)...)
		attendance.GET("/employee/:employee_id", h.EmployeeHistory)
	}

	admin := r.Group("/admin/attendance")
	admin.Use(
		middleware.ResolvePrincipal(principals),
		middleware.RequireRole(rbacService, rbac.ResourceReport, rbac.ActionRead),
	)
	{
		admin.GET("/overview", h.Overview)
		admin.GET("/summary", h.Summary)
	}
}
