package attendance

import (
	"net/http"

	attendanceerrors "github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/attendance/errors"
	autherrors "github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/auth/errors"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/domain"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/middleware"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/rbac"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/apperror"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/request"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
	rbac    middleware.RBACService
}

func NewHandler(service Service, rbacService middleware.RBACService) *Handler {
	return &Handler{service: service, rbac: rbacService}
}

func (h *Handler) Status(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.FromError(c, apperror.ErrUnauthorized)
		return
	}

	employeeID, err := h.target(c, p, c.Query("employee_id"), rbac.ActionReadAll)
	if err != nil {
		response.FromError(c, err)
		return
	}

	res, err := h.service.GetStatus(c.Request.Context(), employeeID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) CheckIn(c *gin.Context) {
	req, employeeID, ok := h.bindCheck(c)
	if !ok {
		return
	}

	res, err := h.service.CheckIn(c.Request.Context(), employeeID, req.Timestamp)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) CheckOut(c *gin.Context) {
	req, employeeID, ok := h.bindCheck(c)
	if !ok {
		return
	}

	res, err := h.service.CheckOut(c.Request.Context(), employeeID, req.Timestamp)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) EmployeeHistory(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.FromError(c, apperror.ErrUnauthorized)
		return
	}

	employeeID := c.Param("employee_id")
	if err := middleware.AuthorizeEmployee(c, h.rbac, p, employeeID, rbac.ResourceAttendance, rbac.ActionReadAll); err != nil {
		response.FromError(c, err)
		return
	}

	q, err := request.ParseRangeQuery(c)
	if err != nil {
		response.FromError(c, err)
		return
	}

	res, err := h.service.GetEmployeeAttendance(c.Request.Context(), employeeID, ListFilter{
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
		Limit:     q.Limit,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, &response.ListMeta{Total: len(res), Limit: q.Limit})
}

func (h *Handler) Overview(c *gin.Context) {
	date, err := request.OptionalDate(c, "date")
	if err != nil {
		response.FromError(c, err)
		return
	}

	res, err := h.service.GetAdminOverview(c.Request.Context(), date, c.Query("department"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Summary(c *gin.Context) {
	date, err := request.OptionalDate(c, "date")
	if err != nil {
		response.FromError(c, err)
		return
	}

	res, err := h.service.GetAttendanceSummary(c.Request.Context(), date)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

// bindCheck reads the optional check-in/out body and resolves whose record it
// targets. On failure the response has already been written.
func (h *Handler) bindCheck(c *gin.Context) (CheckRequest, string, bool) {
	var req CheckRequest

	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.FromError(c, apperror.ErrUnauthorized)
		return req, "", false
	}

	if err := request.BindOptionalJSON(c, &req); err != nil {
		response.FromError(c, err)
		return req, "", false
	}

	employeeID, err := h.target(c, p, req.EmployeeID, rbac.ActionActForOther)
	if err != nil {
		response.FromError(c, err)
		return req, "", false
	}

	if req.Timestamp != nil {
		if err := middleware.Authorize(c, h.rbac, p, rbac.ResourceAttendance, rbac.ActionActForOther); err != nil {
			response.FromError(c, attendanceerrors.ErrTimestampNotAllowed)
			return req, "", false
		}
	}
	return req, employeeID, true
}

// target picks the employee a request acts on. Without an explicit id it is
// the caller's own record.
func (h *Handler) target(c *gin.Context, p domain.Principal, requested, action string) (string, error) {
	if requested == "" {
		if p.EmployeeID == "" {
			return "", autherrors.ErrNoEmployeeLink
		}
		return p.EmployeeID, nil
	}
	if err := middleware.AuthorizeEmployee(c, h.rbac, p, requested, rbac.ResourceAttendance, action); err != nil {
		return "", err
	}
	return requested, nil
}
