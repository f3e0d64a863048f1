package timeentry

import (
	"net/http"

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

func (h *Handler) ClockIn(c *gin.Context) {
	req, employeeID, ok := h.bindClock(c)
	if !ok {
		return
	}

	res, err := h.service.ClockIn(c.Request.Context(), employeeID, "", req.Date, req.Time)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) ClockOut(c *gin.Context) {
	req, employeeID, ok := h.bindClock(c)
	if !ok {
		return
	}

	res, err := h.service.ClockOut(c.Request.Context(), employeeID, req.Date, req.Time)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
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

	res, err := h.service.GetEmployeeStatus(c.Request.Context(), employeeID, c.Query("date"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) EmployeeEntries(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.FromError(c, apperror.ErrUnauthorized)
		return
	}

	employeeID := c.Param("employee_id")
	if err := middleware.AuthorizeEmployee(c, h.rbac, p, employeeID, rbac.ResourceTimeEntry, rbac.ActionReadAll); err != nil {
		response.FromError(c, err)
		return
	}

	q, err := request.ParseRangeQuery(c)
	if err != nil {
		response.FromError(c, err)
		return
	}

	res, err := h.service.GetEmployeeEntries(c.Request.Context(), employeeID, ListFilter{
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

func (h *Handler) ListSettings(c *gin.Context) {
	res, err := h.service.GetAllEmployeeSettings(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, &response.ListMeta{Total: len(res)})
}

func (h *Handler) SetHourlyRate(c *gin.Context) {
	var req SetHourlyRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.SetEmployeeHourlyRate(c.Request.Context(), c.Param("employee_id"), req.HourlyRate)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) bindClock(c *gin.Context) (ClockRequest, string, bool) {
	var req ClockRequest

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
	return req, employeeID, true
}

func (h *Handler) target(c *gin.Context, p domain.Principal, requested, action string) (string, error) {
	if requested == "" {
		if p.EmployeeID == "" {
			return "", autherrors.ErrNoEmployeeLink
		}
		return p.EmployeeID, nil
	}
	if err := middleware.AuthorizeEmployee(c, h.rbac, p, requested, rbac.ResourceTimeEntry, action); err != nil {
		return "", err
	}
	return requested, nil
}
