package auth

import (
	"net/http"
	"time"

	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/middleware"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/session"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/apperror"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
	cookie  session.CookieOptions
	now     func() time.Time
}

func NewHandler(s Service, cookie session.CookieOptions) *Handler {
	return &Handler{service: s, cookie: cookie, now: time.Now}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.FromError(c, err)
		return
	}

	h.cookie.Set(c.Writer, res.Token, res.ExpiresAt, h.now())

	response.Success(c, http.StatusOK, LoginResponse{
		User:      res.User,
		ExpiresAt: res.ExpiresAt,
	}, nil)
}

// Logout only clears the cookie. Tokens are stateless and stay valid until
// they expire.
func (h *Handler) Logout(c *gin.Context) {
	h.cookie.Clear(c.Writer)
	response.Success(c, http.StatusOK, gin.H{"logged_out": true}, nil)
}

func (h *Handler) Me(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)
	if userID == "" {
		response.FromError(c, apperror.ErrUnauthorized)
		return
	}

	res, err := h.service.GetMe(c.Request.Context(), userID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, res, nil)
}
