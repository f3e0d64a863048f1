package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/access"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/domain"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/rbac"
	rbacMock "github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/rbac/mock"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/session"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/apperror"
)

var cookieOpts = session.CookieOptions{Name: "auth_token"}

func newSessions(t *testing.T) *session.Manager {
	t.Helper()
	m, err := session.NewManager("gate-secret", time.Hour, cookieOpts.Name)
	require.NoError(t, err)
	return m
}

func issue(t *testing.T, m *session.Manager, userID string, role domain.Role) string {
	t.Helper()
	tok, _, err := m.Issue(session.Identity{UserID: userID, Username: "user-" + userID}, role, 0)
	require.NoError(t, err)
	return tok
}

func newGateRouter(t *testing.T, m *session.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Gate(access.NewGate(access.DefaultPolicy(), m), cookieOpts))

	echo := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString(CtxUserID),
			"role":    c.GetString(CtxRole),
			"header":  c.Request.Header.Get(HeaderUserRole),
		})
	}
	r.GET("/login", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/employee", echo)
	r.GET("/admin", echo)
	r.GET("/api/attendance/status", echo)
	r.GET("/api/admin/attendance/overview", echo)
	return r
}

func TestGate_Middleware(t *testing.T) {
	m := newSessions(t)
	r := newGateRouter(t, m)

	do := func(path string, cookie string, headers map[string]string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if cookie != "" {
			req.AddCookie(&http.Cookie{Name: cookieOpts.Name, Value: cookie})
		}
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("public page passes through", func(t *testing.T) {
		w := do("/login", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
	})

	t.Run("page without session redirects to login", func(t *testing.T) {
		w := do("/employee", "", nil)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login?redirect=%2Femployee", w.Header().Get("Location"))
	})

	t.Run("api without session is 401", func(t *testing.T) {
		w := do("/api/attendance/status", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid cookie is cleared", func(t *testing.T) {
		w := do("/employee", "garbage", nil)
		assert.Equal(t, http.StatusFound, w.Code)
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, cookieOpts.Name, cookies[0].Name)
		assert.True(t, cookies[0].MaxAge < 0)
	})

	t.Run("wrong role on page redirects home", func(t *testing.T) {
		w := do("/admin", issue(t, m, "e1", domain.RoleEmployee), nil)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/employee", w.Header().Get("Location"))
	})

	t.Run("wrong role on api is 403", func(t *testing.T) {
		w := do("/api/admin/attendance/overview", issue(t, m, "e1", domain.RoleEmployee), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("spoofed identity headers are replaced", func(t *testing.T) {
		w := do("/api/attendance/status", issue(t, m, "e1", domain.RoleEmployee), map[string]string{
			HeaderUserRole: "admin",
		})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":"e1","role":"employee","header":"employee"}`, w.Body.String())
	})

	t.Run("bearer token accepted", func(t *testing.T) {
		w := do("/api/admin/attendance/overview", "", map[string]string{
			"Authorization": "Bearer " + issue(t, m, "h1", domain.RoleHR),
		})
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

type stubResolver struct {
	p   domain.Principal
	err error
}

func (s stubResolver) ResolvePrincipal(_ context.Context, _ string) (domain.Principal, error) {
	return s.p, s.err
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRBAC := rbacMock.NewMockService(ctrl)

	newRouter := func(res PrincipalResolver) *gin.Engine {
		r := gin.New()
		r.Use(func(c *gin.Context) { c.Set(CtxUserID, "u1"); c.Next() })
		r.GET("/x", ResolvePrincipal(res), RequireRole(mockRBAC, rbac.ResourceReport, rbac.ActionRead), func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
		return r
	}
	do := func(r *gin.Engine) int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		return w.Code
	}

	t.Run("fresh role allowed", func(t *testing.T) {
		mockRBAC.EXPECT().
			Enforce(rbac.EnforceRequest{Role: domain.RoleHR, Resource: rbac.ResourceReport, Action: rbac.ActionRead}).
			Return(true, nil)
		assert.Equal(t, http.StatusNoContent, do(newRouter(stubResolver{p: domain.Principal{UserID: "u1", Role: domain.RoleHR, HasRole: true}})))
	})

	t.Run("fresh role denied", func(t *testing.T) {
		mockRBAC.EXPECT().Enforce(gomock.Any()).Return(false, nil)
		assert.Equal(t, http.StatusForbidden, do(newRouter(stubResolver{p: domain.Principal{UserID: "u1", Role: domain.RoleEmployee, HasRole: true}})))
	})

	t.Run("missing role never reaches the enforcer", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, do(newRouter(stubResolver{p: domain.Principal{UserID: "u1"}})))
	})

	t.Run("enforcer error is 500", func(t *testing.T) {
		mockRBAC.EXPECT().Enforce(gomock.Any()).Return(false, errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, do(newRouter(stubResolver{p: domain.Principal{UserID: "u1", Role: domain.RoleAdmin, HasRole: true}})))
	})

	t.Run("revoked user is rejected", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do(newRouter(stubResolver{err: apperror.ErrUnauthorized})))
	})
}
