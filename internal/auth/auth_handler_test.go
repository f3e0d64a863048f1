package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/auth"
	autherrors "github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/auth/errors"
	authMock "github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/auth/mock"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/middleware"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/session"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/apperror"
)

var testCookie = session.CookieOptions{Name: "auth_token"}

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	return gin.New()
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService, testCookie)
	router := setupAuthRouter()
	router.POST("/login", handler.Login)

	t.Run("success sets http-only cookie", func(t *testing.T) {
		mockService.EXPECT().
			Login(gomock.Any(), "alice", "password123").
			Return(auth.LoginResult{
				Token:     "signed-token",
				ExpiresAt: time.Now().Add(time.Hour),
				User:      auth.AuthResponse{ID: "u1", Username: "alice", Role: "employee"},
			}, nil)

		w := postJSON(router, "/login", auth.LoginRequest{Username: "alice", Password: "password123"})

		assert.Equal(t, http.StatusOK, w.Code)
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "auth_token", cookies[0].Name)
		assert.Equal(t, "signed-token", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)

		var res map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "alice", res["data"].(map[string]any)["user"].(map[string]any)["username"])
		assert.NotContains(t, w.Body.String(), "signed-token")
	})

	t.Run("invalid credentials", func(t *testing.T) {
		mockService.EXPECT().
			Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(auth.LoginResult{}, autherrors.ErrInvalidCredentials)

		w := postJSON(router, "/login", auth.LoginRequest{Username: "alice", Password: "x"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("missing password is a validation error", func(t *testing.T) {
		w := postJSON(router, "/login", map[string]string{"username": "alice"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Logout(t *testing.T) {
	handler := auth.NewHandler(nil, testCookie)
	router := setupAuthRouter()
	router.POST("/logout", handler.Logout)

	w := postJSON(router, "/logout", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "", cookies[0].Value)
	assert.True(t, cookies[0].MaxAge < 0)
}

func TestHandler_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService, testCookie)
	router := setupAuthRouter()
	router.GET("/me", func(c *gin.Context) {
		if uid := c.GetHeader("X-Test-User"); uid != "" {
			c.Set(middleware.CtxUserID, uid)
		}
		c.Next()
	}, handler.Me)

	t.Run("returns the current user", func(t *testing.T) {
		mockService.EXPECT().GetMe(gomock.Any(), "u1").Return(auth.AuthResponse{ID: "u1", Username: "alice"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("X-Test-User", "u1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"username":"alice"`)
	})

	t.Run("no identity", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandler_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService, testCookie)
	router := setupAuthRouter()
	router.POST("/register", handler.Register)

	t.Run("created", func(t *testing.T) {
		reqData := auth.RegisterRequest{Username: "bob", Password: "longenough", Role: "hr"}
		mockService.EXPECT().Register(gomock.Any(), reqData).Return(auth.AuthResponse{ID: "u2", Username: "bob", Role: "hr"}, nil)

		w := postJSON(router, "/register", reqData)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("role outside the enum is rejected by binding", func(t *testing.T) {
		w := postJSON(router, "/register", auth.RegisterRequest{Username: "bob", Password: "longenough", Role: "owner"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "role")
	})

	t.Run("duplicate username", func(t *testing.T) {
		mockService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(auth.AuthResponse{}, autherrors.ErrUsernameTaken)

		w := postJSON(router, "/register", auth.RegisterRequest{Username: "bob", Password: "longenough", Role: "hr"})
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
