package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-leaveflow/internal/auth"
	autherrors "go-leaveflow/internal/auth/errors"
	authMock "go-leaveflow/internal/auth/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupAuthRouter(h *auth.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)
	return r
}

func TestHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := authMock.NewMockService(ctrl)
	router := setupAuthRouter(auth.NewHandler(svc, auth.CookieConfig{MaxAge: 3600}))

	t.Run("sets cookie and returns token", func(t *testing.T) {
		svc.EXPECT().
			Login(gomock.Any(), "EMP-0001", "password123").
			Return("access-token", auth.AuthResponse{ID: "user-1", Username: "EMP-0001"}, nil)

		body, _ := json.Marshal(auth.LoginRequest{Username: "EMP-0001", Password: "password123"})
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		cookies := w.Result().Cookies()
		if assert.Len(t, cookies, 1) {
			assert.Equal(t, "access_token", cookies[0].Name)
			assert.Equal(t, "access-token", cookies[0].Value)
			assert.True(t, cookies[0].HttpOnly)
		}
		assert.Contains(t, w.Body.String(), `"access_token":"access-token"`)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		svc.EXPECT().
			Login(gomock.Any(), "EMP-0001", "bad").
			Return("", auth.AuthResponse{}, autherrors.ErrInvalidCredentials)

		body, _ := json.Marshal(auth.LoginRequest{Username: "EMP-0001", Password: "bad"})
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid username or password")
		assert.Empty(t, w.Result().Cookies())
	})
}

func TestHandler_Signup(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := authMock.NewMockService(ctrl)
	router := setupAuthRouter(auth.NewHandler(svc, auth.CookieConfig{}))

	svc.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(auth.AuthResponse{}, autherrors.ErrUsernameTaken)

	body := `{"username":"EMP-1","password":"password123","first_name":"Ana","department":"IT"}`
	req := httptest.NewRequest(http.MethodPost, "/signup", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Username already exists.")

	req = httptest.NewRequest(http.MethodPost, "/signup", bytes.NewBufferString(`{"username":"EMP-1"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := setupAuthRouter(auth.NewHandler(authMock.NewMockService(ctrl), auth.CookieConfig{}))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/logout", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	if assert.Len(t, cookies, 1) {
		assert.Equal(t, -1, cookies[0].MaxAge)
	}
}
