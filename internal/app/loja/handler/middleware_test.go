package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lojamoz/internal/app/loja/entity"
	"lojamoz/internal/app/loja/service"
	"lojamoz/internal/app/loja/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAdminService struct {
	mock.Mock
}

func (m *mockAdminService) Login(ctx context.Context, req *entity.AdminLoginRequest) (*entity.Admin, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*entity.Admin), args.String(1), args.Error(2)
}

func (m *mockAdminService) Verify(ctx context.Context, adminID uint) (*entity.Admin, error) {
	args := m.Called(ctx, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Admin), args.Error(1)
}

func newTestTokenManager() *util.TokenManager {
	return util.NewTokenManager("admin-secret", "user-secret", 24*time.Hour, 7*24*time.Hour)
}

func newMiddlewareRouter(m *AuthMiddleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.GET("/user-only", m.RequireUser(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetUint("user_id")})
	})
	router.GET("/maybe-user", m.OptionalUser(), func(c *gin.Context) {
		if userID, ok := c.Get("user_id"); ok {
			c.JSON(http.StatusOK, gin.H{"user_id": userID})
			return
		}
		c.JSON(http.StatusOK, gin.H{"guest": true})
	})
	router.GET("/admin-only", m.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"admin_id": c.GetUint("admin_id")})
	})

	return router
}

// ===================== RequireUser Tests =====================

func TestRequireUser_ValidToken(t *testing.T) {
	// Arrange
	tokenManager := newTestTokenManager()
	middleware := NewAuthMiddleware(tokenManager, new(mockAdminService))
	router := newMiddlewareRouter(middleware)

	token, err := tokenManager.GenerateUserToken(42, "maria@example.com", false)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/user-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id": 42}`, w.Body.String())
}

func TestRequireUser_MissingToken(t *testing.T) {
	// Arrange
	middleware := NewAuthMiddleware(newTestTokenManager(), new(mockAdminService))
	router := newMiddlewareRouter(middleware)

	req := httptest.NewRequest(http.MethodGet, "/user-only", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error": "Token de autenticação necessário"}`, w.Body.String())
}

func TestRequireUser_MalformedHeader(t *testing.T) {
	// Arrange
	middleware := NewAuthMiddleware(newTestTokenManager(), new(mockAdminService))
	router := newMiddlewareRouter(middleware)

	req := httptest.NewRequest(http.MethodGet, "/user-only", nil)
	req.Header.Set("Authorization", "Basic abc123")
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireUser_InvalidToken(t *testing.T) {
	// Arrange
	middleware := NewAuthMiddleware(newTestTokenManager(), new(mockAdminService))
	router := newMiddlewareRouter(middleware)

	req := httptest.NewRequest(http.MethodGet, "/user-only", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error": "Token inválido ou expirado"}`, w.Body.String())
}

// ===================== OptionalUser Tests =====================

func TestOptionalUser_NoToken(t *testing.T) {
	// Arrange
	middleware := NewAuthMiddleware(newTestTokenManager(), new(mockAdminService))
	router := newMiddlewareRouter(middleware)

	req := httptest.NewRequest(http.MethodGet, "/maybe-user", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"guest": true}`, w.Body.String())
}

func TestOptionalUser_BrokenTokenIsIgnored(t *testing.T) {
	// Arrange: a stale client token must not block guest checkout.
	middleware := NewAuthMiddleware(newTestTokenManager(), new(mockAdminService))
	router := newMiddlewareRouter(middleware)

	req := httptest.NewRequest(http.MethodGet, "/maybe-user", nil)
	req.Header.Set("Authorization", "Bearer expired-garbage")
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"guest": true}`, w.Body.String())
}

func TestOptionalUser_ValidToken(t *testing.T) {
	// Arrange
	tokenManager := newTestTokenManager()
	middleware := NewAuthMiddleware(tokenManager, new(mockAdminService))
	router := newMiddlewareRouter(middleware)

	token, err := tokenManager.GenerateUserToken(7, "ana@example.com", false)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/maybe-user", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id": 7}`, w.Body.String())
}

// ===================== RequireAdmin Tests =====================

func TestRequireAdmin_ValidToken(t *testing.T) {
	// Arrange
	tokenManager := newTestTokenManager()
	adminService := new(mockAdminService)
	middleware := NewAuthMiddleware(tokenManager, adminService)
	router := newMiddlewareRouter(middleware)

	token, err := tokenManager.GenerateAdminToken(1)
	require.NoError(t, err)
	adminService.On("Verify", mock.Anything, uint(1)).Return(&entity.Admin{ID: 1, Username: "admin", Active: true}, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"admin_id": 1}`, w.Body.String())
	adminService.AssertExpectations(t)
}

func TestRequireAdmin_RevokedAdmin(t *testing.T) {
	// Arrange: the token is still valid but the account was disabled.
	tokenManager := newTestTokenManager()
	adminService := new(mockAdminService)
	middleware := NewAuthMiddleware(tokenManager, adminService)
	router := newMiddlewareRouter(middleware)

	token, err := tokenManager.GenerateAdminToken(2)
	require.NoError(t, err)
	adminService.On("Verify", mock.Anything, uint(2)).Return(nil, service.ErrAdminNotFound)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error": "Token inválido ou expirado"}`, w.Body.String())
}

func TestRequireAdmin_UserTokenRejected(t *testing.T) {
	// Arrange: shopper tokens never open the console.
	tokenManager := newTestTokenManager()
	adminService := new(mockAdminService)
	middleware := NewAuthMiddleware(tokenManager, adminService)
	router := newMiddlewareRouter(middleware)

	token, err := tokenManager.GenerateUserToken(1, "maria@example.com", true)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	adminService.AssertNotCalled(t, "Verify")
}
