package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"lojamoz/internal/app/loja/entity"
	"lojamoz/internal/app/loja/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockFavoriteService struct {
	mock.Mock
}

func (m *mockFavoriteService) AddFavorite(ctx context.Context, userID, productID uint) (*entity.Favorite, error) {
	args := m.Called(ctx, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Favorite), args.Error(1)
}

func (m *mockFavoriteService) RemoveFavorite(ctx context.Context, userID, productID uint) error {
	args := m.Called(ctx, userID, productID)
	return args.Error(0)
}

func (m *mockFavoriteService) ListFavorites(ctx context.Context, userID uint) ([]entity.FavoriteResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.FavoriteResponse), args.Error(1)
}

func (m *mockFavoriteService) IsFavorite(ctx context.Context, userID, productID uint) (bool, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), args.Error(1)
}

func newFavoriteRouter(h *FavoriteHandler, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	// Stand-in for RequireUser.
	router.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
	})

	router.POST("/favorites", h.AddFavorite)
	router.DELETE("/favorites/:produto_id", h.RemoveFavorite)
	router.GET("/favorites", h.ListFavorites)
	router.GET("/favorites/:produto_id/status", h.CheckFavorite)
	return router
}

// ===================== AddFavorite Tests =====================

func TestAddFavoriteHandler_Success(t *testing.T) {
	// Arrange
	favoriteService := new(mockFavoriteService)
	router := newFavoriteRouter(NewFavoriteHandler(favoriteService), 1)

	favoriteService.On("AddFavorite", mock.Anything, uint(1), uint(3)).
		Return(&entity.Favorite{ID: 10, UserID: 1, ProductID: 3}, nil)

	body := bytes.NewBufferString(`{"produto_id": 3}`)
	req := httptest.NewRequest(http.MethodPost, "/favorites", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusCreated, w.Code)
	favoriteService.AssertExpectations(t)
}

func TestAddFavoriteHandler_Duplicate(t *testing.T) {
	// Arrange
	favoriteService := new(mockFavoriteService)
	router := newFavoriteRouter(NewFavoriteHandler(favoriteService), 1)

	favoriteService.On("AddFavorite", mock.Anything, uint(1), uint(3)).
		Return(nil, service.ErrFavoriteExists)

	body := bytes.NewBufferString(`{"produto_id": 3}`)
	req := httptest.NewRequest(http.MethodPost, "/favorites", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error": "Produto já está nos favoritos"}`, w.Body.String())
}

// ===================== RemoveFavorite Tests =====================

func TestRemoveFavoriteHandler_NotFound(t *testing.T) {
	// Arrange
	favoriteService := new(mockFavoriteService)
	router := newFavoriteRouter(NewFavoriteHandler(favoriteService), 1)

	favoriteService.On("RemoveFavorite", mock.Anything, uint(1), uint(3)).
		Return(service.ErrFavoriteNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/favorites/3", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Favorito não encontrado"}`, w.Body.String())
}

// ===================== CheckFavorite Tests =====================

func TestCheckFavoriteHandler(t *testing.T) {
	// Arrange
	favoriteService := new(mockFavoriteService)
	router := newFavoriteRouter(NewFavoriteHandler(favoriteService), 1)

	favoriteService.On("IsFavorite", mock.Anything, uint(1), uint(3)).Return(true, nil)

	req := httptest.NewRequest(http.MethodGet, "/favorites/3/status", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert: the mobile client reads this exact key.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"is_favorito": true}`, w.Body.String())
}
