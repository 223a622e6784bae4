package service

import (
	"context"
	"testing"
	"time"

	"lojamoz/internal/app/loja/entity"
	"lojamoz/internal/app/loja/repository"
	"lojamoz/internal/app/loja/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ===================== AddFavorite Tests =====================

func TestAddFavorite_Success(t *testing.T) {
	// Arrange
	favoriteRepo := new(mocks.MockFavoriteRepository)
	productRepo := new(mocks.MockProductRepository)
	svc := NewFavoriteService(favoriteRepo, productRepo)

	ctx := context.Background()
	productRepo.On("GetByID", ctx, uint(3)).Return(&entity.Product{ID: 3, Name: "Capulana Tradicional"}, nil)
	favoriteRepo.On("Exists", ctx, uint(1), uint(3)).Return(false, nil)
	favoriteRepo.On("Create", ctx, mock.AnythingOfType("*entity.Favorite")).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Favorite).ID = 10
	}).Return(nil)

	// Act
	favorite, err := svc.AddFavorite(ctx, 1, 3)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, uint(10), favorite.ID)
	assert.Equal(t, uint(1), favorite.UserID)
	assert.Equal(t, uint(3), favorite.ProductID)
	favoriteRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}

func TestAddFavorite_ProductNotFound(t *testing.T) {
	// Arrange
	favoriteRepo := new(mocks.MockFavoriteRepository)
	productRepo := new(mocks.MockProductRepository)
	svc := NewFavoriteService(favoriteRepo, productRepo)

	ctx := context.Background()
	productRepo.On("GetByID", ctx, uint(99)).Return(nil, repository.ErrNotFound)

	// Act
	favorite, err := svc.AddFavorite(ctx, 1, 99)

	// Assert
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Nil(t, favorite)
	favoriteRepo.AssertNotCalled(t, "Create")
}

func TestAddFavorite_AlreadyExists(t *testing.T) {
	// Arrange
	favoriteRepo := new(mocks.MockFavoriteRepository)
	productRepo := new(mocks.MockProductRepository)
	svc := NewFavoriteService(favoriteRepo, productRepo)

	ctx := context.Background()
	productRepo.On("GetByID", ctx, uint(3)).Return(&entity.Product{ID: 3}, nil)
	favoriteRepo.On("Exists", ctx, uint(1), uint(3)).Return(true, nil)

	// Act
	favorite, err := svc.AddFavorite(ctx, 1, 3)

	// Assert
	assert.ErrorIs(t, err, ErrFavoriteExists)
	assert.Nil(t, favorite)
	favoriteRepo.AssertNotCalled(t, "Create")
}

func TestAddFavorite_ConcurrentDuplicate(t *testing.T) {
	// Arrange: the pre-check passes but the insert hits the unique index.
	favoriteRepo := new(mocks.MockFavoriteRepository)
	productRepo := new(mocks.MockProductRepository)
	svc := NewFavoriteService(favoriteRepo, productRepo)

	ctx := context.Background()
	productRepo.On("GetByID", ctx, uint(3)).Return(&entity.Product{ID: 3}, nil)
	favoriteRepo.On("Exists", ctx, uint(1), uint(3)).Return(false, nil)
	favoriteRepo.On("Create", ctx, mock.AnythingOfType("*entity.Favorite")).Return(repository.ErrDuplicate)

	// Act
	favorite, err := svc.AddFavorite(ctx, 1, 3)

	// Assert
	assert.ErrorIs(t, err, ErrFavoriteExists)
	assert.Nil(t, favorite)
}

// ===================== RemoveFavorite Tests =====================

func TestRemoveFavorite_Success(t *testing.T) {
	// Arrange
	favoriteRepo := new(mocks.MockFavoriteRepository)
	productRepo := new(mocks.MockProductRepository)
	svc := NewFavoriteService(favoriteRepo, productRepo)

	ctx := context.Background()
	favoriteRepo.On("DeleteByUserAndProduct", ctx, uint(1), uint(3)).Return(nil)

	// Act
	err := svc.RemoveFavorite(ctx, 1, 3)

	// Assert
	assert.NoError(t, err)
	favoriteRepo.AssertExpectations(t)
}

func TestRemoveFavorite_NotFound(t *testing.T) {
	// Arrange
	favoriteRepo := new(mocks.MockFavoriteRepository)
	productRepo := new(mocks.MockProductRepository)
	svc := NewFavoriteService(favoriteRepo, productRepo)

	ctx := context.Background()
	favoriteRepo.On("DeleteByUserAndProduct", ctx, uint(1), uint(3)).Return(repository.ErrNotFound)

	// Act
	err := svc.RemoveFavorite(ctx, 1, 3)

	// Assert
	assert.ErrorIs(t, err, ErrFavoriteNotFound)
}

// ===================== ListFavorites Tests =====================

func TestListFavorites_Success(t *testing.T) {
	// Arrange
	favoriteRepo := new(mocks.MockFavoriteRepository)
	productRepo := new(mocks.MockProductRepository)
	svc := NewFavoriteService(favoriteRepo, productRepo)

	ctx := context.Background()
	createdAt := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
	favoriteRepo.On("ListByUser", ctx, uint(1)).Return([]entity.FavoriteWithProduct{
		{
			Favorite:     entity.Favorite{ID: 10, UserID: 1, ProductID: 3, CreatedAt: createdAt},
			ProductName:  "Capulana Tradicional",
			ProductPrice: 450,
			ProductImage: "capulana.jpg",
			ProductStock: 100,
		},
	}, nil)

	// Act
	favorites, err := svc.ListFavorites(ctx, 1)

	// Assert
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "Capulana Tradicional", favorites[0].ProductName)
	assert.Equal(t, 450.0, favorites[0].ProductPrice)
	assert.Equal(t, createdAt.Format(time.RFC3339), favorites[0].CreatedAt)
}

func TestListFavorites_Empty(t *testing.T) {
	// Arrange
	favoriteRepo := new(mocks.MockFavoriteRepository)
	productRepo := new(mocks.MockProductRepository)
	svc := NewFavoriteService(favoriteRepo, productRepo)

	ctx := context.Background()
	favoriteRepo.On("ListByUser", ctx, uint(1)).Return([]entity.FavoriteWithProduct{}, nil)

	// Act
	favorites, err := svc.ListFavorites(ctx, 1)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

// ===================== IsFavorite Tests =====================

func TestIsFavorite(t *testing.T) {
	// Arrange
	favoriteRepo := new(mocks.MockFavoriteRepository)
	productRepo := new(mocks.MockProductRepository)
	svc := NewFavoriteService(favoriteRepo, productRepo)

	ctx := context.Background()
	favoriteRepo.On("Exists", ctx, uint(1), uint(3)).Return(true, nil)
	favoriteRepo.On("Exists", ctx, uint(1), uint(4)).Return(false, nil)

	// Act / Assert
	found, err := svc.IsFavorite(ctx, 1, 3)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = svc.IsFavorite(ctx, 1, 4)
	require.NoError(t, err)
	assert.False(t, found)
}
