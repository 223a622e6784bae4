package service

import (
	"context"

	"lojamoz/internal/app/loja/entity"
	"lojamoz/internal/app/loja/repository"
)

type CatalogServiceInterface interface {
	GetAllCategories(ctx context.Context) ([]entity.Category, error)
	CreateCategory(ctx context.Context, req *entity.CreateCategoryRequest) (*entity.Category, error)
	ListProducts(ctx context.Context, filter repository.ProductFilter) ([]entity.ProductResponse, error)
	GetProduct(ctx context.Context, id uint) (*entity.ProductResponse, error)
	CreateProduct(ctx context.Context, req *entity.CreateProductRequest) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uint, req *entity.UpdateProductRequest) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
	SyncExternal(ctx context.Context) error
	SyncPortuguese(ctx context.Context) error
	Status(ctx context.Context) *entity.StatusResponse
}

type UserServiceInterface interface {
	Signup(ctx context.Context, req *entity.SignupRequest) (*entity.User, string, error)
	Login(ctx context.Context, req *entity.LoginRequest) (*entity.User, string, error)
	GetProfile(ctx context.Context, userID uint) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uint, req *entity.UpdateProfileRequest) (*entity.User, error)
	ListUsers(ctx context.Context) ([]entity.UserWithOrderCount, error)
	SetUserActive(ctx context.Context, userID uint, active bool) (*entity.User, error)
}

type FavoriteServiceInterface interface {
	AddFavorite(ctx context.Context, userID, productID uint) (*entity.Favorite, error)
	RemoveFavorite(ctx context.Context, userID, productID uint) error
	ListFavorites(ctx context.Context, userID uint) ([]entity.FavoriteResponse, error)
	IsFavorite(ctx context.Context, userID, productID uint) (bool, error)
}

type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, userID *uint, req *entity.CreateOrderRequest) (*entity.OrderResponse, error)
	GetOrder(ctx context.Context, orderID uint) (*entity.OrderResponse, error)
	ListOrders(ctx context.Context) ([]entity.OrderResponse, error)
	ListUserOrders(ctx context.Context, userID uint) ([]entity.OrderResponse, error)
	UpdateOrderStatus(ctx context.Context, orderID uint, status entity.OrderStatus) (*entity.Order, error)
	GetStatistics(ctx context.Context) (*entity.OrderStatistics, error)
}

type AdminServiceInterface interface {
	Login(ctx context.Context, req *entity.AdminLoginRequest) (*entity.Admin, string, error)
	Verify(ctx context.Context, adminID uint) (*entity.Admin, error)
}
