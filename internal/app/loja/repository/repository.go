package repository

import (
	"context"
	"errors"

	"lojamoz/internal/app/loja/entity"
)

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned on unique-constraint violations.
	ErrDuplicate = errors.New("duplicate record")
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id uint) (*entity.Category, error)
	GetAll(ctx context.Context) ([]entity.Category, error)
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
}

// ProductFilter narrows the public product listing.
type ProductFilter struct {
	CategoryID *uint
	Search     string
	ActiveOnly bool
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uint) (*entity.Product, error)
	GetWithCategory(ctx context.Context, id uint) (*entity.ProductResponse, error)
	List(ctx context.Context, filter ProductFilter) ([]entity.ProductResponse, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	CountOrderReferences(ctx context.Context, productID uint) (int64, error)
	DeleteAll(ctx context.Context) error
}

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uint) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	ListWithOrderCounts(ctx context.Context) ([]entity.UserWithOrderCount, error)
	SetActive(ctx context.Context, id uint, active bool) error
}

type OrderRepository interface {
	// CreateWithItems persists the order and every item in one
	// transaction; on failure nothing is visible.
	CreateWithItems(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uint) (*entity.Order, error)
	GetByUserID(ctx context.Context, userID uint) ([]entity.Order, error)
	ListAll(ctx context.Context) ([]entity.Order, error)
	UpdateStatus(ctx context.Context, order *entity.Order) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status entity.OrderStatus) (int64, error)
	SumTotalByStatuses(ctx context.Context, statuses []entity.OrderStatus) (float64, error)
	GetRecent(ctx context.Context, limit int) ([]entity.Order, error)
}

type FavoriteRepository interface {
	Create(ctx context.Context, favorite *entity.Favorite) error
	Exists(ctx context.Context, userID, productID uint) (bool, error)
	DeleteByUserAndProduct(ctx context.Context, userID, productID uint) error
	ListByUser(ctx context.Context, userID uint) ([]entity.FavoriteWithProduct, error)
}

type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	GetByID(ctx context.Context, id uint) (*entity.Admin, error)
	GetActiveByUsername(ctx context.Context, username string) (*entity.Admin, error)
	Count(ctx context.Context) (int64, error)
	UpdateLastLogin(ctx context.Context, admin *entity.Admin) error
}
