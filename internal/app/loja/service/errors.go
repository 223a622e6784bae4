package service

import "errors"

// Business errors, mapped onto HTTP statuses by the handlers.
var (
	ErrCategoryNotFound   = errors.New("category not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrProductInUse       = errors.New("product is referenced by order items")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is deactivated")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrFavoriteExists     = errors.New("product already in favorites")
	ErrFavoriteNotFound   = errors.New("favorite not found")
	ErrForbidden          = errors.New("access denied")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrExternalAPIFailure = errors.New("external catalog unavailable")
)
