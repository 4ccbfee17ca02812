package service

import "errors"

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrNotAdmin        = errors.New("admin role required")
	ErrInvalidCreds    = errors.New("invalid email or password")
	ErrEmailTaken      = errors.New("email already registered")
	ErrUserNotFound    = errors.New("user not found")
	ErrSlugTaken       = errors.New("slug already in use")
	ErrQuantityInvalid = errors.New("quantity must be >= 1")
	ErrInvalidPrice    = errors.New("price must be >= 0")

	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrBrandNotFound    = errors.New("brand not found")

	ErrCartEmpty        = errors.New("cart is empty")
	ErrCartItemNotFound = errors.New("cart item not found")

	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderItemNotFound = errors.New("order item not found")
	ErrEmptyItems        = errors.New("empty items")
	ErrDuplicateProduct  = errors.New("product already present in order")

	ErrInvalidStatus        = errors.New("unknown order status")
	ErrInvalidPaymentStatus = errors.New("unknown payment status")
	ErrInvalidPaymentMethod = errors.New("unknown payment method")
)
