package service

import (
	"context"

	"shop-service/internal/models"

	"github.com/google/uuid"
)

type PlaceOrderItem struct {
	ProductID uuid.UUID
	Quantity  int32
}

type AddressInput struct {
	FirstName     string
	LastName      string
	Phone         string
	StreetAddress string
	City          string
	State         string
	ZipCode       string
}

type PlaceOrderInput struct {
	Items               []PlaceOrderItem
	PaymentMethod       models.PaymentMethod
	CurrencyCode        string
	ShippingMethod      string
	ShippingAmountCents int64
	Notes               string
	Address             AddressInput
}

// UpdateOrderItemInput: смена товара пере-снапшотит цену, смена количества
// пересчитывает сумму строки. Оба поля опциональны.
type UpdateOrderItemInput struct {
	ProductID *uuid.UUID
	Quantity  *int32
}

type ListFilter struct {
	UserID        *uuid.UUID
	Status        *models.OrderStatus
	PaymentStatus *models.PaymentStatus
	Limit         int
	Offset        int
}

type OrderStats struct {
	NewCount           int64
	ProcessingCount    int64
	ShippedCount       int64
	AvgGrandTotalCents int64
}

// NavigationBadges — счётчики сущностей для бейджей навигации админки.
type NavigationBadges struct {
	Orders     int64
	Products   int64
	Categories int64
	Brands     int64
	Users      int64
}

type OrderService interface {
	PlaceOrder(ctx context.Context, in PlaceOrderInput) (*models.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListOrders(ctx context.Context, f ListFilter) ([]models.Order, int64, error)

	AddItem(ctx context.Context, orderID, productID uuid.UUID, quantity int32) (*models.Order, error)
	UpdateItem(ctx context.Context, orderID, itemID uuid.UUID, in UpdateOrderItemInput) (*models.Order, error)
	RemoveItem(ctx context.Context, orderID, itemID uuid.UUID) (*models.Order, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error)
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status models.PaymentStatus) (*models.Order, error)
	CancelOrder(ctx context.Context, id uuid.UUID) (*models.Order, error)
	DeleteOrder(ctx context.Context, id uuid.UUID) error

	Stats(ctx context.Context) (*OrderStats, error)
	Badges(ctx context.Context) (*NavigationBadges, error)
}
