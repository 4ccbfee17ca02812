package handlers_test

// Моки сервисов для тестов хендлеров. Незаданная функция возвращает
// нулевые значения.

import (
	"context"

	"shop-service/internal/models"
	"shop-service/internal/service"

	"github.com/google/uuid"
)

type MockCartService struct {
	GetFunc             func(ctx context.Context, cartID string) (*service.Cart, error)
	AddItemFunc         func(ctx context.Context, cartID string, productID uuid.UUID) (*service.Cart, error)
	IncrementItemFunc   func(ctx context.Context, cartID string, productID uuid.UUID) (*service.Cart, error)
	DecrementItemFunc   func(ctx context.Context, cartID string, productID uuid.UUID) (*service.Cart, error)
	SetItemQuantityFunc func(ctx context.Context, cartID string, productID uuid.UUID, qty int32) (*service.Cart, error)
	RemoveItemFunc      func(ctx context.Context, cartID string, productID uuid.UUID) (*service.Cart, error)
	MergeFunc           func(ctx context.Context, fromID, toID string) (*service.Cart, error)
	ClearFunc           func(ctx context.Context, cartID string) error
}

func (m *MockCartService) Get(ctx context.Context, cartID string) (*service.Cart, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, cartID)
	}
	return &service.Cart{ID: cartID}, nil
}

func (m *MockCartService) AddItem(ctx context.Context, cartID string, productID uuid.UUID) (*service.Cart, error) {
	if m.AddItemFunc != nil {
		return m.AddItemFunc(ctx, cartID, productID)
	}
	return nil, nil
}

func (m *MockCartService) IncrementItem(ctx context.Context, cartID string, productID uuid.UUID) (*service.Cart, error) {
	if m.IncrementItemFunc != nil {
		return m.IncrementItemFunc(ctx, cartID, productID)
	}
	return nil, nil
}

func (m *MockCartService) DecrementItem(ctx context.Context, cartID string, productID uuid.UUID) (*service.Cart, error) {
	if m.DecrementItemFunc != nil {
		return m.DecrementItemFunc(ctx, cartID, productID)
	}
	return nil, nil
}

func (m *MockCartService) SetItemQuantity(ctx context.Context, cartID string, productID uuid.UUID, qty int32) (*service.Cart, error) {
	if m.SetItemQuantityFunc != nil {
		return m.SetItemQuantityFunc(ctx, cartID, productID, qty)
	}
	return nil, nil
}

func (m *MockCartService) RemoveItem(ctx context.Context, cartID string, productID uuid.UUID) (*service.Cart, error) {
	if m.RemoveItemFunc != nil {
		return m.RemoveItemFunc(ctx, cartID, productID)
	}
	return nil, nil
}

func (m *MockCartService) Merge(ctx context.Context, fromID, toID string) (*service.Cart, error) {
	if m.MergeFunc != nil {
		return m.MergeFunc(ctx, fromID, toID)
	}
	return &service.Cart{ID: toID}, nil
}

func (m *MockCartService) Clear(ctx context.Context, cartID string) error {
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx, cartID)
	}
	return nil
}

type MockOrderService struct {
	PlaceOrderFunc          func(ctx context.Context, in service.PlaceOrderInput) (*models.Order, error)
	GetOrderFunc            func(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListOrdersFunc          func(ctx context.Context, f service.ListFilter) ([]models.Order, int64, error)
	AddItemFunc             func(ctx context.Context, orderID, productID uuid.UUID, quantity int32) (*models.Order, error)
	UpdateItemFunc          func(ctx context.Context, orderID, itemID uuid.UUID, in service.UpdateOrderItemInput) (*models.Order, error)
	RemoveItemFunc          func(ctx context.Context, orderID, itemID uuid.UUID) (*models.Order, error)
	UpdateStatusFunc        func(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error)
	UpdatePaymentStatusFunc func(ctx context.Context, id uuid.UUID, status models.PaymentStatus) (*models.Order, error)
	CancelOrderFunc         func(ctx context.Context, id uuid.UUID) (*models.Order, error)
	DeleteOrderFunc         func(ctx context.Context, id uuid.UUID) error
	StatsFunc               func(ctx context.Context) (*service.OrderStats, error)
	BadgesFunc              func(ctx context.Context) (*service.NavigationBadges, error)
}

func (m *MockOrderService) PlaceOrder(ctx context.Context, in service.PlaceOrderInput) (*models.Order, error) {
	if m.PlaceOrderFunc != nil {
		return m.PlaceOrderFunc(ctx, in)
	}
	return nil, nil
}

func (m *MockOrderService) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	if m.GetOrderFunc != nil {
		return m.GetOrderFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockOrderService) ListOrders(ctx context.Context, f service.ListFilter) ([]models.Order, int64, error) {
	if m.ListOrdersFunc != nil {
		return m.ListOrdersFunc(ctx, f)
	}
	return nil, 0, nil
}

func (m *MockOrderService) AddItem(ctx context.Context, orderID, productID uuid.UUID, quantity int32) (*models.Order, error) {
	if m.AddItemFunc != nil {
		return m.AddItemFunc(ctx, orderID, productID, quantity)
	}
	return nil, nil
}

func (m *MockOrderService) UpdateItem(ctx context.Context, orderID, itemID uuid.UUID, in service.UpdateOrderItemInput) (*models.Order, error) {
	if m.UpdateItemFunc != nil {
		return m.UpdateItemFunc(ctx, orderID, itemID, in)
	}
	return nil, nil
}

func (m *MockOrderService) RemoveItem(ctx context.Context, orderID, itemID uuid.UUID) (*models.Order, error) {
	if m.RemoveItemFunc != nil {
		return m.RemoveItemFunc(ctx, orderID, itemID)
	}
	return nil, nil
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil, nil
}

func (m *MockOrderService) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status models.PaymentStatus) (*models.Order, error) {
	if m.UpdatePaymentStatusFunc != nil {
		return m.UpdatePaymentStatusFunc(ctx, id, status)
	}
	return nil, nil
}

func (m *MockOrderService) CancelOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	if m.CancelOrderFunc != nil {
		return m.CancelOrderFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockOrderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	if m.DeleteOrderFunc != nil {
		return m.DeleteOrderFunc(ctx, id)
	}
	return nil
}

func (m *MockOrderService) Stats(ctx context.Context) (*service.OrderStats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx)
	}
	return nil, nil
}

func (m *MockOrderService) Badges(ctx context.Context) (*service.NavigationBadges, error) {
	if m.BadgesFunc != nil {
		return m.BadgesFunc(ctx)
	}
	return nil, nil
}
