package service_test

import (
	"context"
	"sync"

	"shop-service/internal/models"
	"shop-service/internal/repository"
	"shop-service/internal/service"

	"github.com/google/uuid"
)

// Моки для всех зависимостей сервисов

// MockOrderRepo
type MockOrderRepo struct {
	CreateFunc              func(ctx context.Context, o *models.Order) error
	GetByIDFunc             func(ctx context.Context, id uuid.UUID) (*models.Order, error)
	GetByIDForUserFunc      func(ctx context.Context, id, userID uuid.UUID) (*models.Order, error)
	UpdateStatusFunc        func(ctx context.Context, id uuid.UUID, status models.OrderStatus) error
	UpdatePaymentStatusFunc func(ctx context.Context, id uuid.UUID, status models.PaymentStatus) error
	UpdateTotalsFunc        func(ctx context.Context, id uuid.UUID, grandTotalCents int64) error
	ListFunc                func(ctx context.Context, f repository.OrderListFilter) ([]*models.Order, int64, error)
	DeleteFunc              func(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsFunc              func(ctx context.Context, id uuid.UUID) (bool, error)
	CountFunc               func(ctx context.Context) (int64, error)
	CountByStatusFunc       func(ctx context.Context, status models.OrderStatus) (int64, error)
	AvgGrandTotalCentsFunc  func(ctx context.Context) (int64, error)
	WithTxFunc              func(ctx context.Context, fn func(txOrders repository.OrderRepo, txItems repository.OrderItemRepo) error) error

	// TxItems подставляется в WithTx по умолчанию
	TxItems repository.OrderItemRepo
}

func (m *MockOrderRepo) Create(ctx context.Context, o *models.Order) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, o)
	}
	return nil
}

func (m *MockOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockOrderRepo) GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*models.Order, error) {
	if m.GetByIDForUserFunc != nil {
		return m.GetByIDForUserFunc(ctx, id, userID)
	}
	return nil, nil
}

func (m *MockOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *MockOrderRepo) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status models.PaymentStatus) error {
	if m.UpdatePaymentStatusFunc != nil {
		return m.UpdatePaymentStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *MockOrderRepo) UpdateTotals(ctx context.Context, id uuid.UUID, grandTotalCents int64) error {
	if m.UpdateTotalsFunc != nil {
		return m.UpdateTotalsFunc(ctx, id, grandTotalCents)
	}
	return nil
}

func (m *MockOrderRepo) List(ctx context.Context, f repository.OrderListFilter) ([]*models.Order, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, f)
	}
	return nil, 0, nil
}

func (m *MockOrderRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return false, nil
}

func (m *MockOrderRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, nil
}

func (m *MockOrderRepo) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *MockOrderRepo) CountByStatus(ctx context.Context, status models.OrderStatus) (int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, status)
	}
	return 0, nil
}

func (m *MockOrderRepo) AvgGrandTotalCents(ctx context.Context) (int64, error) {
	if m.AvgGrandTotalCentsFunc != nil {
		return m.AvgGrandTotalCentsFunc(ctx)
	}
	return 0, nil
}

func (m *MockOrderRepo) WithTx(ctx context.Context, fn func(txOrders repository.OrderRepo, txItems repository.OrderItemRepo) error) error {
	if m.WithTxFunc != nil {
		return m.WithTxFunc(ctx, fn)
	}
	return fn(m, m.TxItems)
}

// MockOrderItemRepo
type MockOrderItemRepo struct {
	CreateFunc          func(ctx context.Context, item *models.OrderItem) error
	BulkCreateFunc      func(ctx context.Context, items []models.OrderItem) error
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*models.OrderItem, error)
	GetByOrderIDFunc    func(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error)
	UpdateLineFunc      func(ctx context.Context, id uuid.UUID, productID uuid.UUID, quantity int32, unitAmountCents, totalCents int64) error
	SumByOrderFunc      func(ctx context.Context, orderID uuid.UUID) (int64, error)
	DeleteFunc          func(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteByOrderIDFunc func(ctx context.Context, orderID uuid.UUID) (int64, error)
}

func (m *MockOrderItemRepo) Create(ctx context.Context, item *models.OrderItem) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, item)
	}
	return nil
}

func (m *MockOrderItemRepo) BulkCreate(ctx context.Context, items []models.OrderItem) error {
	if m.BulkCreateFunc != nil {
		return m.BulkCreateFunc(ctx, items)
	}
	return nil
}

func (m *MockOrderItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.OrderItem, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockOrderItemRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error) {
	if m.GetByOrderIDFunc != nil {
		return m.GetByOrderIDFunc(ctx, orderID)
	}
	return nil, nil
}

func (m *MockOrderItemRepo) UpdateLine(ctx context.Context, id uuid.UUID, productID uuid.UUID, quantity int32, unitAmountCents, totalCents int64) error {
	if m.UpdateLineFunc != nil {
		return m.UpdateLineFunc(ctx, id, productID, quantity, unitAmountCents, totalCents)
	}
	return nil
}

func (m *MockOrderItemRepo) SumByOrder(ctx context.Context, orderID uuid.UUID) (int64, error) {
	if m.SumByOrderFunc != nil {
		return m.SumByOrderFunc(ctx, orderID)
	}
	return 0, nil
}

func (m *MockOrderItemRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return false, nil
}

func (m *MockOrderItemRepo) DeleteByOrderID(ctx context.Context, orderID uuid.UUID) (int64, error) {
	if m.DeleteByOrderIDFunc != nil {
		return m.DeleteByOrderIDFunc(ctx, orderID)
	}
	return 0, nil
}

// MockProductRepo
type MockProductRepo struct {
	CreateFunc        func(ctx context.Context, p *models.Product) error
	UpdateFieldsFunc  func(ctx context.Context, id uuid.UUID, fields map[string]any) error
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetBySlugFunc     func(ctx context.Context, slug string, onlyActive bool) (*models.Product, error)
	ListFunc          func(ctx context.Context, f repository.ProductListFilter) ([]models.Product, int64, error)
	BatchGetByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) (bool, error)
	BulkDeleteFunc    func(ctx context.Context, ids []uuid.UUID) (int64, error)
	CountFunc         func(ctx context.Context) (int64, error)
}

func (m *MockProductRepo) Create(ctx context.Context, p *models.Product) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *MockProductRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, id, fields)
	}
	return nil
}

func (m *MockProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProductRepo) GetBySlug(ctx context.Context, slug string, onlyActive bool) (*models.Product, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, slug, onlyActive)
	}
	return nil, nil
}

func (m *MockProductRepo) List(ctx context.Context, f repository.ProductListFilter) ([]models.Product, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, f)
	}
	return nil, 0, nil
}

func (m *MockProductRepo) BatchGetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	if m.BatchGetByIDsFunc != nil {
		return m.BatchGetByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockProductRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return false, nil
}

func (m *MockProductRepo) BulkDelete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if m.BulkDeleteFunc != nil {
		return m.BulkDeleteFunc(ctx, ids)
	}
	return 0, nil
}

func (m *MockProductRepo) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockCategoryRepo
type MockCategoryRepo struct {
	CreateFunc       func(ctx context.Context, c *models.Category) error
	UpdateFieldsFunc func(ctx context.Context, id uuid.UUID, fields map[string]any) error
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*models.Category, error)
	GetBySlugFunc    func(ctx context.Context, slug string) (*models.Category, error)
	ListFunc         func(ctx context.Context, f repository.CategoryListFilter) ([]models.Category, int64, error)
	DeleteFunc       func(ctx context.Context, id uuid.UUID) (bool, error)
	BulkDeleteFunc   func(ctx context.Context, ids []uuid.UUID) (int64, error)
	CountFunc        func(ctx context.Context) (int64, error)
}

func (m *MockCategoryRepo) Create(ctx context.Context, c *models.Category) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *MockCategoryRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, id, fields)
	}
	return nil
}

func (m *MockCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCategoryRepo) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *MockCategoryRepo) List(ctx context.Context, f repository.CategoryListFilter) ([]models.Category, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, f)
	}
	return nil, 0, nil
}

func (m *MockCategoryRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return false, nil
}

func (m *MockCategoryRepo) BulkDelete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if m.BulkDeleteFunc != nil {
		return m.BulkDeleteFunc(ctx, ids)
	}
	return 0, nil
}

func (m *MockCategoryRepo) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockBrandRepo
type MockBrandRepo struct {
	CreateFunc       func(ctx context.Context, b *models.Brand) error
	UpdateFieldsFunc func(ctx context.Context, id uuid.UUID, fields map[string]any) error
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*models.Brand, error)
	GetBySlugFunc    func(ctx context.Context, slug string) (*models.Brand, error)
	ListFunc         func(ctx context.Context, f repository.BrandListFilter) ([]models.Brand, int64, error)
	DeleteFunc       func(ctx context.Context, id uuid.UUID) (bool, error)
	BulkDeleteFunc   func(ctx context.Context, ids []uuid.UUID) (int64, error)
	CountFunc        func(ctx context.Context) (int64, error)
}

func (m *MockBrandRepo) Create(ctx context.Context, b *models.Brand) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, b)
	}
	return nil
}

func (m *MockBrandRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, id, fields)
	}
	return nil
}

func (m *MockBrandRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Brand, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBrandRepo) GetBySlug(ctx context.Context, slug string) (*models.Brand, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *MockBrandRepo) List(ctx context.Context, f repository.BrandListFilter) ([]models.Brand, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, f)
	}
	return nil, 0, nil
}

func (m *MockBrandRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return false, nil
}

func (m *MockBrandRepo) BulkDelete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if m.BulkDeleteFunc != nil {
		return m.BulkDeleteFunc(ctx, ids)
	}
	return 0, nil
}

func (m *MockBrandRepo) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockUserRepo
type MockUserRepo struct {
	CreateFunc        func(ctx context.Context, u *models.User) error
	UpdateFieldsFunc  func(ctx context.Context, id uuid.UUID, fields map[string]any) error
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*models.User, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
	ListFunc          func(ctx context.Context, f repository.UserListFilter) ([]models.User, int64, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) (bool, error)
	BulkDeleteFunc    func(ctx context.Context, ids []uuid.UUID) (int64, error)
	CountFunc         func(ctx context.Context) (int64, error)
}

func (m *MockUserRepo) Create(ctx context.Context, u *models.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *MockUserRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, id, fields)
	}
	return nil
}

func (m *MockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *MockUserRepo) List(ctx context.Context, f repository.UserListFilter) ([]models.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, f)
	}
	return nil, 0, nil
}

func (m *MockUserRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return false, nil
}

func (m *MockUserRepo) BulkDelete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if m.BulkDeleteFunc != nil {
		return m.BulkDeleteFunc(ctx, ids)
	}
	return 0, nil
}

func (m *MockUserRepo) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockPricing
type MockPricing struct {
	GetPriceFunc  func(ctx context.Context, productID uuid.UUID) (service.Price, error)
	GetPricesFunc func(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]service.Price, error)
}

func (m *MockPricing) GetPrice(ctx context.Context, productID uuid.UUID) (service.Price, error) {
	if m.GetPriceFunc != nil {
		return m.GetPriceFunc(ctx, productID)
	}
	return service.Price{}, nil
}

func (m *MockPricing) GetPrices(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]service.Price, error) {
	if m.GetPricesFunc != nil {
		return m.GetPricesFunc(ctx, productIDs)
	}
	return map[uuid.UUID]service.Price{}, nil
}

// pricingFromMap возвращает фиксированные цены каталога для тестов.
func pricingFromMap(prices map[uuid.UUID]service.Price) *MockPricing {
	return &MockPricing{
		GetPriceFunc: func(_ context.Context, id uuid.UUID) (service.Price, error) {
			p, ok := prices[id]
			if !ok {
				return service.Price{}, service.ErrProductNotFound
			}
			return p, nil
		},
	}
}

// MemCartStore — корзины в памяти вместо Redis.
type MemCartStore struct {
	mu    sync.Mutex
	carts map[string]*service.Cart
}

func NewMemCartStore() *MemCartStore {
	return &MemCartStore{carts: map[string]*service.Cart{}}
}

func (s *MemCartStore) Get(_ context.Context, id string) (*service.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	cp.Items = append([]service.CartLine(nil), c.Items...)
	return &cp, nil
}

func (s *MemCartStore) Save(_ context.Context, cart *service.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *cart
	cp.Items = append([]service.CartLine(nil), cart.Items...)
	s.carts[cart.ID] = &cp
	return nil
}

func (s *MemCartStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, id)
	return nil
}

// MockEventBus записывает опубликованные события.
type MockEventBus struct {
	mu        sync.Mutex
	Placed    []service.OrderPlacedEvent
	Cancelled []service.OrderCancelledEvent
}

func (m *MockEventBus) PublishOrderPlaced(_ context.Context, e service.OrderPlacedEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Placed = append(m.Placed, e)
	return nil
}

func (m *MockEventBus) PublishOrderCancelled(_ context.Context, e service.OrderCancelledEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Cancelled = append(m.Cancelled, e)
	return nil
}
