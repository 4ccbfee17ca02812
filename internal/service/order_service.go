package service

import (
	"context"
	"time"

	"shop-service/internal/models"
	"shop-service/internal/repository"

	"github.com/google/uuid"
)

const defaultCurrency = "LKR"

type orderService struct {
	repo    *repository.Repository
	pricing PricingProvider
	events  EventBus
	now     func() time.Time
}

func NewOrderService(repo *repository.Repository, pricing PricingProvider, events EventBus) OrderService {
	return &orderService{
		repo:    repo,
		pricing: pricing,
		events:  events,
		now:     time.Now,
	}
}

func requireAdmin(ctx context.Context) (uuid.UUID, error) {
	uid, role, err := requireAuth(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	if role != RoleAdmin {
		return uuid.Nil, ErrForbidden
	}
	return uid, nil
}

func (s *orderService) PlaceOrder(ctx context.Context, in PlaceOrderInput) (*models.Order, error) {
	userID, _, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	if len(in.Items) == 0 {
		return nil, ErrEmptyItems
	}
	if !in.PaymentMethod.Valid() {
		return nil, ErrInvalidPaymentMethod
	}

	currency := in.CurrencyCode
	if currency == "" {
		currency = defaultCurrency
	}

	var (
		order   *models.Order
		now     = s.now()
		itemsDB []models.OrderItem
		total   int64
	)

	err = s.repo.Orders.WithTx(ctx, func(or repository.OrderRepo, ir repository.OrderItemRepo) error {
		for _, it := range in.Items {
			if it.Quantity < 1 {
				return ErrQuantityInvalid
			}

			price, err := s.pricing.GetPrice(ctx, it.ProductID)
			if err != nil {
				return err
			}

			line := ComputeLineTotal(price.UnitAmountCents, it.Quantity)
			total += line

			itemsDB = append(itemsDB, models.OrderItem{
				ProductID:       it.ProductID,
				Quantity:        it.Quantity,
				UnitAmountCents: price.UnitAmountCents,
				TotalCents:      line,
				CreatedAt:       now,
			})
		}

		order = &models.Order{
			UserID:              userID,
			Status:              models.OrderStatusNew,
			PaymentMethod:       in.PaymentMethod,
			PaymentStatus:       models.PaymentStatusPending,
			GrandTotalCents:     total,
			CurrencyCode:        currency,
			ShippingMethod:      in.ShippingMethod,
			ShippingAmountCents: in.ShippingAmountCents,
			Notes:               in.Notes,
			CreatedAt:           now,
			UpdatedAt:           now,
			Address: &models.Address{
				FirstName:     in.Address.FirstName,
				LastName:      in.Address.LastName,
				Phone:         in.Address.Phone,
				StreetAddress: in.Address.StreetAddress,
				City:          in.Address.City,
				State:         in.Address.State,
				ZipCode:       in.Address.ZipCode,
			},
		}

		if err := or.Create(ctx, order); err != nil {
			return err
		}

		for i := range itemsDB {
			itemsDB[i].OrderID = order.ID
		}

		if err := ir.BulkCreate(ctx, itemsDB); err != nil {
			return err
		}

		// Итог пересчитываем по сохранённым позициям — единственный источник правды
		sum, err := ir.SumByOrder(ctx, order.ID)
		if err != nil {
			return err
		}
		if err := or.UpdateTotals(ctx, order.ID, sum); err != nil {
			return err
		}

		ordWith, err := or.GetByID(ctx, order.ID)
		if err != nil {
			return err
		}
		order = ordWith

		return nil
	})

	if err != nil {
		return nil, err
	}

	if s.events != nil {
		evItems := make([]OrderItemEvent, 0, len(order.Items))
		for _, it := range order.Items {
			evItems = append(evItems, OrderItemEvent{
				ProductID:       it.ProductID,
				Quantity:        it.Quantity,
				UnitAmountCents: it.UnitAmountCents,
				TotalCents:      it.TotalCents,
			})
		}
		_ = s.events.PublishOrderPlaced(ctx, OrderPlacedEvent{
			OrderID:         order.ID,
			UserID:          order.UserID,
			Items:           evItems,
			GrandTotalCents: order.GrandTotalCents,
			Currency:        order.CurrencyCode,
			PaymentMethod:   string(order.PaymentMethod),
			CreatedAt:       order.CreatedAt,
		})
	}

	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	userID, role, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	var ord *models.Order
	if role == RoleAdmin {
		ord, err = s.repo.Orders.GetByID(ctx, id)
	} else {
		ord, err = s.repo.Orders.GetByIDForUser(ctx, id, userID)
	}
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}
	return ord, nil
}

func (s *orderService) ListOrders(ctx context.Context, f ListFilter) ([]models.Order, int64, error) {
	userID, role, err := requireAuth(ctx)
	if err != nil {
		return nil, 0, err
	}

	if role != RoleAdmin {
		f.UserID = &userID
	}

	ordersPtr, total, err := s.repo.Orders.List(ctx, repository.OrderListFilter{
		UserID:        f.UserID,
		Status:        f.Status,
		PaymentStatus: f.PaymentStatus,
		Limit:         f.Limit,
		Offset:        f.Offset,
	})
	if err != nil {
		return nil, 0, err
	}

	orders := make([]models.Order, len(ordersPtr))
	for i, o := range ordersPtr {
		orders[i] = *o
	}
	return orders, total, nil
}

// AddItem добавляет позицию к существующему заказу и пересчитывает итог
// в той же транзакции.
func (s *orderService) AddItem(ctx context.Context, orderID, productID uuid.UUID, quantity int32) (*models.Order, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, ErrQuantityInvalid
	}

	ord, err := s.repo.Orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}
	for _, it := range ord.Items {
		if it.ProductID == productID {
			return nil, ErrDuplicateProduct
		}
	}

	price, err := s.pricing.GetPrice(ctx, productID)
	if err != nil {
		return nil, err
	}

	err = s.repo.Orders.WithTx(ctx, func(or repository.OrderRepo, ir repository.OrderItemRepo) error {
		item := models.OrderItem{
			OrderID:         orderID,
			ProductID:       productID,
			Quantity:        quantity,
			UnitAmountCents: price.UnitAmountCents,
			TotalCents:      ComputeLineTotal(price.UnitAmountCents, quantity),
		}
		if err := ir.Create(ctx, &item); err != nil {
			return err
		}
		return recomputeGrandTotal(ctx, or, ir, orderID)
	})
	if err != nil {
		return nil, err
	}

	return s.repo.Orders.GetByID(ctx, orderID)
}

func (s *orderService) UpdateItem(ctx context.Context, orderID, itemID uuid.UUID, in UpdateOrderItemInput) (*models.Order, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	item, err := s.repo.OrderItems.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.OrderID != orderID {
		return nil, ErrOrderItemNotFound
	}

	productID := item.ProductID
	unit := item.UnitAmountCents
	qty := item.Quantity

	if in.ProductID != nil && *in.ProductID != item.ProductID {
		ord, err := s.repo.Orders.GetByID(ctx, orderID)
		if err != nil {
			return nil, err
		}
		if ord == nil {
			return nil, ErrOrderNotFound
		}
		for _, it := range ord.Items {
			if it.ProductID == *in.ProductID {
				return nil, ErrDuplicateProduct
			}
		}

		// смена товара — берём свежую цену из каталога
		price, err := s.pricing.GetPrice(ctx, *in.ProductID)
		if err != nil {
			return nil, err
		}
		productID = *in.ProductID
		unit = price.UnitAmountCents
	}
	if in.Quantity != nil {
		if *in.Quantity < 1 {
			return nil, ErrQuantityInvalid
		}
		qty = *in.Quantity
	}

	err = s.repo.Orders.WithTx(ctx, func(or repository.OrderRepo, ir repository.OrderItemRepo) error {
		if err := ir.UpdateLine(ctx, itemID, productID, qty, unit, ComputeLineTotal(unit, qty)); err != nil {
			return err
		}
		return recomputeGrandTotal(ctx, or, ir, orderID)
	})
	if err != nil {
		return nil, err
	}

	return s.repo.Orders.GetByID(ctx, orderID)
}

func (s *orderService) RemoveItem(ctx context.Context, orderID, itemID uuid.UUID) (*models.Order, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	item, err := s.repo.OrderItems.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.OrderID != orderID {
		return nil, ErrOrderItemNotFound
	}

	err = s.repo.Orders.WithTx(ctx, func(or repository.OrderRepo, ir repository.OrderItemRepo) error {
		if _, err := ir.Delete(ctx, itemID); err != nil {
			return err
		}
		return recomputeGrandTotal(ctx, or, ir, orderID)
	})
	if err != nil {
		return nil, err
	}

	return s.repo.Orders.GetByID(ctx, orderID)
}

// recomputeGrandTotal пересчитывает и сохраняет итог заказа по текущим
// позициям; без позиций итог равен 0.
func recomputeGrandTotal(ctx context.Context, or repository.OrderRepo, ir repository.OrderItemRepo, orderID uuid.UUID) error {
	sum, err := ir.SumByOrder(ctx, orderID)
	if err != nil {
		return err
	}
	return or.UpdateTotals(ctx, orderID, sum)
}

func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	ord, err := s.repo.Orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}

	// Переходы не ограничиваются: любой статус можно сменить на любой
	if err := s.repo.Orders.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	ord, err = s.repo.Orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if status == models.OrderStatusCancelled && s.events != nil {
		_ = s.events.PublishOrderCancelled(ctx, OrderCancelledEvent{
			OrderID:     ord.ID,
			UserID:      ord.UserID,
			CancelledAt: s.now(),
		})
	}

	return ord, nil
}

func (s *orderService) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status models.PaymentStatus) (*models.Order, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, ErrInvalidPaymentStatus
	}

	ord, err := s.repo.Orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}

	if err := s.repo.Orders.UpdatePaymentStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.repo.Orders.GetByID(ctx, id)
}

func (s *orderService) CancelOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	userID, role, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	ord, err := s.repo.Orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}
	if role != RoleAdmin && ord.UserID != userID {
		return nil, ErrForbidden
	}

	if err := s.repo.Orders.UpdateStatus(ctx, id, models.OrderStatusCancelled); err != nil {
		return nil, err
	}
	ord, err = s.repo.Orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.events != nil {
		_ = s.events.PublishOrderCancelled(ctx, OrderCancelledEvent{
			OrderID:     ord.ID,
			UserID:      ord.UserID,
			CancelledAt: s.now(),
		})
	}

	return ord, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}

	ok, err := s.repo.Orders.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrOrderNotFound
	}
	return nil
}

func (s *orderService) Stats(ctx context.Context) (*OrderStats, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	newCnt, err := s.repo.Orders.CountByStatus(ctx, models.OrderStatusNew)
	if err != nil {
		return nil, err
	}
	procCnt, err := s.repo.Orders.CountByStatus(ctx, models.OrderStatusProcessing)
	if err != nil {
		return nil, err
	}
	shippedCnt, err := s.repo.Orders.CountByStatus(ctx, models.OrderStatusShipped)
	if err != nil {
		return nil, err
	}
	avg, err := s.repo.Orders.AvgGrandTotalCents(ctx)
	if err != nil {
		return nil, err
	}

	return &OrderStats{
		NewCount:           newCnt,
		ProcessingCount:    procCnt,
		ShippedCount:       shippedCnt,
		AvgGrandTotalCents: avg,
	}, nil
}

func (s *orderService) Badges(ctx context.Context) (*NavigationBadges, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	orders, err := s.repo.Orders.Count(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.repo.Products.Count(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.repo.Categories.Count(ctx)
	if err != nil {
		return nil, err
	}
	brands, err := s.repo.Brands.Count(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.repo.Users.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &NavigationBadges{
		Orders:     orders,
		Products:   products,
		Categories: categories,
		Brands:     brands,
		Users:      users,
	}, nil
}
