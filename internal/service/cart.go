package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CartLine — одна позиция корзины: товар + количество со снапшотом цены.
type CartLine struct {
	ProductID       uuid.UUID `json:"product_id"`
	Name            string    `json:"name"`
	Image           string    `json:"image,omitempty"`
	Quantity        int32     `json:"quantity"`
	UnitAmountCents int64     `json:"unit_amount_cents"`
	TotalCents      int64     `json:"total_cents"`
}

type Cart struct {
	ID         string     `json:"id"`
	Items      []CartLine `json:"items"`
	TotalCents int64      `json:"total_cents"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (c *Cart) recomputeTotal() {
	totals := make([]int64, 0, len(c.Items))
	for i := range c.Items {
		totals = append(totals, c.Items[i].TotalCents)
	}
	c.TotalCents = SumLineTotals(totals)
}

func (c *Cart) findLine(productID uuid.UUID) *CartLine {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// CartStore persists carts by ID. Get returns (nil, nil) when absent.
type CartStore interface {
	Get(ctx context.Context, id string) (*Cart, error)
	Save(ctx context.Context, cart *Cart) error
	Delete(ctx context.Context, id string) error
}

type CartService interface {
	Get(ctx context.Context, cartID string) (*Cart, error)
	AddItem(ctx context.Context, cartID string, productID uuid.UUID) (*Cart, error)
	IncrementItem(ctx context.Context, cartID string, productID uuid.UUID) (*Cart, error)
	DecrementItem(ctx context.Context, cartID string, productID uuid.UUID) (*Cart, error)
	SetItemQuantity(ctx context.Context, cartID string, productID uuid.UUID, qty int32) (*Cart, error)
	RemoveItem(ctx context.Context, cartID string, productID uuid.UUID) (*Cart, error)
	Merge(ctx context.Context, fromID, toID string) (*Cart, error)
	Clear(ctx context.Context, cartID string) error
}

type cartService struct {
	store   CartStore
	pricing PricingProvider
	now     func() time.Time
}

func NewCartService(store CartStore, pricing PricingProvider) CartService {
	return &cartService{
		store:   store,
		pricing: pricing,
		now:     time.Now,
	}
}

func (s *cartService) load(ctx context.Context, cartID string) (*Cart, error) {
	cart, err := s.store.Get(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if cart == nil {
		cart = &Cart{ID: cartID, Items: []CartLine{}}
	}
	return cart, nil
}

func (s *cartService) save(ctx context.Context, cart *Cart) (*Cart, error) {
	cart.recomputeTotal()
	cart.UpdatedAt = s.now()
	if err := s.store.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return cart, nil
}

func (s *cartService) Get(ctx context.Context, cartID string) (*Cart, error) {
	cart, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// AddItem добавляет товар в корзину; если он уже есть — увеличивает количество.
// Цена снапшотится из каталога в момент добавления.
func (s *cartService) AddItem(ctx context.Context, cartID string, productID uuid.UUID) (*Cart, error) {
	cart, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	if line := cart.findLine(productID); line != nil {
		line.Quantity++
		line.TotalCents = ComputeLineTotal(line.UnitAmountCents, line.Quantity)
		return s.save(ctx, cart)
	}

	price, err := s.pricing.GetPrice(ctx, productID)
	if err != nil {
		return nil, err
	}

	line := CartLine{
		ProductID:       productID,
		Name:            price.Name,
		Image:           price.Image,
		Quantity:        1,
		UnitAmountCents: price.UnitAmountCents,
	}
	line.TotalCents = ComputeLineTotal(line.UnitAmountCents, line.Quantity)
	cart.Items = append(cart.Items, line)

	return s.save(ctx, cart)
}

func (s *cartService) IncrementItem(ctx context.Context, cartID string, productID uuid.UUID) (*Cart, error) {
	cart, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	line := cart.findLine(productID)
	if line == nil {
		return nil, ErrCartItemNotFound
	}
	line.Quantity++
	line.TotalCents = ComputeLineTotal(line.UnitAmountCents, line.Quantity)

	return s.save(ctx, cart)
}

// DecrementItem уменьшает количество, но не ниже 1 (кнопка "-" в степпере).
func (s *cartService) DecrementItem(ctx context.Context, cartID string, productID uuid.UUID) (*Cart, error) {
	cart, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	line := cart.findLine(productID)
	if line == nil {
		return nil, ErrCartItemNotFound
	}
	if line.Quantity > 1 {
		line.Quantity--
	}
	line.TotalCents = ComputeLineTotal(line.UnitAmountCents, line.Quantity)

	return s.save(ctx, cart)
}

func (s *cartService) SetItemQuantity(ctx context.Context, cartID string, productID uuid.UUID, qty int32) (*Cart, error) {
	if qty < 1 {
		return nil, ErrQuantityInvalid
	}

	cart, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	line := cart.findLine(productID)
	if line == nil {
		return nil, ErrCartItemNotFound
	}
	line.Quantity = qty
	line.TotalCents = ComputeLineTotal(line.UnitAmountCents, line.Quantity)

	return s.save(ctx, cart)
}

func (s *cartService) RemoveItem(ctx context.Context, cartID string, productID uuid.UUID) (*Cart, error) {
	cart, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	kept := cart.Items[:0]
	found := false
	for _, line := range cart.Items {
		if line.ProductID == productID {
			found = true
			continue
		}
		kept = append(kept, line)
	}
	if !found {
		return nil, ErrCartItemNotFound
	}
	cart.Items = kept

	return s.save(ctx, cart)
}

// Merge переносит корзину fromID в корзину toID: гость собирал корзину
// до входа, после авторизации она должна стать корзиной пользователя.
// Общие товары складываются по количеству, снапшот цены остаётся от
// корзины-приёмника. Исходная корзина после переноса удаляется.
func (s *cartService) Merge(ctx context.Context, fromID, toID string) (*Cart, error) {
	if fromID == toID {
		return s.Get(ctx, toID)
	}

	from, err := s.store.Get(ctx, fromID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	to, err := s.load(ctx, toID)
	if err != nil {
		return nil, err
	}
	if from == nil || len(from.Items) == 0 {
		return to, nil
	}

	for _, line := range from.Items {
		if existing := to.findLine(line.ProductID); existing != nil {
			existing.Quantity += line.Quantity
			existing.TotalCents = ComputeLineTotal(existing.UnitAmountCents, existing.Quantity)
			continue
		}
		line.TotalCents = ComputeLineTotal(line.UnitAmountCents, line.Quantity)
		to.Items = append(to.Items, line)
	}

	merged, err := s.save(ctx, to)
	if err != nil {
		return nil, err
	}
	if err := s.store.Delete(ctx, fromID); err != nil {
		return nil, fmt.Errorf("drop merged cart: %w", err)
	}
	return merged, nil
}

func (s *cartService) Clear(ctx context.Context, cartID string) error {
	if err := s.store.Delete(ctx, cartID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
