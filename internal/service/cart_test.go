package service_test

import (
	"context"
	"errors"
	"testing"

	"shop-service/internal/service"

	"github.com/google/uuid"
)

func newCartService(prices map[uuid.UUID]service.Price) (service.CartService, *MemCartStore) {
	store := NewMemCartStore()
	return service.NewCartService(store, pricingFromMap(prices)), store
}

func TestCartService_AddItem_SnapshotsPriceAndAggregates(t *testing.T) {
	productA := uuid.New()
	productB := uuid.New()
	svc, _ := newCartService(map[uuid.UUID]service.Price{
		productA: {UnitAmountCents: 10000, Name: "Hydrating Serum"},
		productB: {UnitAmountCents: 5000, Name: "Matte Lipstick"},
	})

	ctx := context.Background()
	cartID := "cart-1"

	// A добавлен дважды — строка одна, количество 2
	if _, err := svc.AddItem(ctx, cartID, productA); err != nil {
		t.Fatalf("AddItem A: %v", err)
	}
	if _, err := svc.AddItem(ctx, cartID, productA); err != nil {
		t.Fatalf("AddItem A second: %v", err)
	}
	cart, err := svc.AddItem(ctx, cartID, productB)
	if err != nil {
		t.Fatalf("AddItem B: %v", err)
	}

	if len(cart.Items) != 2 {
		t.Fatalf("expected 2 lines got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 2 || cart.Items[0].TotalCents != 20000 {
		t.Fatalf("line A mismatch: %+v", cart.Items[0])
	}
	if cart.Items[1].Quantity != 1 || cart.Items[1].TotalCents != 5000 {
		t.Fatalf("line B mismatch: %+v", cart.Items[1])
	}
	if cart.TotalCents != 25000 {
		t.Fatalf("cart total expected 25000 got %d", cart.TotalCents)
	}

	// удаление первой строки — итог пересчитан по оставшимся
	cart, err = svc.RemoveItem(ctx, cartID, productA)
	if err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	if len(cart.Items) != 1 || cart.TotalCents != 5000 {
		t.Fatalf("after remove: items=%d total=%d", len(cart.Items), cart.TotalCents)
	}
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	svc, _ := newCartService(map[uuid.UUID]service.Price{})

	_, err := svc.AddItem(context.Background(), "cart-1", uuid.New())
	if !errors.Is(err, service.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound got %v", err)
	}
}

func TestCartService_AddItem_PriceSnapshotIsStable(t *testing.T) {
	productA := uuid.New()
	prices := map[uuid.UUID]service.Price{
		productA: {UnitAmountCents: 10000, Name: "Serum"},
	}
	svc, _ := newCartService(prices)

	ctx := context.Background()
	if _, err := svc.AddItem(ctx, "cart-1", productA); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	// цена в каталоге меняется, но снапшот в строке остаётся прежним
	prices[productA] = service.Price{UnitAmountCents: 99900, Name: "Serum"}

	cart, err := svc.IncrementItem(ctx, "cart-1", productA)
	if err != nil {
		t.Fatalf("IncrementItem: %v", err)
	}
	if cart.Items[0].UnitAmountCents != 10000 || cart.Items[0].TotalCents != 20000 {
		t.Fatalf("snapshot changed: %+v", cart.Items[0])
	}
}

func TestCartService_DecrementItem_ClampsAtOne(t *testing.T) {
	productA := uuid.New()
	svc, _ := newCartService(map[uuid.UUID]service.Price{
		productA: {UnitAmountCents: 10000},
	})

	ctx := context.Background()
	if _, err := svc.AddItem(ctx, "cart-1", productA); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	cart, err := svc.DecrementItem(ctx, "cart-1", productA)
	if err != nil {
		t.Fatalf("DecrementItem: %v", err)
	}
	if cart.Items[0].Quantity != 1 {
		t.Fatalf("quantity expected 1 got %d", cart.Items[0].Quantity)
	}
	if cart.Items[0].TotalCents != 10000 || cart.TotalCents != 10000 {
		t.Fatalf("totals mismatch: %+v", cart)
	}
}

func TestCartService_SetItemQuantity(t *testing.T) {
	productA := uuid.New()
	svc, _ := newCartService(map[uuid.UUID]service.Price{
		productA: {UnitAmountCents: 5000},
	})

	ctx := context.Background()
	if _, err := svc.AddItem(ctx, "cart-1", productA); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	cart, err := svc.SetItemQuantity(ctx, "cart-1", productA, 7)
	if err != nil {
		t.Fatalf("SetItemQuantity: %v", err)
	}
	if cart.Items[0].Quantity != 7 || cart.Items[0].TotalCents != 35000 {
		t.Fatalf("line mismatch: %+v", cart.Items[0])
	}

	if _, err := svc.SetItemQuantity(ctx, "cart-1", productA, 0); !errors.Is(err, service.ErrQuantityInvalid) {
		t.Fatalf("expected ErrQuantityInvalid got %v", err)
	}
}

func TestCartService_MissingLine(t *testing.T) {
	productA := uuid.New()
	svc, _ := newCartService(map[uuid.UUID]service.Price{
		productA: {UnitAmountCents: 5000},
	})

	ctx := context.Background()
	if _, err := svc.IncrementItem(ctx, "cart-1", productA); !errors.Is(err, service.ErrCartItemNotFound) {
		t.Fatalf("IncrementItem: expected ErrCartItemNotFound got %v", err)
	}
	if _, err := svc.RemoveItem(ctx, "cart-1", productA); !errors.Is(err, service.ErrCartItemNotFound) {
		t.Fatalf("RemoveItem: expected ErrCartItemNotFound got %v", err)
	}
}

func TestCartService_Clear(t *testing.T) {
	productA := uuid.New()
	svc, store := newCartService(map[uuid.UUID]service.Price{
		productA: {UnitAmountCents: 5000},
	})

	ctx := context.Background()
	if _, err := svc.AddItem(ctx, "cart-1", productA); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := svc.Clear(ctx, "cart-1"); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	saved, err := store.Get(ctx, "cart-1")
	if err != nil || saved != nil {
		t.Fatalf("cart should be gone: %v %v", saved, err)
	}

	// пустая корзина после очистки — нулевой итог
	cart, err := svc.Get(ctx, "cart-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(cart.Items) != 0 || cart.TotalCents != 0 {
		t.Fatalf("expected empty cart got %+v", cart)
	}
}

func TestCartService_Merge_AdoptsGuestCart(t *testing.T) {
	productA, productB := uuid.New(), uuid.New()
	prices := map[uuid.UUID]service.Price{
		productA: {UnitAmountCents: 10000},
		productB: {UnitAmountCents: 5000},
	}
	svc, store := newCartService(prices)
	ctx := context.Background()

	// пользователь положил A до повышения цены
	if _, err := svc.AddItem(ctx, "user-1", productA); err != nil {
		t.Fatalf("AddItem user: %v", err)
	}
	prices[productA] = service.Price{UnitAmountCents: 12000}

	// гость набрал A и B уже по новой цене
	if _, err := svc.AddItem(ctx, "guest-1", productA); err != nil {
		t.Fatalf("AddItem guest A: %v", err)
	}
	if _, err := svc.AddItem(ctx, "guest-1", productB); err != nil {
		t.Fatalf("AddItem guest B: %v", err)
	}

	cart, err := svc.Merge(ctx, "guest-1", "user-1")
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if len(cart.Items) != 2 {
		t.Fatalf("expected 2 lines got %d", len(cart.Items))
	}

	// общий товар сложен по количеству, снапшот цены остался от корзины пользователя
	lineA := cart.Items[0]
	if lineA.ProductID != productA || lineA.Quantity != 2 || lineA.UnitAmountCents != 10000 || lineA.TotalCents != 20000 {
		t.Fatalf("line A mismatch: %+v", lineA)
	}
	if cart.TotalCents != 25000 {
		t.Fatalf("cart total expected 25000 got %d", cart.TotalCents)
	}

	// гостевая корзина удалена
	if guest, _ := store.Get(ctx, "guest-1"); guest != nil {
		t.Fatalf("guest cart should be gone, got %+v", guest)
	}

	// повторный merge уже пустого источника ничего не меняет
	cart, err = svc.Merge(ctx, "guest-1", "user-1")
	if err != nil || cart.TotalCents != 25000 {
		t.Fatalf("re-merge: total=%d err=%v", cart.TotalCents, err)
	}
}
