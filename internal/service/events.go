package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type OrderItemEvent struct {
	ProductID       uuid.UUID `json:"product_id"`
	Quantity        int32     `json:"quantity"`
	UnitAmountCents int64     `json:"unit_amount_cents"`
	TotalCents      int64     `json:"total_cents"`
}

type OrderPlacedEvent struct {
	OrderID         uuid.UUID        `json:"order_id"`
	UserID          uuid.UUID        `json:"user_id"`
	Items           []OrderItemEvent `json:"items"`
	GrandTotalCents int64            `json:"grand_total_cents"`
	Currency        string           `json:"currency"`
	PaymentMethod   string           `json:"payment_method"`
	CreatedAt       time.Time        `json:"created_at"`
}

type OrderCancelledEvent struct {
	OrderID     uuid.UUID `json:"order_id"`
	UserID      uuid.UUID `json:"user_id"`
	CancelledAt time.Time `json:"cancelled_at"`
}

type EventBus interface {
	PublishOrderPlaced(ctx context.Context, e OrderPlacedEvent) error
	PublishOrderCancelled(ctx context.Context, e OrderCancelledEvent) error
}
