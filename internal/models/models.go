package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string    `gorm:"type:text;not null"`
	Email        string    `gorm:"type:text;not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:text;not null"`
	IsAdmin      bool      `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	Orders []Order `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (User) TableName() string { return "users" }

type Category struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name     string    `gorm:"type:text;not null"`
	Slug     string    `gorm:"type:text;not null;uniqueIndex"`
	Image    string    `gorm:"type:text"`
	IsActive bool      `gorm:"not null;default:true;index"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`
}

func (Category) TableName() string { return "categories" }

type Brand struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name     string    `gorm:"type:text;not null"`
	Slug     string    `gorm:"type:text;not null;uniqueIndex"`
	Image    string    `gorm:"type:text"`
	IsActive bool      `gorm:"not null;default:true;index"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`
}

func (Brand) TableName() string { return "brands" }

type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	BrandID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:text;not null"`
	Slug        string    `gorm:"type:text;not null;uniqueIndex"`
	Images      []string  `gorm:"serializer:json;type:jsonb"`
	Description string    `gorm:"type:text"`
	PriceCents  int64     `gorm:"not null;default:0"`
	IsActive    bool      `gorm:"not null;default:true;index"`
	IsFeatured  bool      `gorm:"not null;default:false"`
	OnSale      bool      `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null;default:now();index"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	Category Category `gorm:"foreignKey:CategoryID"`
	Brand    Brand    `gorm:"foreignKey:BrandID"`
}

func (Product) TableName() string { return "products" }

type PaymentMethod string

const (
	PaymentMethodStripe PaymentMethod = "stripe"
	PaymentMethodCOD    PaymentMethod = "cod"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// Статус заказа — строковый тип, графа переходов нет (любой -> любой)
type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type Order struct {
	ID                  uuid.UUID     `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID              uuid.UUID     `gorm:"type:uuid;not null;index"`
	GrandTotalCents     int64         `gorm:"not null;default:0"`
	PaymentMethod       PaymentMethod `gorm:"type:text;not null;default:'cod'"`
	PaymentStatus       PaymentStatus `gorm:"type:text;not null;default:'pending';index"`
	Status              OrderStatus   `gorm:"type:text;not null;default:'new';index"`
	CurrencyCode        string        `gorm:"type:char(3);not null;default:'LKR'"`
	ShippingAmountCents int64         `gorm:"not null;default:0"`
	ShippingMethod      string        `gorm:"type:text"`
	Notes               string        `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null;default:now();index"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	Items   []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"` // каскад на позиции
	Address *Address    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (Order) TableName() string { return "orders" }

type OrderItem struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID         uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:ux_order_items_order_product"`
	ProductID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_order_items_order_product"`
	Quantity        int32     `gorm:"type:int;not null"` // CHECK quantity >= 1 в миграции
	UnitAmountCents int64     `gorm:"not null"`          // снапшот цены товара на момент выбора
	TotalCents      int64     `gorm:"not null"`          // unit_amount_cents * quantity, хранится

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`
}

func (OrderItem) TableName() string { return "order_items" }

type Address struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	FirstName     string    `gorm:"type:text;not null"`
	LastName      string    `gorm:"type:text;not null"`
	Phone         string    `gorm:"type:text"`
	StreetAddress string    `gorm:"type:text;not null"`
	City          string    `gorm:"type:text;not null"`
	State         string    `gorm:"type:text"`
	ZipCode       string    `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`
}

func (Address) TableName() string { return "addresses" }

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusNew, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed:
		return true
	}
	return false
}

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodStripe, PaymentMethodCOD:
		return true
	}
	return false
}
