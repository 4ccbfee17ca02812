package dto

import (
	"time"

	"shop-service/internal/models"
	"shop-service/internal/service"

	"github.com/google/uuid"
)

// --- Auth ---

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}

// --- Catalog ---

type CategoryResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Slug     string    `json:"slug"`
	Image    string    `json:"image,omitempty"`
	IsActive bool      `json:"is_active"`
}

func ToCategoryResponse(c *models.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Slug: c.Slug, Image: c.Image, IsActive: c.IsActive}
}

type BrandResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Slug     string    `json:"slug"`
	Image    string    `json:"image,omitempty"`
	IsActive bool      `json:"is_active"`
}

func ToBrandResponse(b *models.Brand) BrandResponse {
	return BrandResponse{ID: b.ID, Name: b.Name, Slug: b.Slug, Image: b.Image, IsActive: b.IsActive}
}

type ProductResponse struct {
	ID          uuid.UUID `json:"id"`
	CategoryID  uuid.UUID `json:"category_id"`
	BrandID     uuid.UUID `json:"brand_id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Images      []string  `json:"images,omitempty"`
	Description string    `json:"description,omitempty"`
	PriceCents  int64     `json:"price_cents"`
	IsActive    bool      `json:"is_active"`
	IsFeatured  bool      `json:"is_featured"`
	OnSale      bool      `json:"on_sale"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		CategoryID:  p.CategoryID,
		BrandID:     p.BrandID,
		Name:        p.Name,
		Slug:        p.Slug,
		Images:      p.Images,
		Description: p.Description,
		PriceCents:  p.PriceCents,
		IsActive:    p.IsActive,
		IsFeatured:  p.IsFeatured,
		OnSale:      p.OnSale,
		CreatedAt:   p.CreatedAt,
	}
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int64             `json:"total"`
}

type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Total      int64              `json:"total"`
}

type BrandListResponse struct {
	Brands []BrandResponse `json:"brands"`
	Total  int64           `json:"total"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int64          `json:"total"`
}

// --- Cart ---

type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

type SetCartQuantityRequest struct {
	Quantity int32 `json:"quantity" binding:"required"`
}

type CartLineResponse struct {
	ProductID       uuid.UUID `json:"product_id"`
	Name            string    `json:"name"`
	Image           string    `json:"image,omitempty"`
	Quantity        int32     `json:"quantity"`
	UnitAmountCents int64     `json:"unit_amount_cents"`
	TotalCents      int64     `json:"total_cents"`
}

type CartResponse struct {
	Items      []CartLineResponse `json:"items"`
	TotalCents int64              `json:"total_cents"`
}

func ToCartResponse(c *service.Cart) CartResponse {
	items := make([]CartLineResponse, 0, len(c.Items))
	for _, l := range c.Items {
		items = append(items, CartLineResponse{
			ProductID:       l.ProductID,
			Name:            l.Name,
			Image:           l.Image,
			Quantity:        l.Quantity,
			UnitAmountCents: l.UnitAmountCents,
			TotalCents:      l.TotalCents,
		})
	}
	return CartResponse{Items: items, TotalCents: c.TotalCents}
}

// --- Orders ---

type AddressRequest struct {
	FirstName     string `json:"first_name" binding:"required"`
	LastName      string `json:"last_name" binding:"required"`
	Phone         string `json:"phone"`
	StreetAddress string `json:"street_address" binding:"required"`
	City          string `json:"city" binding:"required"`
	State         string `json:"state"`
	ZipCode       string `json:"zip_code"`
}

type CheckoutRequest struct {
	PaymentMethod       string         `json:"payment_method" binding:"required"`
	CurrencyCode        string         `json:"currency_code"`
	ShippingMethod      string         `json:"shipping_method"`
	ShippingAmountCents int64          `json:"shipping_amount_cents"`
	Notes               string         `json:"notes"`
	Address             AddressRequest `json:"address" binding:"required"`
}

type OrderItemResponse struct {
	ID              uuid.UUID `json:"id"`
	ProductID       uuid.UUID `json:"product_id"`
	Quantity        int32     `json:"quantity"`
	UnitAmountCents int64     `json:"unit_amount_cents"`
	TotalCents      int64     `json:"total_cents"`
}

type AddressResponse struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Phone         string `json:"phone,omitempty"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state,omitempty"`
	ZipCode       string `json:"zip_code,omitempty"`
}

type OrderResponse struct {
	ID                  uuid.UUID           `json:"id"`
	UserID              uuid.UUID           `json:"user_id"`
	GrandTotalCents     int64               `json:"grand_total_cents"`
	PaymentMethod       string              `json:"payment_method"`
	PaymentStatus       string              `json:"payment_status"`
	Status              string              `json:"status"`
	CurrencyCode        string              `json:"currency_code"`
	ShippingAmountCents int64               `json:"shipping_amount_cents"`
	ShippingMethod      string              `json:"shipping_method,omitempty"`
	Notes               string              `json:"notes,omitempty"`
	Items               []OrderItemResponse `json:"items"`
	Address             *AddressResponse    `json:"address,omitempty"`
	CreatedAt           time.Time           `json:"created_at"`
}

func ToOrderResponse(o *models.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ID:              it.ID,
			ProductID:       it.ProductID,
			Quantity:        it.Quantity,
			UnitAmountCents: it.UnitAmountCents,
			TotalCents:      it.TotalCents,
		})
	}

	var addr *AddressResponse
	if o.Address != nil {
		addr = &AddressResponse{
			FirstName:     o.Address.FirstName,
			LastName:      o.Address.LastName,
			Phone:         o.Address.Phone,
			StreetAddress: o.Address.StreetAddress,
			City:          o.Address.City,
			State:         o.Address.State,
			ZipCode:       o.Address.ZipCode,
		}
	}

	return OrderResponse{
		ID:                  o.ID,
		UserID:              o.UserID,
		GrandTotalCents:     o.GrandTotalCents,
		PaymentMethod:       string(o.PaymentMethod),
		PaymentStatus:       string(o.PaymentStatus),
		Status:              string(o.Status),
		CurrencyCode:        o.CurrencyCode,
		ShippingAmountCents: o.ShippingAmountCents,
		ShippingMethod:      o.ShippingMethod,
		Notes:               o.Notes,
		Items:               items,
		Address:             addr,
		CreatedAt:           o.CreatedAt,
	}
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int64           `json:"total"`
}

// --- Admin ---

type AddOrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int32     `json:"quantity" binding:"required"`
}

type UpdateOrderItemRequest struct {
	ProductID *uuid.UUID `json:"product_id"`
	Quantity  *int32     `json:"quantity"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

type CreateProductRequest struct {
	CategoryID  uuid.UUID `json:"category_id" binding:"required"`
	BrandID     uuid.UUID `json:"brand_id" binding:"required"`
	Name        string    `json:"name" binding:"required"`
	Slug        string    `json:"slug"`
	Images      []string  `json:"images"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"price_cents"`
	IsActive    bool      `json:"is_active"`
	IsFeatured  bool      `json:"is_featured"`
	OnSale      bool      `json:"on_sale"`
}

type UpdateProductRequest struct {
	CategoryID  *uuid.UUID `json:"category_id"`
	BrandID     *uuid.UUID `json:"brand_id"`
	Name        *string    `json:"name"`
	Slug        *string    `json:"slug"`
	Images      *[]string  `json:"images"`
	Description *string    `json:"description"`
	PriceCents  *int64     `json:"price_cents"`
	IsActive    *bool      `json:"is_active"`
	IsFeatured  *bool      `json:"is_featured"`
	OnSale      *bool      `json:"on_sale"`
}

type CreateCategoryRequest struct {
	Name     string `json:"name" binding:"required"`
	Slug     string `json:"slug"`
	Image    string `json:"image"`
	IsActive bool   `json:"is_active"`
}

type UpdateCategoryRequest struct {
	Name     *string `json:"name"`
	Slug     *string `json:"slug"`
	Image    *string `json:"image"`
	IsActive *bool   `json:"is_active"`
}

type CreateBrandRequest struct {
	Name     string `json:"name" binding:"required"`
	Slug     string `json:"slug"`
	Image    string `json:"image"`
	IsActive bool   `json:"is_active"`
}

type UpdateBrandRequest struct {
	Name     *string `json:"name"`
	Slug     *string `json:"slug"`
	Image    *string `json:"image"`
	IsActive *bool   `json:"is_active"`
}

type UpdateUserRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	IsAdmin *bool   `json:"is_admin"`
}

type BulkDeleteRequest struct {
	IDs []uuid.UUID `json:"ids" binding:"required"`
}

type BulkDeleteResponse struct {
	Deleted int64 `json:"deleted"`
}

type StatsResponse struct {
	NewOrders          int64 `json:"new_orders"`
	ProcessingOrders   int64 `json:"processing_orders"`
	ShippedOrders      int64 `json:"shipped_orders"`
	AvgGrandTotalCents int64 `json:"avg_grand_total_cents"`
}

type BadgesResponse struct {
	Orders     int64 `json:"orders"`
	Products   int64 `json:"products"`
	Categories int64 `json:"categories"`
	Brands     int64 `json:"brands"`
	Users      int64 `json:"users"`
}
