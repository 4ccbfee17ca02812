package service

import (
	"context"

	"shop-service/internal/models"
	"shop-service/internal/repository"

	"github.com/google/uuid"
)

// StorefrontFilter — фильтры страницы товаров витрины.
type StorefrontFilter struct {
	CategoryIDs   []uuid.UUID
	BrandIDs      []uuid.UUID
	Featured      bool
	OnSale        bool
	MaxPriceCents *int64
	Sort          repository.ProductSort // latest | price
	Limit         int
	Offset        int
}

type CreateProductInput struct {
	CategoryID  uuid.UUID
	BrandID     uuid.UUID
	Name        string
	Slug        string // пустой — генерируется из имени
	Images      []string
	Description string
	PriceCents  int64
	IsActive    bool
	IsFeatured  bool
	OnSale      bool
}

type UpdateProductInput struct {
	CategoryID  *uuid.UUID
	BrandID     *uuid.UUID
	Name        *string
	Slug        *string
	Images      *[]string
	Description *string
	PriceCents  *int64
	IsActive    *bool
	IsFeatured  *bool
	OnSale      *bool
}

type CreateCategoryInput struct {
	Name     string
	Slug     string
	Image    string
	IsActive bool
}

type UpdateCategoryInput struct {
	Name     *string
	Slug     *string
	Image    *string
	IsActive *bool
}

type CreateBrandInput struct {
	Name     string
	Slug     string
	Image    string
	IsActive bool
}

type UpdateBrandInput struct {
	Name     *string
	Slug     *string
	Image    *string
	IsActive *bool
}

type AdminListFilter struct {
	Query      string
	OnlyActive *bool
	Limit      int
	Offset     int
}

type CatalogService interface {
	// Витрина
	ListProducts(ctx context.Context, f StorefrontFilter) ([]models.Product, int64, error)
	GetProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	ListActiveCategories(ctx context.Context) ([]models.Category, error)
	GetActiveCategory(ctx context.Context, id uuid.UUID) (*models.Category, error)
	ListActiveBrands(ctx context.Context) ([]models.Brand, error)
	GetActiveBrand(ctx context.Context, id uuid.UUID) (*models.Brand, error)

	// Админка: товары
	CreateProduct(ctx context.Context, in CreateProductInput) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, in UpdateProductInput) (*models.Product, error)
	AdminGetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	AdminListProducts(ctx context.Context, f AdminListFilter) ([]models.Product, int64, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	BulkDeleteProducts(ctx context.Context, ids []uuid.UUID) (int64, error)

	// Админка: категории
	CreateCategory(ctx context.Context, in CreateCategoryInput) (*models.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, in UpdateCategoryInput) (*models.Category, error)
	AdminGetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error)
	AdminListCategories(ctx context.Context, f AdminListFilter) ([]models.Category, int64, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	BulkDeleteCategories(ctx context.Context, ids []uuid.UUID) (int64, error)

	// Админка: бренды
	CreateBrand(ctx context.Context, in CreateBrandInput) (*models.Brand, error)
	UpdateBrand(ctx context.Context, id uuid.UUID, in UpdateBrandInput) (*models.Brand, error)
	AdminGetBrand(ctx context.Context, id uuid.UUID) (*models.Brand, error)
	AdminListBrands(ctx context.Context, f AdminListFilter) ([]models.Brand, int64, error)
	DeleteBrand(ctx context.Context, id uuid.UUID) error
	BulkDeleteBrands(ctx context.Context, ids []uuid.UUID) (int64, error)
}
