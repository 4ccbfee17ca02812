package repository

import (
	"context"
	"errors"
	"strings"

	"shop-service/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductSort string

const (
	ProductSortLatest ProductSort = "latest"
	ProductSortPrice  ProductSort = "price"
)

type ProductListFilter struct {
	CategoryIDs   []uuid.UUID
	BrandIDs      []uuid.UUID
	Featured      bool
	OnSale        bool
	MaxPriceCents *int64
	Query         string // по name/slug
	OnlyActive    *bool
	Sort          ProductSort
	Limit         int
	Offset        int
}

type ProductRepo interface {
	Create(ctx context.Context, p *models.Product) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetBySlug(ctx context.Context, slug string, onlyActive bool) (*models.Product, error)
	List(ctx context.Context, f ProductListFilter) ([]models.Product, int64, error)
	BatchGetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	BulkDelete(ctx context.Context, ids []uuid.UUID) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type productRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) ProductRepo { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *models.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(fields).Error
}

func (r *productRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var p models.Product
	err := r.db.WithContext(ctx).Preload("Category").Preload("Brand").First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *productRepo) GetBySlug(ctx context.Context, slug string, onlyActive bool) (*models.Product, error) {
	q := r.db.WithContext(ctx).Preload("Category").Preload("Brand").Where("slug = ?", slug)
	if onlyActive {
		q = q.Where("is_active = ?", true)
	}

	var p models.Product
	err := q.First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *productRepo) List(ctx context.Context, f ProductListFilter) ([]models.Product, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Product{})

	if f.OnlyActive != nil {
		q = q.Where("is_active = ?", *f.OnlyActive)
	}
	if len(f.CategoryIDs) > 0 {
		q = q.Where("category_id IN ?", f.CategoryIDs)
	}
	if len(f.BrandIDs) > 0 {
		q = q.Where("brand_id IN ?", f.BrandIDs)
	}
	if f.Featured {
		q = q.Where("is_featured = ?", true)
	}
	if f.OnSale {
		q = q.Where("on_sale = ?", true)
	}
	if f.MaxPriceCents != nil {
		q = q.Where("price_cents BETWEEN 0 AND ?", *f.MaxPriceCents)
	}
	if s := strings.TrimSpace(f.Query); s != "" {
		q = q.Where("lower(name) LIKE lower(?) OR lower(slug) LIKE lower(?)", "%"+s+"%", "%"+s+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch f.Sort {
	case ProductSortPrice:
		q = q.Order("price_cents ASC")
	default:
		q = q.Order("created_at DESC")
	}

	if f.Limit <= 0 {
		f.Limit = 9
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	var list []models.Product
	if err := q.Limit(f.Limit).Offset(f.Offset).Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *productRepo) BatchGetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}

	var list []models.Product
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&list).Error
	return list, err
}

func (r *productRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	return tx.RowsAffected > 0, tx.Error
}

func (r *productRepo) BulkDelete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tx := r.db.WithContext(ctx).Delete(&models.Product{}, "id IN ?", ids)
	return tx.RowsAffected, tx.Error
}

func (r *productRepo) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&cnt).Error
	return cnt, err
}
