package repository

import (
	"context"
	"errors"
	"strings"

	"shop-service/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BrandListFilter struct {
	Query      string
	OnlyActive *bool
	Limit      int
	Offset     int
}

type BrandRepo interface {
	Create(ctx context.Context, b *models.Brand) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Brand, error)
	GetBySlug(ctx context.Context, slug string) (*models.Brand, error)
	List(ctx context.Context, f BrandListFilter) ([]models.Brand, int64, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	BulkDelete(ctx context.Context, ids []uuid.UUID) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type brandRepo struct{ db *gorm.DB }

func NewBrandRepo(db *gorm.DB) BrandRepo { return &brandRepo{db: db} }

func (r *brandRepo) Create(ctx context.Context, b *models.Brand) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *brandRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.Brand{}).Where("id = ?", id).Updates(fields).Error
}

func (r *brandRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Brand, error) {
	var b models.Brand
	err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &b, err
}

func (r *brandRepo) GetBySlug(ctx context.Context, slug string) (*models.Brand, error) {
	var b models.Brand
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &b, err
}

func (r *brandRepo) List(ctx context.Context, f BrandListFilter) ([]models.Brand, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Brand{})

	if f.OnlyActive != nil {
		q = q.Where("is_active = ?", *f.OnlyActive)
	}
	if s := strings.TrimSpace(f.Query); s != "" {
		q = q.Where("lower(name) LIKE lower(?) OR lower(slug) LIKE lower(?)", "%"+s+"%", "%"+s+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Limit <= 0 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	var list []models.Brand
	if err := q.Order("name ASC").Limit(f.Limit).Offset(f.Offset).Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *brandRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&models.Brand{}, "id = ?", id)
	return tx.RowsAffected > 0, tx.Error
}

func (r *brandRepo) BulkDelete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tx := r.db.WithContext(ctx).Delete(&models.Brand{}, "id IN ?", ids)
	return tx.RowsAffected, tx.Error
}

func (r *brandRepo) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&models.Brand{}).Count(&cnt).Error
	return cnt, err
}
