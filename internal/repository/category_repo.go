package repository

import (
	"context"
	"errors"
	"strings"

	"shop-service/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryListFilter struct {
	Query      string
	OnlyActive *bool
	Limit      int
	Offset     int
}

type CategoryRepo interface {
	Create(ctx context.Context, c *models.Category) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	List(ctx context.Context, f CategoryListFilter) ([]models.Category, int64, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	BulkDelete(ctx context.Context, ids []uuid.UUID) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type categoryRepo struct{ db *gorm.DB }

func NewCategoryRepo(db *gorm.DB) CategoryRepo { return &categoryRepo{db: db} }

func (r *categoryRepo) Create(ctx context.Context, c *models.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoryRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Updates(fields).Error
}

func (r *categoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var c models.Category
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &c, err
}

func (r *categoryRepo) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var c models.Category
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &c, err
}

func (r *categoryRepo) List(ctx context.Context, f CategoryListFilter) ([]models.Category, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Category{})

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

	var list []models.Category
	if err := q.Order("name ASC").Limit(f.Limit).Offset(f.Offset).Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *categoryRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id)
	return tx.RowsAffected > 0, tx.Error
}

func (r *categoryRepo) BulkDelete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tx := r.db.WithContext(ctx).Delete(&models.Category{}, "id IN ?", ids)
	return tx.RowsAffected, tx.Error
}

func (r *categoryRepo) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&models.Category{}).Count(&cnt).Error
	return cnt, err
}
