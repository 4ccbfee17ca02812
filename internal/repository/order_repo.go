package repository

import (
	"context"
	"errors"

	"shop-service/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderListFilter struct {
	UserID        *uuid.UUID
	Status        *models.OrderStatus
	PaymentStatus *models.PaymentStatus
	Limit         int
	Offset        int
}

type OrderRepo interface {
	Create(ctx context.Context, o *models.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status models.PaymentStatus) error
	UpdateTotals(ctx context.Context, id uuid.UUID, grandTotalCents int64) error
	List(ctx context.Context, f OrderListFilter) ([]*models.Order, int64, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.OrderStatus) (int64, error)
	AvgGrandTotalCents(ctx context.Context) (int64, error)

	WithTx(ctx context.Context, fn func(txOrders OrderRepo, txItems OrderItemRepo) error) error
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) OrderRepo { return &orderRepo{db: db} }

func (r *orderRepo) Create(ctx context.Context, o *models.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *orderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var ord models.Order
	err := r.db.WithContext(ctx).Preload("Items").Preload("Address").First(&ord, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ord, err
}

func (r *orderRepo) GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*models.Order, error) {
	var ord models.Order
	err := r.db.WithContext(ctx).Preload("Items").Preload("Address").
		First(&ord, "id = ? AND user_id = ?", id, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ord, err
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	return r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).
		Update("status", status).Error
}

func (r *orderRepo) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status models.PaymentStatus) error {
	return r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).
		Update("payment_status", status).Error
}

func (r *orderRepo) UpdateTotals(ctx context.Context, id uuid.UUID, grandTotalCents int64) error {
	return r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).
		Update("grand_total_cents", grandTotalCents).Error
}

func (r *orderRepo) List(ctx context.Context, f OrderListFilter) ([]*models.Order, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Order{})

	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.PaymentStatus != nil {
		q = q.Where("payment_status = ?", *f.PaymentStatus)
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

	var list []*models.Order
	err := q.Order("created_at DESC").Limit(f.Limit).Offset(f.Offset).Preload("Items").Find(&list).Error
	return list, total, err
}

func (r *orderRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	// позиции и адрес удаляются каскадом по FK
	tx := r.db.WithContext(ctx).Delete(&models.Order{}, "id = ?", id)
	return tx.RowsAffected > 0, tx.Error
}

func (r *orderRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Count(&cnt).Error
	return cnt > 0, err
}

func (r *orderRepo) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&models.Order{}).Count(&cnt).Error
	return cnt, err
}

func (r *orderRepo) CountByStatus(ctx context.Context, status models.OrderStatus) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&models.Order{}).Where("status = ?", status).Count(&cnt).Error
	return cnt, err
}

func (r *orderRepo) AvgGrandTotalCents(ctx context.Context) (int64, error) {
	// COALESCE: без заказов среднее равно 0, а не NULL
	var avg int64
	err := r.db.WithContext(ctx).Model(&models.Order{}).
		Select("COALESCE(ROUND(AVG(grand_total_cents)),0)").Scan(&avg).Error
	return avg, err
}

func (r *orderRepo) WithTx(ctx context.Context, fn func(txOrders OrderRepo, txItems OrderItemRepo) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&orderRepo{db: tx}, &orderItemRepo{db: tx})
	})
}
