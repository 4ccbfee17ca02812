package repository

import (
	"context"
	"errors"

	"shop-service/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderItemRepo interface {
	Create(ctx context.Context, item *models.OrderItem) error
	BulkCreate(ctx context.Context, items []models.OrderItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.OrderItem, error)
	GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error)
	UpdateLine(ctx context.Context, id uuid.UUID, productID uuid.UUID, quantity int32, unitAmountCents, totalCents int64) error
	SumByOrder(ctx context.Context, orderID uuid.UUID) (totalCents int64, err error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteByOrderID(ctx context.Context, orderID uuid.UUID) (int64, error)
}

type orderItemRepo struct{ db *gorm.DB }

func NewOrderItemRepo(db *gorm.DB) OrderItemRepo { return &orderItemRepo{db: db} }

func (r *orderItemRepo) Create(ctx context.Context, item *models.OrderItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *orderItemRepo) BulkCreate(ctx context.Context, items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *orderItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.OrderItem, error) {
	var item models.OrderItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *orderItemRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error) {
	var rows []models.OrderItem
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("created_at ASC").Find(&rows).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return rows, err
}

func (r *orderItemRepo) UpdateLine(ctx context.Context, id uuid.UUID, productID uuid.UUID, quantity int32, unitAmountCents, totalCents int64) error {
	return r.db.WithContext(ctx).Model(&models.OrderItem{}).Where("id = ?", id).Updates(map[string]any{
		"product_id":        productID,
		"quantity":          quantity,
		"unit_amount_cents": unitAmountCents,
		"total_cents":       totalCents,
	}).Error
}

func (r *orderItemRepo) SumByOrder(ctx context.Context, orderID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.OrderItem{}).
		Select("COALESCE(SUM(total_cents),0)").Where("order_id = ?", orderID).Scan(&total).Error
	return total, err
}

func (r *orderItemRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&models.OrderItem{}, "id = ?", id)
	return tx.RowsAffected > 0, tx.Error
}

func (r *orderItemRepo) DeleteByOrderID(ctx context.Context, orderID uuid.UUID) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&models.OrderItem{})
	return tx.RowsAffected, tx.Error
}
