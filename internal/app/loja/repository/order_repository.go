package repository

import (
	"context"
	"errors"
	"fmt"

	"lojamoz/internal/app/loja/entity"

	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates the GORM-backed order repository.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// CreateWithItems writes the order header and all items inside a single
// transaction. Items carry the generated order id on return.
func (r *orderRepository) CreateWithItems(ctx context.Context, order *entity.Order) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := order.Items
		order.Items = nil
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		order.Items = items
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create order: %w", translateError(err))
	}
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id uint) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &order, nil
}

func (r *orderRepository) GetByUserID(ctx context.Context, userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("usuario_id = ?", userID).
		Order("data_pedido DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list user orders: %w", err)
	}
	return orders, nil
}

func (r *orderRepository) ListAll(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("data_pedido DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, order *entity.Order) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Order{}).
		Where("id = ?", order.ID).
		Update("status", order.Status)
	if result.Error != nil {
		return fmt.Errorf("failed to update order status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Order{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

func (r *orderRepository) CountByStatus(ctx context.Context, status entity.OrderStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Order{}).
		Where("status = ?", status).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count orders by status: %w", err)
	}
	return count, nil
}

// SumTotalByStatuses sums order totals across the given statuses. An
// empty table yields zero, not NULL.
func (r *orderRepository) SumTotalByStatuses(ctx context.Context, statuses []entity.OrderStatus) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&entity.Order{}).
		Where("status IN ?", statuses).
		Select("COALESCE(SUM(total), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum order totals: %w", err)
	}
	return total, nil
}

func (r *orderRepository) GetRecent(ctx context.Context, limit int) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.WithContext(ctx).
		Order("data_pedido DESC").
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent orders: %w", err)
	}
	return orders, nil
}
