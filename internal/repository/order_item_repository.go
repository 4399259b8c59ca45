package repository

import (
	"storefront/internal/models"

	"gorm.io/gorm"
)

type OrderItemRepository interface {
	CreateBatch(items []models.OrderItem) error
	GetByOrderID(orderID string) ([]models.OrderItem, error)
}

type orderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) OrderItemRepository {
	return &orderItemRepository{db: db}
}

// CreateBatch inserts all line items of one order in a single statement, so
// either every line lands or none do.
func (r *orderItemRepository) CreateBatch(items []models.OrderItem) error {
	return r.db.Create(&items).Error
}

func (r *orderItemRepository) GetByOrderID(orderID string) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.db.Where("order_id = ?", orderID).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
