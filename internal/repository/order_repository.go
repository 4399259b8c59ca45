package repository

import (
	"fmt"
	"storefront/internal/models"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	GetAll() ([]models.Order, error)
	UpdateStatus(id string, status string) error
	UpdatePaymentStatus(id string, status string) error
	Delete(id string) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order header. The identifier and the human-facing order
// number are always generated here; anything the client put in those fields
// is overwritten.
func (r *orderRepository) Create(order *models.Order) error {
	order.ID = uuid.New().String()
	order.OrderNumber = generateOrderNumber()
	return r.db.Create(order).Error
}

func (r *orderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	err := r.db.Where("id = ?", id).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) UpdateStatus(id string, status string) error {
	result := r.db.Model(&models.Order{}).Where("id = ?", id).Update("order_status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *orderRepository) UpdatePaymentStatus(id string, status string) error {
	result := r.db.Model(&models.Order{}).Where("id = ?", id).Update("payment_status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *orderRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Order{}).Error
}

// generateOrderNumber builds a reference like ORD-20250115-3F7A2C. The date
// keeps numbers sortable for the back office, the random suffix keeps them
// unguessable.
func generateOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return fmt.Sprintf("ORD-%s-%s", time.Now().Format("20060102"), suffix)
}
