package services

import (
	"fmt"
	"log"
	"storefront/internal/models"
	"storefront/internal/repository"
	"strings"
)

// PersistenceError marks a storage failure in a known step of the commit
// protocol. The underlying message is safe to surface to the caller; Step is
// for server-side logs only.
type PersistenceError struct {
	Step string
	Err  error
}

func (e *PersistenceError) Error() string {
	return e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

var validOrderStatuses = map[string]bool{
	models.OrderPending:    true,
	models.OrderProcessing: true,
	models.OrderShipped:    true,
	models.OrderDelivered:  true,
	models.OrderCancelled:  true,
}

var validPaymentStatuses = map[string]bool{
	models.PaymentPending:              true,
	models.PaymentAwaitingVerification: true,
	models.PaymentVerified:             true,
}

type OrderService interface {
	PlaceOrder(sub *models.OrderSubmission) (*models.Order, error)
	GetOrderByID(id string) (*models.Order, []models.OrderItem, error)
	GetAllOrders() ([]models.Order, error)
	UpdateOrderStatus(id string, status string) error
	UpdatePaymentStatus(id string, status string) error
}

type orderService struct {
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	couponRepo    repository.CouponRepository
}

func NewOrderService(orderRepo repository.OrderRepository, orderItemRepo repository.OrderItemRepository, couponRepo repository.CouponRepository) OrderService {
	return &orderService{orderRepo: orderRepo, orderItemRepo: orderItemRepo, couponRepo: couponRepo}
}

// PlaceOrder runs the commit protocol for a submission that already passed
// validation and the pricing check:
//
//  1. insert the order header (identifier and order number are generated by
//     the repository, never taken from the client)
//  2. if a coupon was used, bump its usage counter — best effort, an
//     uncounted coupon use is acceptable, a lost order is not
//  3. insert all line items; if that fails, delete the just-created header so
//     no empty order is left behind
//
// The underlying store gives us no cross-table transaction through the
// repository seam, hence the compensating delete in step 3.
func (s *orderService) PlaceOrder(sub *models.OrderSubmission) (*models.Order, error) {
	order := &models.Order{
		CustomerName:    sub.CustomerName,
		CustomerPhone:   sub.CustomerPhone,
		CustomerEmail:   strings.TrimSpace(sub.CustomerEmail),
		ShippingAddress: sub.ShippingAddress,
		City:            sub.City,
		Area:            sub.Area,
		Notes:           sub.Notes,
		PaymentMethod:   sub.PaymentMethod,
		PaymentStatus:   derivePaymentStatus(sub.PaymentMethod),
		OrderStatus:     models.OrderPending,
		TransactionID:   sub.TransactionID,
		CouponCode:      sub.CouponCode,
		Subtotal:        sub.Subtotal,
		Discount:        sub.Discount,
		ShippingCost:    sub.ShippingCost,
		Total:           sub.Total,
	}

	if err := s.orderRepo.Create(order); err != nil {
		log.Printf("order insert failed for customer %s: %v", sub.CustomerPhone, err)
		return nil, &PersistenceError{Step: "order", Err: err}
	}

	if sub.CouponCode != "" {
		if err := s.couponRepo.IncrementUsage(sub.CouponCode); err != nil {
			log.Printf("coupon usage increment failed for %q on order %s: %v", sub.CouponCode, order.OrderNumber, err)
		}
	}

	items := make([]models.OrderItem, 0, len(sub.Items))
	for _, line := range sub.Items {
		price := line.Price
		if line.SalePrice != nil {
			price = *line.SalePrice
		}
		items = append(items, models.OrderItem{
			OrderID:     order.ID,
			ProductID:   line.ID,
			ProductName: line.NameBN,
			Quantity:    line.Quantity,
			Price:       price,
		})
	}

	if err := s.orderItemRepo.CreateBatch(items); err != nil {
		log.Printf("order items insert failed for order %s: %v", order.OrderNumber, err)
		// An order whose items failed must not stay visible to the back office
		if delErr := s.orderRepo.Delete(order.ID); delErr != nil {
			log.Printf("compensating delete failed for order %s: %v", order.OrderNumber, delErr)
		}
		return nil, &PersistenceError{Step: "order_items", Err: err}
	}

	return order, nil
}

func (s *orderService) GetOrderByID(id string) (*models.Order, []models.OrderItem, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.orderItemRepo.GetByOrderID(id)
	if err != nil {
		return nil, nil, err
	}
	return order, items, nil
}

func (s *orderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

func (s *orderService) UpdateOrderStatus(id string, status string) error {
	if !validOrderStatuses[status] {
		return fmt.Errorf("invalid order status: %s", status)
	}
	return s.orderRepo.UpdateStatus(id, status)
}

// UpdatePaymentStatus is how the back office marks a submitted transaction
// reference as verified (or resets it). The intake pipeline only ever derives
// the initial status.
func (s *orderService) UpdatePaymentStatus(id string, status string) error {
	if !validPaymentStatuses[status] {
		return fmt.Errorf("invalid payment status: %s", status)
	}
	return s.orderRepo.UpdatePaymentStatus(id, status)
}

// Cash on delivery is payable on arrival; every other method needs a manual
// check of the submitted transaction reference.
func derivePaymentStatus(paymentMethod string) string {
	if paymentMethod == models.PaymentMethodCOD {
		return models.PaymentPending
	}
	return models.PaymentAwaitingVerification
}
