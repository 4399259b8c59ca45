package models

import (
	"time"
)

type Order struct {
	ID              string    `json:"id" gorm:"type:uuid;primaryKey"`
	OrderNumber     string    `json:"order_number" gorm:"unique;not null"`
	CustomerName    string    `json:"customer_name" gorm:"not null"`
	CustomerPhone   string    `json:"customer_phone" gorm:"not null"`
	CustomerEmail   string    `json:"customer_email"`
	ShippingAddress string    `json:"shipping_address" gorm:"not null"`
	City            string    `json:"city" gorm:"not null"`
	Area            string    `json:"area"`
	Notes           string    `json:"notes" gorm:"type:text"`
	PaymentMethod   string    `json:"payment_method" gorm:"not null"`
	PaymentStatus   string    `json:"payment_status" gorm:"default:'pending'"`
	OrderStatus     string    `json:"order_status" gorm:"default:'pending'"`
	TransactionID   string    `json:"transaction_id"`
	CouponCode      string    `json:"coupon_code"`
	Subtotal        float64   `json:"subtotal" gorm:"not null"`
	Discount        float64   `json:"discount"`
	ShippingCost    float64   `json:"shipping_cost"`
	Total           float64   `json:"total" gorm:"not null"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

const (
	PaymentMethodCOD    = "cod"
	PaymentMethodBkash  = "bkash"
	PaymentMethodNagad  = "nagad"
	PaymentMethodRocket = "rocket"
	PaymentMethodBank   = "bank"
)

const (
	PaymentPending              = "pending"
	PaymentAwaitingVerification = "awaiting_verification"
	PaymentVerified             = "verified"
)
