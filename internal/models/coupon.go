package models

import (
	"time"
)

type Coupon struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	Code           string     `json:"code" gorm:"unique;not null"`
	DiscountType   string     `json:"discount_type" gorm:"not null"` // percentage, fixed
	DiscountValue  float64    `json:"discount_value" gorm:"not null"`
	MinOrderAmount float64    `json:"min_order_amount"`
	UsageLimit     *int       `json:"usage_limit"`
	UsedCount      int        `json:"used_count" gorm:"default:0"`
	IsActive       bool       `json:"is_active" gorm:"default:true"`
	ExpiresAt      *time.Time `json:"expires_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)
