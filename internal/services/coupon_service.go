package services

import (
	"errors"
	"storefront/internal/models"
	"storefront/internal/repository"
	"time"

	"gorm.io/gorm"
)

var (
	ErrCouponNotFound  = errors.New("coupon code is not valid")
	ErrCouponInactive  = errors.New("coupon is no longer active")
	ErrCouponExpired   = errors.New("coupon has expired")
	ErrCouponMinOrder  = errors.New("order subtotal does not meet the coupon minimum")
	ErrCouponExhausted = errors.New("coupon usage limit has been reached")
)

// CouponResult is the discount the storefront may apply for a coupon.
type CouponResult struct {
	Code         string  `json:"code"`
	DiscountType string  `json:"discount_type"`
	Discount     float64 `json:"discount"`
}

type CouponService interface {
	ApplyCoupon(code string, subtotal float64) (*CouponResult, error)
}

type couponService struct {
	couponRepo repository.CouponRepository
}

func NewCouponService(couponRepo repository.CouponRepository) CouponService {
	return &couponService{couponRepo: couponRepo}
}

// ApplyCoupon checks whether the coupon can be used against the given
// subtotal and computes the discount. Usage limits are enforced here, at
// apply time; the commit-time counter increment stays best effort.
func (s *couponService) ApplyCoupon(code string, subtotal float64) (*CouponResult, error) {
	coupon, err := s.couponRepo.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}

	if !coupon.IsActive {
		return nil, ErrCouponInactive
	}
	if coupon.ExpiresAt != nil && time.Now().After(*coupon.ExpiresAt) {
		return nil, ErrCouponExpired
	}
	if subtotal < coupon.MinOrderAmount {
		return nil, ErrCouponMinOrder
	}
	if coupon.UsageLimit != nil && coupon.UsedCount >= *coupon.UsageLimit {
		return nil, ErrCouponExhausted
	}

	discount := coupon.DiscountValue
	if coupon.DiscountType == models.DiscountPercentage {
		discount = subtotal * coupon.DiscountValue / 100
	}
	if discount > subtotal {
		discount = subtotal
	}

	return &CouponResult{
		Code:         coupon.Code,
		DiscountType: coupon.DiscountType,
		Discount:     discount,
	}, nil
}
