package services

import (
	"errors"
	"testing"
	"time"

	"storefront/internal/models"
)

func activeCoupon() *models.Coupon {
	future := time.Now().Add(24 * time.Hour)
	return &models.Coupon{
		Code:           "EID10",
		DiscountType:   models.DiscountPercentage,
		DiscountValue:  10,
		MinOrderAmount: 500,
		IsActive:       true,
		ExpiresAt:      &future,
	}
}

func TestCouponService_ApplyCoupon(t *testing.T) {
	limit := 100
	past := time.Now().Add(-time.Hour)

	tests := []struct {
		name     string
		coupon   *models.Coupon
		code     string
		subtotal float64
		want     float64
		wantErr  error
	}{
		{
			name:     "percentage discount",
			coupon:   activeCoupon(),
			code:     "EID10",
			subtotal: 1000,
			want:     100,
		},
		{
			name: "fixed discount",
			coupon: &models.Coupon{
				Code: "FLAT50", DiscountType: models.DiscountFixed,
				DiscountValue: 50, IsActive: true,
			},
			code:     "FLAT50",
			subtotal: 1000,
			want:     50,
		},
		{
			name: "fixed discount capped at subtotal",
			coupon: &models.Coupon{
				Code: "FLAT500", DiscountType: models.DiscountFixed,
				DiscountValue: 500, IsActive: true,
			},
			code:     "FLAT500",
			subtotal: 300,
			want:     300,
		},
		{
			name:     "unknown code",
			coupon:   activeCoupon(),
			code:     "NOPE",
			subtotal: 1000,
			wantErr:  ErrCouponNotFound,
		},
		{
			name: "inactive",
			coupon: &models.Coupon{
				Code: "EID10", DiscountType: models.DiscountPercentage,
				DiscountValue: 10, IsActive: false,
			},
			code:     "EID10",
			subtotal: 1000,
			wantErr:  ErrCouponInactive,
		},
		{
			name: "expired",
			coupon: &models.Coupon{
				Code: "EID10", DiscountType: models.DiscountPercentage,
				DiscountValue: 10, IsActive: true, ExpiresAt: &past,
			},
			code:     "EID10",
			subtotal: 1000,
			wantErr:  ErrCouponExpired,
		},
		{
			name:     "below minimum order",
			coupon:   activeCoupon(),
			code:     "EID10",
			subtotal: 200,
			wantErr:  ErrCouponMinOrder,
		},
		{
			name: "usage limit reached",
			coupon: &models.Coupon{
				Code: "EID10", DiscountType: models.DiscountPercentage,
				DiscountValue: 10, IsActive: true,
				UsageLimit: &limit, UsedCount: 100,
			},
			code:     "EID10",
			subtotal: 1000,
			wantErr:  ErrCouponExhausted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			couponRepo := newFakeCouponRepo()
			couponRepo.coupon = tt.coupon
			svc := NewCouponService(couponRepo)

			result, err := svc.ApplyCoupon(tt.code, tt.subtotal)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ApplyCoupon() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyCoupon() unexpected error = %v", err)
			}
			if result.Discount != tt.want {
				t.Errorf("ApplyCoupon() discount = %v, want %v", result.Discount, tt.want)
			}
		})
	}
}
