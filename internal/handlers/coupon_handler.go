package handlers

import (
	"errors"
	"net/http"
	"storefront/internal/services"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	couponService services.CouponService
}

func NewCouponHandler(couponService services.CouponService) *CouponHandler {
	return &CouponHandler{couponService: couponService}
}

// ApplyCoupon handles POST /api/coupons/apply. The storefront calls this
// before checkout to learn the discount for a code.
func (h *CouponHandler) ApplyCoupon(c *gin.Context) {
	var req struct {
		Code     string  `json:"code" binding:"required,max=50"`
		Subtotal float64 `json:"subtotal" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "coupon code and subtotal are required"})
		return
	}

	result, err := h.couponService.ApplyCoupon(req.Code, req.Subtotal)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCouponNotFound),
			errors.Is(err, services.ErrCouponInactive),
			errors.Is(err, services.ErrCouponExpired),
			errors.Is(err, services.ErrCouponMinOrder),
			errors.Is(err, services.ErrCouponExhausted):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
