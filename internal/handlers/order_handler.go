package handlers

import (
	"errors"
	"log"
	"net/http"
	"storefront/internal/models"
	"storefront/internal/services"
	"storefront/internal/validation"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// CreateOrder handles POST /api/orders — the public order intake. The
// pipeline is strict: decode, validate the schema, reconcile the submitted
// totals, then commit. Nothing is written before the first two checks pass.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var sub models.OrderSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := validation.ValidateOrderSubmission(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.ReconcileTotal(sub.Subtotal, sub.Discount, sub.ShippingCost, sub.Total); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orderService.PlaceOrder(&sub)
	if err != nil {
		var perr *services.PersistenceError
		if errors.As(err, &perr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": perr.Error()})
			return
		}
		log.Printf("unexpected error placing order: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orderId":     order.ID,
		"orderNumber": order.OrderNumber,
	})
}
