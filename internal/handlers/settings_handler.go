package handlers

import (
	"net/http"
	"storefront/internal/models"
	"storefront/internal/repository"
	"strconv"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsRepo repository.SettingsRepository
}

func NewSettingsHandler(settingsRepo repository.SettingsRepository) *SettingsHandler {
	return &SettingsHandler{settingsRepo: settingsRepo}
}

// GetShippingRates handles GET /api/settings/shipping — the flat delivery
// rates the storefront shows at checkout.
func (h *SettingsHandler) GetShippingRates(c *gin.Context) {
	inside, err := h.settingsRepo.GetFloat(models.SettingShippingInsideDhaka)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	outside, err := h.settingsRepo.GetFloat(models.SettingShippingOutsideDhaka)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"inside_dhaka":  inside,
		"outside_dhaka": outside,
	})
}

// UpdateShippingRates handles PUT /api/admin/settings/shipping.
func (h *SettingsHandler) UpdateShippingRates(c *gin.Context) {
	var req struct {
		InsideDhaka  float64 `json:"inside_dhaka" binding:"required,gte=0,lte=10000"`
		OutsideDhaka float64 `json:"outside_dhaka" binding:"required,gte=0,lte=10000"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "both shipping rates are required and must be between 0 and 10000"})
		return
	}

	inside := strconv.FormatFloat(req.InsideDhaka, 'f', -1, 64)
	outside := strconv.FormatFloat(req.OutsideDhaka, 'f', -1, 64)
	if err := h.settingsRepo.Set(models.SettingShippingInsideDhaka, inside); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if err := h.settingsRepo.Set(models.SettingShippingOutsideDhaka, outside); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
