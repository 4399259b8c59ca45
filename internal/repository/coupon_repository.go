package repository

import (
	"storefront/internal/models"

	"gorm.io/gorm"
)

type CouponRepository interface {
	GetByCode(code string) (*models.Coupon, error)
	IncrementUsage(code string) error
}

type couponRepository struct {
	db *gorm.DB
}

func NewCouponRepository(db *gorm.DB) CouponRepository {
	return &couponRepository{db: db}
}

func (r *couponRepository) GetByCode(code string) (*models.Coupon, error) {
	var coupon models.Coupon
	err := r.db.Where("code = ?", code).First(&coupon).Error
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

// IncrementUsage bumps used_count with a single server-side UPDATE
// expression. Concurrent checkouts must never lose an increment, so this is
// never done as a read followed by a write in the application.
func (r *couponRepository) IncrementUsage(code string) error {
	result := r.db.Model(&models.Coupon{}).
		Where("code = ?", code).
		UpdateColumn("used_count", gorm.Expr("used_count + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
