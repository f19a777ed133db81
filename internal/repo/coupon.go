package repo

import (
	"context"

	"github.com/acarder/cardshop/internal/models"
)

func (r *GormRepo) GetCoupons(ctx context.Context) ([]models.Coupon, error) {
	var coupons []models.Coupon
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&coupons).Error; err != nil {
		return nil, err
	}
	return coupons, nil
}

// SaveCoupon appends; codes are not deduplicated, matching the original
// store. FindActiveCoupon resolves duplicates by taking the first match.
func (r *GormRepo) SaveCoupon(ctx context.Context, coupon *models.Coupon) error {
	return r.DB.WithContext(ctx).Create(coupon).Error
}

func (r *GormRepo) FindActiveCoupon(ctx context.Context, code string) (*models.Coupon, error) {
	var coupon models.Coupon
	err := r.DB.WithContext(ctx).
		Where("code = ? AND is_active = ?", code, true).
		Order("id ASC").
		First(&coupon).Error
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}
