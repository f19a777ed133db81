package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/acarder/cardshop/internal/models"
	"github.com/acarder/cardshop/internal/repo"
)

type CouponService struct {
	Store repo.Store
}

// Quote applies a coupon code to a price at display time. Coupons are flat
// discounts with no expiry or usage cap; nothing is recorded as redeemed.
// The discounted total never drops below zero.
func (s *CouponService) Quote(ctx context.Context, code string, price int64) (total, discount int64, err error) {
	if code == "" {
		return price, 0, nil
	}

	coupon, err := s.Store.FindActiveCoupon(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return price, 0, ErrInvalidCoupon
		}
		return price, 0, err
	}

	discount = coupon.DiscountAmount
	if discount > price {
		discount = price
	}
	return price - discount, discount, nil
}

func (s *CouponService) Create(ctx context.Context, code string, amount int64) (*models.Coupon, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: code required", ErrValidation)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: discount must be positive", ErrValidation)
	}
	coupon := &models.Coupon{
		Code:           code,
		DiscountAmount: amount,
		IsActive:       true,
	}
	if err := s.Store.SaveCoupon(ctx, coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

func (s *CouponService) List(ctx context.Context) ([]models.Coupon, error) {
	return s.Store.GetCoupons(ctx)
}
