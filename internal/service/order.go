package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/acarder/cardshop/internal/authz"
	"github.com/acarder/cardshop/internal/events"
	"github.com/acarder/cardshop/internal/logging"
	"github.com/acarder/cardshop/internal/models"
	"github.com/acarder/cardshop/internal/repo"
)

// unlockedPlaceholder is substituted when an admin approves an order without
// supplying the card code, so the transition never blocks.
const unlockedPlaceholder = "Unlocked"

type OrderService struct {
	Store    repo.Store
	Coupons  *CouponService
	Producer events.Producer

	// Delay simulates gateway latency before the purchase completes. Fixed
	// wait, no cancellation, cosmetic only.
	Delay time.Duration
}

// Checkout debits the wallet for the coupon-discounted price and opens a
// pending order. The debit lands before the order row, same ordering as the
// original store.
func (s *OrderService) Checkout(ctx context.Context, userID, productID, couponCode string) (*models.Order, error) {
	l := logging.FromContext(ctx).With("svc", "order.checkout", "user_id", userID, "product_id", productID)

	product, err := s.Store.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("checkout_failed", "status", 404, "reason", "product not found")
			return nil, ErrNotFound
		}
		return nil, err
	}

	finalPrice, discount, err := s.Coupons.Quote(ctx, couponCode, product.Price)
	if err != nil {
		if errors.Is(err, ErrInvalidCoupon) {
			l.Warn("checkout_failed", "status", 400, "reason", "invalid coupon", "code", couponCode)
		}
		return nil, err
	}

	user, err := s.Store.GetUser(ctx, userID)
	if err != nil {
		return nil, ErrNotFound
	}
	if user.WalletBalance < finalPrice {
		l.Warn("checkout_failed", "status", 400, "reason", "insufficient balance",
			"balance", user.WalletBalance, "price", finalPrice)
		return nil, ErrInsufficientFunds
	}

	if s.Delay > 0 {
		time.Sleep(s.Delay)
	}

	desc := fmt.Sprintf("Purchase: %s", product.Name)
	if err := s.Store.UpdateUserWallet(ctx, userID, -finalPrice, desc, models.TxnTypePurchase); err != nil {
		l.Error("checkout_failed", "status", 500, "error", err)
		return nil, err
	}

	order, err := s.Store.CreateOrder(ctx, userID, product)
	if err != nil {
		l.Error("checkout_failed", "status", 500, "error", err)
		return nil, err
	}

	s.publish(ctx, order.ID, map[string]any{
		"type":     "order_created",
		"order_id": order.ID,
		"user_id":  userID,
		"price":    finalPrice,
		"discount": discount,
	})
	l.Info("checkout_success", "order_id", order.ID, "price", finalPrice, "discount", discount)
	return order, nil
}

// Approve moves a pending order to approved and attaches the unlocked
// content. Approved and rejected are both terminal.
func (s *OrderService) Approve(ctx context.Context, actorRole, orderID, content string) (*models.Order, error) {
	l := logging.FromContext(ctx).With("svc", "order.approve", "order_id", orderID)

	if !authz.Can(actorRole, "", authz.ActionApproveOrder) {
		l.Warn("approve_denied", "status", 403, "actor_role", actorRole)
		return nil, ErrForbidden
	}

	order, err := s.Store.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if order.Status != models.OrderStatusPending {
		l.Warn("approve_failed", "status", 409, "reason", "order not pending", "order_status", order.Status)
		return nil, ErrOrderClosed
	}

	if content == "" {
		content = unlockedPlaceholder
	}
	order.Status = models.OrderStatusApproved
	order.UnlockedContent = content
	if err := s.Store.SaveOrder(ctx, order); err != nil {
		return nil, err
	}

	s.publish(ctx, order.ID, map[string]any{
		"type":     "order_approved",
		"order_id": order.ID,
		"user_id":  order.UserID,
	})
	l.Info("approve_success")
	return order, nil
}

// Reject is terminal and does not refund; a refund is a separate manual
// wallet adjustment.
func (s *OrderService) Reject(ctx context.Context, actorRole, orderID string) (*models.Order, error) {
	l := logging.FromContext(ctx).With("svc", "order.reject", "order_id", orderID)

	if !authz.Can(actorRole, "", authz.ActionApproveOrder) {
		l.Warn("reject_denied", "status", 403, "actor_role", actorRole)
		return nil, ErrForbidden
	}

	order, err := s.Store.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if order.Status != models.OrderStatusPending {
		l.Warn("reject_failed", "status", 409, "reason", "order not pending", "order_status", order.Status)
		return nil, ErrOrderClosed
	}

	order.Status = models.OrderStatusRejected
	if err := s.Store.SaveOrder(ctx, order); err != nil {
		return nil, err
	}

	s.publish(ctx, order.ID, map[string]any{
		"type":     "order_rejected",
		"order_id": order.ID,
		"user_id":  order.UserID,
	})
	l.Info("reject_success")
	return order, nil
}

func (s *OrderService) ListAll(ctx context.Context) ([]models.Order, error) {
	return s.Store.GetOrders(ctx)
}

func (s *OrderService) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	return s.Store.GetOrdersByUser(ctx, userID)
}

func (s *OrderService) publish(ctx context.Context, key string, event map[string]any) {
	if s.Producer == nil {
		return
	}
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pubCtx, events.TopicOrderEvents, key, event); err != nil {
		logging.FromContext(ctx).Warn("event_publish_failed", "topic", events.TopicOrderEvents, "error", err)
	}
}
