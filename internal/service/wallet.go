package service

import (
	"context"
	"fmt"
	"time"

	"github.com/acarder/cardshop/internal/authz"
	"github.com/acarder/cardshop/internal/events"
	"github.com/acarder/cardshop/internal/logging"
	"github.com/acarder/cardshop/internal/models"
	"github.com/acarder/cardshop/internal/payment"
	"github.com/acarder/cardshop/internal/repo"
)

type WalletService struct {
	Store    repo.Store
	Verifier payment.PaymentVerifier
	Producer events.Producer
}

// Deposit credits the wallet after the payment verifier accepts the claimed
// external transaction. The verifier is a stub in this demo, so in practice
// any non-empty reference succeeds.
func (s *WalletService) Deposit(ctx context.Context, userID string, amount int64, txnID string) error {
	l := logging.FromContext(ctx).With("svc", "wallet.deposit", "user_id", userID)

	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if err := s.Verifier.Verify(ctx, txnID, amount); err != nil {
		l.Warn("deposit_failed", "status", 400, "reason", "verification failed", "error", err)
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if _, err := s.Store.GetUser(ctx, userID); err != nil {
		l.Warn("deposit_failed", "status", 404, "reason", "user not found")
		return ErrNotFound
	}

	desc := fmt.Sprintf("UPI Load: %s", txnID)
	if err := s.Store.UpdateUserWallet(ctx, userID, amount, desc, models.TxnTypeDeposit); err != nil {
		l.Error("deposit_failed", "status", 500, "error", err)
		return err
	}

	s.publish(ctx, userID, map[string]any{
		"type":    "wallet_deposit",
		"user_id": userID,
		"amount":  amount,
	})
	l.Info("deposit_success", "amount", amount)
	return nil
}

// AdminAdjust applies a signed correction to a user's balance. This is the
// only path allowed to drive a balance negative, and the only refund
// mechanism after an order rejection.
func (s *WalletService) AdminAdjust(ctx context.Context, actorRole, userID string, amount int64) error {
	l := logging.FromContext(ctx).With("svc", "wallet.adjust", "user_id", userID)

	if !authz.Can(actorRole, "", authz.ActionAdjustWallet) {
		l.Warn("adjust_denied", "status", 403, "actor_role", actorRole)
		return ErrForbidden
	}
	if amount == 0 {
		return fmt.Errorf("%w: amount must be non-zero", ErrValidation)
	}

	if _, err := s.Store.GetUser(ctx, userID); err != nil {
		l.Warn("adjust_failed", "status", 404, "reason", "user not found")
		return ErrNotFound
	}

	if err := s.Store.UpdateUserWallet(ctx, userID, amount, "Admin Adjustment", models.TxnTypeAdminAdjustment); err != nil {
		l.Error("adjust_failed", "status", 500, "error", err)
		return err
	}

	s.publish(ctx, userID, map[string]any{
		"type":    "wallet_adjusted",
		"user_id": userID,
		"amount":  amount,
	})
	l.Info("adjust_success", "amount", amount)
	return nil
}

func (s *WalletService) Transactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	return s.Store.GetTransactionsByUser(ctx, userID)
}

func (s *WalletService) publish(ctx context.Context, key string, event map[string]any) {
	if s.Producer == nil {
		return
	}
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pubCtx, events.TopicWalletEvents, key, event); err != nil {
		logging.FromContext(ctx).Warn("event_publish_failed", "topic", events.TopicWalletEvents, "error", err)
	}
}
