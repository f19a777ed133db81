package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/acarder/cardshop/internal/authz"
	"github.com/acarder/cardshop/internal/logging"
	"github.com/acarder/cardshop/internal/models"
	"github.com/acarder/cardshop/internal/repo"
)

type AdminService struct {
	Store repo.Store
}

// SetRole escalates or demotes a user. Only a super_admin may do this, never
// against another super_admin, and never to grant super_admin.
func (s *AdminService) SetRole(ctx context.Context, actorRole, targetID, newRole string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "admin.set_role", "target_id", targetID)

	if newRole != models.RoleUser && newRole != models.RoleAdmin {
		return nil, fmt.Errorf("%w: role must be user or admin", ErrValidation)
	}

	target, err := s.Store.GetUser(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !authz.Can(actorRole, target.Role, authz.ActionChangeRole) {
		l.Warn("set_role_denied", "status", 403, "actor_role", actorRole, "target_role", target.Role)
		return nil, ErrForbidden
	}

	target.Role = newRole
	if err := s.Store.SaveUser(ctx, target); err != nil {
		return nil, err
	}
	l.Info("set_role_success", "role", newRole)
	return target, nil
}

func (s *AdminService) SetBanned(ctx context.Context, actorRole, targetID string, banned bool) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "admin.set_banned", "target_id", targetID)

	target, err := s.Store.GetUser(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !authz.Can(actorRole, target.Role, authz.ActionBanUser) {
		l.Warn("set_banned_denied", "status", 403, "actor_role", actorRole, "target_role", target.Role)
		return nil, ErrForbidden
	}

	target.IsBanned = banned
	if err := s.Store.SaveUser(ctx, target); err != nil {
		return nil, err
	}
	l.Info("set_banned_success", "banned", banned)
	return target, nil
}

func (s *AdminService) ListUsers(ctx context.Context, actorRole string) ([]models.User, error) {
	if !authz.Can(actorRole, "", authz.ActionViewAllUsers) {
		return nil, ErrForbidden
	}
	return s.Store.GetUsers(ctx)
}

// UpdateSettings overwrites the singleton payment-instruction record.
func (s *AdminService) UpdateSettings(ctx context.Context, actorRole string, settings *models.GlobalSettings) error {
	if !authz.Can(actorRole, "", authz.ActionManageSettings) {
		return ErrForbidden
	}
	return s.Store.SaveSettings(ctx, settings)
}

// LedgerDrift reports the difference between a user's cached wallet balance
// and the sum of their ledger. Nothing reconciles the two automatically; this
// exists so the admin console can surface drift.
func (s *AdminService) LedgerDrift(ctx context.Context, actorRole, userID string) (int64, error) {
	if !authz.Can(actorRole, "", authz.ActionViewAllUsers) {
		return 0, ErrForbidden
	}
	user, err := s.Store.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	sum, err := s.Store.LedgerSum(ctx, userID)
	if err != nil {
		return 0, err
	}
	return user.WalletBalance - sum, nil
}
