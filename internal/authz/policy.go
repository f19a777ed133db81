// Package authz is the single place where role-based capability decisions
// live. Handlers and services ask Can instead of comparing role strings.
package authz

import (
	"github.com/acarder/cardshop/internal/models"
)

type Action string

const (
	ActionChangeRole     Action = "change_role"
	ActionBanUser        Action = "ban_user"
	ActionAdjustWallet   Action = "adjust_wallet"
	ActionApproveOrder   Action = "approve_order"
	ActionManageProducts Action = "manage_products"
	ActionManageCoupons  Action = "manage_coupons"
	ActionManageSettings Action = "manage_settings"
	ActionViewAllUsers   Action = "view_all_users"
)

// Can reports whether an actor with the given role may perform action against
// a target with targetRole. Pass an empty targetRole for actions without a
// target user.
//
// Rules: role and ban changes are super_admin only and never against another
// super_admin; the remaining admin-console actions are open to admin and
// super_admin; plain users hold no administrative capability.
func Can(actorRole string, targetRole string, action Action) bool {
	switch action {
	case ActionChangeRole, ActionBanUser:
		if actorRole != models.RoleSuperAdmin {
			return false
		}
		return targetRole != models.RoleSuperAdmin
	case ActionAdjustWallet, ActionApproveOrder, ActionManageProducts,
		ActionManageCoupons, ActionManageSettings, ActionViewAllUsers:
		return actorRole == models.RoleAdmin || actorRole == models.RoleSuperAdmin
	default:
		return false
	}
}

// IsAdmin mirrors the original UI's isAdmin flag.
func IsAdmin(role string) bool {
	return role == models.RoleAdmin || role == models.RoleSuperAdmin
}
