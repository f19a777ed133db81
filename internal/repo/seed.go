package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/acarder/cardshop/internal/hash"
	"github.com/acarder/cardshop/internal/logging"
	"github.com/acarder/cardshop/internal/models"
)

// SeedAdmin holds the fixed super_admin credentials that are re-applied on
// every start.
type SeedAdmin struct {
	Username string
	Phone    string
	Password string
}

const seedAdminID = "admin-1"
const seedAdminBalance = 10000

// Init migrates the schema and seeds initial state. It is idempotent: the
// super_admin credentials are reset on every call (id, balance and creation
// time survive), while settings and the starter catalog are written only when
// their collections are entirely absent.
func (r *GormRepo) Init(ctx context.Context, admin SeedAdmin) error {
	l := logging.FromContext(ctx).With("svc", "repo.init")

	err := r.DB.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.Transaction{},
		&models.GlobalSettings{},
		&models.Coupon{},
	)
	if err != nil {
		return err
	}

	if err := r.seedSuperAdmin(ctx, admin); err != nil {
		return err
	}

	if err := r.seedSettings(ctx); err != nil {
		return err
	}

	if err := r.seedCatalog(ctx); err != nil {
		return err
	}

	l.Info("store_initialized")
	return nil
}

// seedSuperAdmin creates the super_admin on first run and overwrites its
// credentials on every later run, so the account can never be lost. Wallet
// balance and creation time are preserved across resets.
func (r *GormRepo) seedSuperAdmin(ctx context.Context, admin SeedAdmin) error {
	l := logging.FromContext(ctx).With("svc", "repo.init")

	pwHash, err := hash.HashPassword(admin.Password)
	if err != nil {
		return err
	}

	existing, err := r.FindUserByUsername(ctx, admin.Username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	super := models.User{
		ID:            seedAdminID,
		Username:      admin.Username,
		Phone:         admin.Phone,
		PasswordHash:  pwHash,
		Role:          models.RoleSuperAdmin,
		WalletBalance: seedAdminBalance,
		IsBanned:      false,
		CreatedAt:     time.Now().UTC(),
	}
	if existing != nil {
		super.ID = existing.ID
		super.WalletBalance = existing.WalletBalance
		super.CreatedAt = existing.CreatedAt
		l.Info("super_admin_credentials_updated")
	} else {
		l.Info("super_admin_initialized")
	}

	return r.SaveUser(ctx, &super)
}

func (r *GormRepo) seedSettings(ctx context.Context) error {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.GlobalSettings{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return r.SaveSettings(ctx, &models.GlobalSettings{
		UPIID:       "merchant@upi",
		UPIQRURL:    "https://picsum.photos/300/300?grayscale",
		PaymentNote: "Scan and pay. Mention your username in remarks.",
	})
}

func (r *GormRepo) seedCatalog(ctx context.Context) error {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	starter := []models.Product{
		{
			ID:          "p1",
			Name:        "Amazon ₹500 Gift Card",
			Description: "Valid for 1 year. Instant redemption.",
			Price:       500,
			Category:    models.CategoryGiftCard,
			ImageURL:    "https://picsum.photos/400/300?random=1",
			Stock:       10,
			CreatedAt:   now,
		},
		{
			ID:          "p2",
			Name:        "Visa Prepaid ₹1000",
			Description: "Use anywhere Visa is accepted online.",
			Price:       1050,
			Category:    models.CategoryPrepaidCard,
			ImageURL:    "https://picsum.photos/400/300?random=2",
			Stock:       5,
			CreatedAt:   now,
		},
	}
	for i := range starter {
		if err := r.SaveProduct(ctx, &starter[i]); err != nil {
			return err
		}
	}
	return nil
}
