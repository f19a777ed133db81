// Package repo is the record store behind the storefront: six collections
// (users, products, orders, transactions, settings, coupons) with uniform
// get-all / upsert semantics, plus the wallet mutation that keeps the
// transaction ledger alongside the balance field.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/acarder/cardshop/internal/models"
)

// Store is the persistence contract consumed by the service layer. Tests swap
// in an in-memory sqlite backend without touching call sites.
type Store interface {
	GetUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	SaveUser(ctx context.Context, user *models.User) error
	UpdateUserWallet(ctx context.Context, userID string, amount int64, description, txnType string) error
	LedgerSum(ctx context.Context, userID string) (int64, error)

	GetProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	SaveProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id string) error

	GetOrders(ctx context.Context) ([]models.Order, error)
	GetOrdersByUser(ctx context.Context, userID string) ([]models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	CreateOrder(ctx context.Context, userID string, product *models.Product) (*models.Order, error)
	SaveOrder(ctx context.Context, order *models.Order) error

	GetTransactions(ctx context.Context) ([]models.Transaction, error)
	GetTransactionsByUser(ctx context.Context, userID string) ([]models.Transaction, error)

	GetSettings(ctx context.Context) (*models.GlobalSettings, error)
	SaveSettings(ctx context.Context, settings *models.GlobalSettings) error

	GetCoupons(ctx context.Context) ([]models.Coupon, error)
	SaveCoupon(ctx context.Context, coupon *models.Coupon) error
	FindActiveCoupon(ctx context.Context, code string) (*models.Coupon, error)
}

type GormRepo struct {
	DB *gorm.DB
}

func NewGormRepo(db *gorm.DB) *GormRepo {
	return &GormRepo{DB: db}
}

var _ Store = (*GormRepo)(nil)
