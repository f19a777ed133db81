package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/acarder/cardshop/internal/hash"
	"github.com/acarder/cardshop/internal/models"
	"github.com/acarder/cardshop/internal/repo"
)

func newTestStore(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.Transaction{},
		&models.GlobalSettings{},
		&models.Coupon{},
	)
	if err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return repo.NewGormRepo(db)
}

func seedUser(t *testing.T, store *repo.GormRepo, username, password string, balance int64) *models.User {
	t.Helper()

	pwHash, err := hash.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		Username:      username,
		Phone:         "9999",
		PasswordHash:  pwHash,
		Role:          models.RoleUser,
		WalletBalance: balance,
	}
	require.NoError(t, store.SaveUser(context.Background(), user))
	return user
}

func seedProduct(t *testing.T, store *repo.GormRepo, name string, price int64) *models.Product {
	t.Helper()

	product := &models.Product{
		Name:     name,
		Price:    price,
		Category: models.CategoryGiftCard,
		Stock:    10,
	}
	require.NoError(t, store.SaveProduct(context.Background(), product))
	return product
}
