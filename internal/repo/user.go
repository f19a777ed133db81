package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/acarder/cardshop/internal/logging"
	"github.com/acarder/cardshop/internal/models"
)

func (r *GormRepo) GetUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.DB.WithContext(ctx).Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *GormRepo) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// SaveUser upserts by id: an existing row is replaced in place, a new id is
// appended. Missing ids are assigned here.
func (r *GormRepo) SaveUser(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(user).Error
}

// UpdateUserWallet adds amount (possibly negative) to the user's balance and
// appends a ledger row. The balance is committed before the ledger row, same
// ordering as the original store. An unknown userID is a silent no-op.
//
// The balance field is never recomputed from the ledger, so the two can drift;
// LedgerSum exists to make that drift observable.
func (r *GormRepo) UpdateUserWallet(ctx context.Context, userID string, amount int64, description, txnType string) error {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logging.FromContext(ctx).Warn("wallet_update_skipped", "reason", "user not found", "user_id", userID)
			return nil
		}
		return err
	}

	user.WalletBalance += amount
	if err := r.DB.WithContext(ctx).Save(&user).Error; err != nil {
		return err
	}

	txn := models.Transaction{
		ID:          uuid.NewString(),
		UserID:      userID,
		Type:        txnType,
		Amount:      amount,
		Description: description,
		Date:        time.Now().UTC(),
		Status:      models.TxnStatusSuccess,
	}
	return r.DB.WithContext(ctx).Create(&txn).Error
}

// LedgerSum returns the sum of all transaction amounts for the user.
func (r *GormRepo) LedgerSum(ctx context.Context, userID string) (int64, error) {
	var sum int64
	err := r.DB.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	if err != nil {
		return 0, err
	}
	return sum, nil
}
