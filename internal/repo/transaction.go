package repo

import (
	"context"

	"github.com/acarder/cardshop/internal/models"
)

func (r *GormRepo) GetTransactions(ctx context.Context) ([]models.Transaction, error) {
	var txns []models.Transaction
	if err := r.DB.WithContext(ctx).Order("date ASC").Find(&txns).Error; err != nil {
		return nil, err
	}
	return txns, nil
}

func (r *GormRepo) GetTransactionsByUser(ctx context.Context, userID string) ([]models.Transaction, error) {
	var txns []models.Transaction
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&txns).Error
	if err != nil {
		return nil, err
	}
	return txns, nil
}
