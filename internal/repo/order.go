package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"

	"github.com/acarder/cardshop/internal/models"
)

func (r *GormRepo) GetOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := r.DB.WithContext(ctx).Order("purchase_date ASC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) GetOrdersByUser(ctx context.Context, userID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("purchase_date DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder opens a pending order, copying the product's name and price so
// later catalog edits never rewrite purchase history.
func (r *GormRepo) CreateOrder(ctx context.Context, userID string, product *models.Product) (*models.Order, error) {
	order := models.Order{
		ID:           uuid.NewString(),
		UserID:       userID,
		ProductID:    product.ID,
		ProductName:  product.Name,
		Price:        product.Price,
		Status:       models.OrderStatusPending,
		PurchaseDate: time.Now().UTC(),
	}
	if err := r.DB.WithContext(ctx).Create(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) SaveOrder(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(order).Error
}
