package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/acarder/cardshop/internal/models"
)

const settingsRowID = 1

// GetSettings never reports "not found": an absent row yields the zero value.
func (r *GormRepo) GetSettings(ctx context.Context) (*models.GlobalSettings, error) {
	var settings models.GlobalSettings
	err := r.DB.WithContext(ctx).Where("id = ?", settingsRowID).First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.GlobalSettings{ID: settingsRowID}, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (r *GormRepo) SaveSettings(ctx context.Context, settings *models.GlobalSettings) error {
	settings.ID = settingsRowID
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(settings).Error
}
