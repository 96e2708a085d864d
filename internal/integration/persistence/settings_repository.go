// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/integration/persistence/model"
)

const (
	settingKeyExchangeRate = "exchange_rate"
	// defaultExchangeRate is the ARS-per-USD rate used before the user sets one.
	defaultExchangeRate = "1200"
)

// settingsRepository implements the adapter.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository instance.
func NewSettingsRepository(db *gorm.DB) adapter.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// GetExchangeRate returns the user's ARS-per-USD exchange rate, falling back
// to the application default when none is stored.
func (r *settingsRepository) GetExchangeRate(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	var settingModel model.SettingModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND key = ?", userID, settingKeyExchangeRate).
		First(&settingModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return decimal.NewFromString(defaultExchangeRate)
		}
		return decimal.Zero, result.Error
	}

	rate, err := decimal.NewFromString(settingModel.Value)
	if err != nil {
		// Corrupt stored value, fall back rather than break every read
		return decimal.NewFromString(defaultExchangeRate)
	}
	return rate, nil
}

// SetExchangeRate stores the user's ARS-per-USD exchange rate.
func (r *settingsRepository) SetExchangeRate(ctx context.Context, userID uuid.UUID, rate decimal.Decimal) error {
	settingModel := &model.SettingModel{
		UserID:    userID,
		Key:       settingKeyExchangeRate,
		Value:     rate.String(),
		UpdatedAt: time.Now().UTC(),
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(settingModel)
	return result.Error
}
