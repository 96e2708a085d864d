// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
	"github.com/household-ledger/backend/internal/domain/valueobject"
	"github.com/household-ledger/backend/internal/integration/persistence/model"
)

// incomeRepository implements the adapter.IncomeRepository interface.
type incomeRepository struct {
	db *gorm.DB
}

// NewIncomeRepository creates a new income repository instance.
func NewIncomeRepository(db *gorm.DB) adapter.IncomeRepository {
	return &incomeRepository{
		db: db,
	}
}

// FindBase retrieves the user's base income set, ordered by creation time.
func (r *incomeRepository) FindBase(ctx context.Context, userID uuid.UUID) ([]*entity.Income, error) {
	var incomeModels []model.IncomeModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&incomeModels)
	if result.Error != nil {
		return nil, result.Error
	}

	incomes := make([]*entity.Income, len(incomeModels))
	for i, im := range incomeModels {
		incomes[i] = im.ToEntity()
	}
	return incomes, nil
}

// FindOverrides retrieves the override income set for a month, if any.
func (r *incomeRepository) FindOverrides(ctx context.Context, userID uuid.UUID, monthKey valueobject.MonthKey) ([]*entity.Income, error) {
	var overrideModels []model.IncomeOverrideModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND month_key = ?", userID, monthKey.String()).
		Order("created_at").
		Find(&overrideModels)
	if result.Error != nil {
		return nil, result.Error
	}

	incomes := make([]*entity.Income, len(overrideModels))
	for i, om := range overrideModels {
		incomes[i] = om.ToEntity()
	}
	return incomes, nil
}

// SaveOverrides replaces the override income set for a month inside a
// transaction. An empty slice removes the override.
func (r *incomeRepository) SaveOverrides(ctx context.Context, userID uuid.UUID, monthKey valueobject.MonthKey, incomes []*entity.Income) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("user_id = ? AND month_key = ?", userID, monthKey.String()).
			Delete(&model.IncomeOverrideModel{}).Error; err != nil {
			return err
		}

		if len(incomes) == 0 {
			return nil
		}

		overrideModels := make([]*model.IncomeOverrideModel, len(incomes))
		for i, income := range incomes {
			overrideModels[i] = model.IncomeOverrideFromEntity(monthKey.String(), income)
		}
		return tx.Create(overrideModels).Error
	})
}

// Create adds an income to the user's base set.
func (r *incomeRepository) Create(ctx context.Context, income *entity.Income) error {
	incomeModel := model.IncomeFromEntity(income)
	result := r.db.WithContext(ctx).Create(incomeModel)
	return result.Error
}

// Update applies a partial update to an income in the base set.
func (r *incomeRepository) Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, update adapter.IncomeUpdate) error {
	updates := make(map[string]any)
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.Amount != nil {
		updates["amount"] = *update.Amount
	}
	if update.Currency != nil {
		updates["currency"] = string(*update.Currency)
	}
	if update.Responsible != nil {
		updates["responsible"] = *update.Responsible
	}
	if update.Recurring != nil {
		updates["recurring"] = *update.Recurring
	}
	if len(updates) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&model.IncomeModel{}).
		Where("user_id = ? AND id = ?", userID, id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrIncomeNotFound
	}
	return nil
}

// Delete removes an income from the base set.
func (r *incomeRepository) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&model.IncomeModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrIncomeNotFound
	}
	return nil
}

// ClearAll removes the user's base incomes and every override.
func (r *incomeRepository) ClearAll(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.IncomeModel{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&model.IncomeOverrideModel{}).Error
	})
}
