// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
	"github.com/household-ledger/backend/internal/domain/valueobject"
	"github.com/household-ledger/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// FindByMonth retrieves all expenses for a user and ledger period, ordered by
// date descending. Dates are DD/MM/YYYY strings so the ordering is the plain
// string comparison, same as every other reader of this table.
func (r *expenseRepository) FindByMonth(ctx context.Context, userID uuid.UUID, monthKey valueobject.MonthKey) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND month_key = ?", userID, monthKey.String()).
		Order("date DESC, created_at DESC, id DESC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.Expense, len(expenseModels))
	for i, em := range expenseModels {
		expenses[i] = em.ToEntity()
	}
	return expenses, nil
}

// FindAll retrieves every expense for a user, grouped by month key.
func (r *expenseRepository) FindAll(ctx context.Context, userID uuid.UUID) (map[valueobject.MonthKey][]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("month_key DESC, date DESC, created_at DESC, id DESC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	grouped := make(map[valueobject.MonthKey][]*entity.Expense)
	for _, em := range expenseModels {
		monthKey := valueobject.MonthKey(em.MonthKey)
		grouped[monthKey] = append(grouped[monthKey], em.ToEntity())
	}
	return grouped, nil
}

// AddToMonth appends expenses to a ledger period.
func (r *expenseRepository) AddToMonth(ctx context.Context, userID uuid.UUID, monthKey valueobject.MonthKey, expenses []*entity.Expense) error {
	if len(expenses) == 0 {
		return nil
	}

	expenseModels := make([]*model.ExpenseModel, len(expenses))
	for i, expense := range expenses {
		expenseModels[i] = model.ExpenseFromEntity(userID, monthKey.String(), expense)
	}
	result := r.db.WithContext(ctx).Create(expenseModels)
	return result.Error
}

// ReplaceMonth replaces a period's record set wholesale inside a transaction.
func (r *expenseRepository) ReplaceMonth(ctx context.Context, userID uuid.UUID, monthKey valueobject.MonthKey, expenses []*entity.Expense) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("user_id = ? AND month_key = ?", userID, monthKey.String()).
			Delete(&model.ExpenseModel{}).Error; err != nil {
			return err
		}

		if len(expenses) == 0 {
			return nil
		}

		expenseModels := make([]*model.ExpenseModel, len(expenses))
		for i, expense := range expenses {
			expenseModels[i] = model.ExpenseFromEntity(userID, monthKey.String(), expense)
		}
		return tx.Create(expenseModels).Error
	})
}

// DeleteByIndex removes the expense at the given position within the month's
// date-descending ordering.
func (r *expenseRepository) DeleteByIndex(ctx context.Context, userID uuid.UUID, monthKey valueobject.MonthKey, index int) error {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND month_key = ?", userID, monthKey.String()).
		Order("date DESC, created_at DESC, id DESC").
		Offset(index).
		Limit(1).
		Find(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return domainerror.ErrExpenseNotFound
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrExpenseNotFound
	}

	return r.db.WithContext(ctx).Delete(&model.ExpenseModel{}, "id = ?", expenseModel.ID).Error
}

// ClearMonth removes all expenses for a ledger period.
func (r *expenseRepository) ClearMonth(ctx context.Context, userID uuid.UUID, monthKey valueobject.MonthKey) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND month_key = ?", userID, monthKey.String()).
		Delete(&model.ExpenseModel{})
	return result.Error
}

// ClearAll removes every expense for a user.
func (r *expenseRepository) ClearAll(ctx context.Context, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.ExpenseModel{})
	return result.Error
}
