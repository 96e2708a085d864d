// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/domain/entity"
)

// IncomeModel represents the incomes table holding the base income set.
type IncomeModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Currency    string          `gorm:"type:varchar(3);default:'ARS'"`
	Responsible string          `gorm:"type:varchar(50);not null"`
	Recurring   bool            `gorm:"default:true"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the IncomeModel.
func (IncomeModel) TableName() string {
	return "incomes"
}

// ToEntity converts an IncomeModel to a domain Income entity.
func (m *IncomeModel) ToEntity() *entity.Income {
	return &entity.Income{
		ID:          m.ID,
		UserID:      m.UserID,
		Description: m.Description,
		Amount:      m.Amount,
		Currency:    entity.Currency(m.Currency),
		Responsible: m.Responsible,
		Recurring:   m.Recurring,
		CreatedAt:   m.CreatedAt,
	}
}

// IncomeFromEntity creates an IncomeModel from a domain Income entity.
func IncomeFromEntity(income *entity.Income) *IncomeModel {
	return &IncomeModel{
		ID:          income.ID,
		UserID:      income.UserID,
		Description: income.Description,
		Amount:      income.Amount,
		Currency:    string(income.Currency),
		Responsible: income.Responsible,
		Recurring:   income.Recurring,
		CreatedAt:   income.CreatedAt,
	}
}

// IncomeOverrideModel represents the income_overrides table. A month with
// override rows replaces the base set entirely for that month.
type IncomeOverrideModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_income_overrides_user_month"`
	MonthKey    string          `gorm:"type:varchar(7);not null;index:idx_income_overrides_user_month"`
	IncomeID    uuid.UUID       `gorm:"type:uuid;not null"`
	Description string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Currency    string          `gorm:"type:varchar(3);default:'ARS'"`
	Responsible string          `gorm:"type:varchar(50);not null"`
	Recurring   bool            `gorm:"default:false"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the IncomeOverrideModel.
func (IncomeOverrideModel) TableName() string {
	return "income_overrides"
}

// ToEntity converts an IncomeOverrideModel to a domain Income entity.
func (m *IncomeOverrideModel) ToEntity() *entity.Income {
	return &entity.Income{
		ID:          m.IncomeID,
		UserID:      m.UserID,
		Description: m.Description,
		Amount:      m.Amount,
		Currency:    entity.Currency(m.Currency),
		Responsible: m.Responsible,
		Recurring:   m.Recurring,
		CreatedAt:   m.CreatedAt,
	}
}

// IncomeOverrideFromEntity creates an IncomeOverrideModel from a domain Income
// entity for the given month.
func IncomeOverrideFromEntity(monthKey string, income *entity.Income) *IncomeOverrideModel {
	return &IncomeOverrideModel{
		ID:          uuid.New(),
		UserID:      income.UserID,
		MonthKey:    monthKey,
		IncomeID:    income.ID,
		Description: income.Description,
		Amount:      income.Amount,
		Currency:    string(income.Currency),
		Responsible: income.Responsible,
		Recurring:   income.Recurring,
		CreatedAt:   income.CreatedAt,
	}
}
