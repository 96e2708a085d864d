// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID                 uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID        `gorm:"type:uuid;not null;index:idx_expenses_user_month"`
	MonthKey           string           `gorm:"type:varchar(7);not null;index:idx_expenses_user_month"`
	Date               string           `gorm:"type:varchar(10);not null"`
	Description        string           `gorm:"type:varchar(255);not null"`
	PaymentMethod      string           `gorm:"type:varchar(50)"`
	Institution        string           `gorm:"type:varchar(50)"`
	InstallmentsTotal  int              `gorm:"not null;default:1"`
	InstallmentCurrent int              `gorm:"not null;default:1"`
	AmountARS          decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	AmountUSD          *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Responsible        string           `gorm:"type:varchar(50)"`
	Category           string           `gorm:"type:varchar(100)"`
	Paid               bool             `gorm:"default:false"`
	CreatedAt          time.Time        `gorm:"not null"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		Date:               m.Date,
		Description:        m.Description,
		PaymentMethod:      entity.PaymentMethod(m.PaymentMethod),
		Institution:        entity.Institution(m.Institution),
		InstallmentsTotal:  m.InstallmentsTotal,
		InstallmentCurrent: m.InstallmentCurrent,
		AmountARS:          m.AmountARS,
		AmountUSD:          m.AmountUSD,
		Responsible:        entity.Responsible(m.Responsible),
		Category:           m.Category,
		Paid:               m.Paid,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(userID uuid.UUID, monthKey string, expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:                 uuid.New(),
		UserID:             userID,
		MonthKey:           monthKey,
		Date:               expense.Date,
		Description:        expense.Description,
		PaymentMethod:      string(expense.PaymentMethod),
		Institution:        string(expense.Institution),
		InstallmentsTotal:  expense.InstallmentsTotal,
		InstallmentCurrent: expense.InstallmentCurrent,
		AmountARS:          expense.AmountARS,
		AmountUSD:          expense.AmountUSD,
		Responsible:        string(expense.Responsible),
		Category:           expense.Category,
		Paid:               expense.Paid,
		CreatedAt:          time.Now().UTC(),
	}
}
