package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Currency represents the currency an amount is denominated in.
type Currency string

const (
	CurrencyARS Currency = "ARS"
	CurrencyUSD Currency = "USD"
)

// Income represents a named income source.
//
// Incomes form a base set that applies to every month; a month may carry an
// override set that replaces the base set entirely for that month.
type Income struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Description string
	Amount      decimal.Decimal
	Currency    Currency
	Responsible string
	Recurring   bool
	CreatedAt   time.Time
}

// NewIncome creates a new Income entity.
func NewIncome(
	userID uuid.UUID,
	description string,
	amount decimal.Decimal,
	currency Currency,
	responsible string,
	recurring bool,
) *Income {
	return &Income{
		ID:          uuid.New(),
		UserID:      userID,
		Description: description,
		Amount:      amount,
		Currency:    currency,
		Responsible: responsible,
		Recurring:   recurring,
		CreatedAt:   time.Now().UTC(),
	}
}
