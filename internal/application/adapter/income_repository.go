package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/domain/entity"
	"github.com/household-ledger/backend/internal/domain/valueobject"
)

// IncomeUpdate carries the mutable income fields for a partial update.
// Nil fields are left unchanged.
type IncomeUpdate struct {
	Description *string
	Amount      *decimal.Decimal
	Currency    *entity.Currency
	Responsible *string
	Recurring   *bool
}

// IncomeRepository defines the interface for income persistence operations.
type IncomeRepository interface {
	// FindBase retrieves the user's base income set, ordered by creation time.
	FindBase(ctx context.Context, userID uuid.UUID) ([]*entity.Income, error)

	// FindOverrides retrieves the override income set for a month, if any.
	// An empty slice means no override exists for that month.
	FindOverrides(ctx context.Context, userID uuid.UUID, monthKey valueobject.MonthKey) ([]*entity.Income, error)

	// SaveOverrides replaces the override income set for a month. An empty
	// slice removes the override so the month falls back to the base set.
	SaveOverrides(ctx context.Context, userID uuid.UUID, monthKey valueobject.MonthKey, incomes []*entity.Income) error

	// Create adds an income to the user's base set.
	Create(ctx context.Context, income *entity.Income) error

	// Update applies a partial update to an income in the base set.
	Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, update IncomeUpdate) error

	// Delete removes an income from the base set.
	Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error

	// ClearAll removes the user's base incomes and every override.
	ClearAll(ctx context.Context, userID uuid.UUID) error
}
