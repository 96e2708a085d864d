// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/household-ledger/backend/internal/domain/entity"
	"github.com/household-ledger/backend/internal/domain/valueobject"
)

// ExpenseRepository defines the interface for expense persistence operations.
// Every operation is scoped to the owning user; the core never sees another
// user's records.
type ExpenseRepository interface {
	// FindByMonth retrieves all expenses for a user and ledger period,
	// ordered by date descending.
	FindByMonth(ctx context.Context, userID uuid.UUID, monthKey valueobject.MonthKey) ([]*entity.Expense, error)

	// FindAll retrieves every expense for a user, grouped by month key.
	FindAll(ctx context.Context, userID uuid.UUID) (map[valueobject.MonthKey][]*entity.Expense, error)

	// AddToMonth appends expenses to a ledger period.
	AddToMonth(ctx context.Context, userID uuid.UUID, monthKey valueobject.MonthKey, expenses []*entity.Expense) error

	// ReplaceMonth replaces a period's record set wholesale. Used for the
	// single-level import undo.
	ReplaceMonth(ctx context.Context, userID uuid.UUID, monthKey valueobject.MonthKey, expenses []*entity.Expense) error

	// DeleteByIndex removes the expense at the given position within the
	// month's date-descending ordering.
	DeleteByIndex(ctx context.Context, userID uuid.UUID, monthKey valueobject.MonthKey, index int) error

	// ClearMonth removes all expenses for a ledger period.
	ClearMonth(ctx context.Context, userID uuid.UUID, monthKey valueobject.MonthKey) error

	// ClearAll removes every expense for a user.
	ClearAll(ctx context.Context, userID uuid.UUID) error
}
