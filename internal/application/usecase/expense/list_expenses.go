// Package expense contains expense ledger use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
	"github.com/household-ledger/backend/internal/domain/valueobject"
)

// ListExpensesInput represents the input for listing expenses. When MonthKey
// is nil every ledger period is returned.
type ListExpensesInput struct {
	UserID   uuid.UUID
	MonthKey *valueobject.MonthKey
}

// ListExpensesOutput maps month keys to their expense lists.
type ListExpensesOutput struct {
	Months map[valueobject.MonthKey][]*entity.Expense
}

// ListExpensesUseCase handles expense listing.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute retrieves the requested ledger periods.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	if input.MonthKey == nil {
		months, err := uc.expenseRepo.FindAll(ctx, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to list expenses: %w", err)
		}
		return &ListExpensesOutput{Months: months}, nil
	}

	if !input.MonthKey.Valid() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidMonthKey,
			"month key must be in YYYY-MM format",
			domainerror.ErrInvalidMonthKey,
		)
	}

	expenses, err := uc.expenseRepo.FindByMonth(ctx, input.UserID, *input.MonthKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	return &ListExpensesOutput{
		Months: map[valueobject.MonthKey][]*entity.Expense{
			*input.MonthKey: expenses,
		},
	}, nil
}
