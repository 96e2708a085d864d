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

// AddExpensesInput represents the input for appending expenses to a period.
type AddExpensesInput struct {
	UserID   uuid.UUID
	MonthKey valueobject.MonthKey
	Expenses []*entity.Expense
}

// AddExpensesOutput represents the result of the append.
type AddExpensesOutput struct {
	AddedCount int
}

// AddExpensesUseCase appends manually entered expenses to a ledger period.
type AddExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewAddExpensesUseCase creates a new AddExpensesUseCase instance.
func NewAddExpensesUseCase(expenseRepo adapter.ExpenseRepository) *AddExpensesUseCase {
	return &AddExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the append.
func (uc *AddExpensesUseCase) Execute(ctx context.Context, input AddExpensesInput) (*AddExpensesOutput, error) {
	if !input.MonthKey.Valid() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidMonthKey,
			"month key must be in YYYY-MM format",
			domainerror.ErrInvalidMonthKey,
		)
	}
	if len(input.Expenses) == 0 {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeEmptyExpenseList,
			"at least one expense is required",
			domainerror.ErrEmptyExpenseList,
		)
	}

	if err := uc.expenseRepo.AddToMonth(ctx, input.UserID, input.MonthKey, input.Expenses); err != nil {
		return nil, fmt.Errorf("failed to add expenses: %w", err)
	}

	return &AddExpensesOutput{AddedCount: len(input.Expenses)}, nil
}
