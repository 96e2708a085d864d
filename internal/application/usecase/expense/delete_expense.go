package expense

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/household-ledger/backend/internal/application/adapter"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
	"github.com/household-ledger/backend/internal/domain/valueobject"
)

// DeleteExpenseInput represents the input for deleting a single expense,
// addressed by its position within the month's date-descending ordering.
type DeleteExpenseInput struct {
	UserID   uuid.UUID
	MonthKey valueobject.MonthKey
	Index    int
}

// DeleteExpenseUseCase handles single-expense deletion.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the deletion.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) error {
	if !input.MonthKey.Valid() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidMonthKey,
			"month key must be in YYYY-MM format",
			domainerror.ErrInvalidMonthKey,
		)
	}
	if input.Index < 0 {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense index out of range",
			domainerror.ErrExpenseNotFound,
		)
	}

	if err := uc.expenseRepo.DeleteByIndex(ctx, input.UserID, input.MonthKey, input.Index); err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseNotFound,
				"expense not found",
				domainerror.ErrExpenseNotFound,
			)
		}
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	return nil
}
