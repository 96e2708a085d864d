package expense

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/household-ledger/backend/internal/application/adapter"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
	"github.com/household-ledger/backend/internal/domain/valueobject"
)

// ClearExpensesInput represents the input for bulk deletion. When All is set
// every ledger period is wiped; otherwise only MonthKey is.
type ClearExpensesInput struct {
	UserID   uuid.UUID
	MonthKey valueobject.MonthKey
	All      bool
}

// ClearExpensesUseCase handles bulk expense deletion per month or wholesale.
type ClearExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewClearExpensesUseCase creates a new ClearExpensesUseCase instance.
func NewClearExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ClearExpensesUseCase {
	return &ClearExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the bulk deletion.
func (uc *ClearExpensesUseCase) Execute(ctx context.Context, input ClearExpensesInput) error {
	if input.All {
		if err := uc.expenseRepo.ClearAll(ctx, input.UserID); err != nil {
			return fmt.Errorf("failed to clear all expenses: %w", err)
		}
		slog.Info("All expenses cleared", "userID", input.UserID)
		return nil
	}

	if !input.MonthKey.Valid() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidMonthKey,
			"month key must be in YYYY-MM format",
			domainerror.ErrInvalidMonthKey,
		)
	}

	if err := uc.expenseRepo.ClearMonth(ctx, input.UserID, input.MonthKey); err != nil {
		return fmt.Errorf("failed to clear month: %w", err)
	}

	slog.Info("Month cleared", "userID", input.UserID, "monthKey", input.MonthKey)
	return nil
}
