package income

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
	"github.com/household-ledger/backend/internal/domain/valueobject"
)

// SetMonthIncomesInput represents the input for replacing a month's income
// override set. An empty list removes the override.
type SetMonthIncomesInput struct {
	UserID   uuid.UUID
	MonthKey valueobject.MonthKey
	Incomes  []*entity.Income
}

// SetMonthIncomesUseCase replaces the income override set for a month.
type SetMonthIncomesUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewSetMonthIncomesUseCase creates a new SetMonthIncomesUseCase instance.
func NewSetMonthIncomesUseCase(incomeRepo adapter.IncomeRepository) *SetMonthIncomesUseCase {
	return &SetMonthIncomesUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute replaces the override set.
func (uc *SetMonthIncomesUseCase) Execute(ctx context.Context, input SetMonthIncomesInput) error {
	if !input.MonthKey.Valid() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidMonthKey,
			"month key must be in YYYY-MM format",
			domainerror.ErrInvalidMonthKey,
		)
	}
	for _, income := range input.Incomes {
		if err := validateIncomeFields(income.Description, income.Amount, income.Currency); err != nil {
			return err
		}
		income.UserID = input.UserID
		income.Description = strings.TrimSpace(income.Description)
	}

	if err := uc.incomeRepo.SaveOverrides(ctx, input.UserID, input.MonthKey, input.Incomes); err != nil {
		return fmt.Errorf("failed to save income overrides: %w", err)
	}

	slog.Info("income overrides replaced",
		"user_id", input.UserID,
		"month_key", input.MonthKey.String(),
		"count", len(input.Incomes),
	)
	return nil
}
