package income

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
	"github.com/household-ledger/backend/internal/domain/valueobject"
)

// GetMonthIncomesInput represents the input for resolving a month's incomes.
type GetMonthIncomesInput struct {
	UserID   uuid.UUID
	MonthKey valueobject.MonthKey
}

// GetMonthIncomesOutput carries the resolved income set. Overridden reports
// whether the month had its own set or fell back to the base set.
type GetMonthIncomesOutput struct {
	Incomes    []*entity.Income
	Overridden bool
}

// GetMonthIncomesUseCase resolves the income set for a month: the month's
// override set when one exists, otherwise the base set.
type GetMonthIncomesUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewGetMonthIncomesUseCase creates a new GetMonthIncomesUseCase instance.
func NewGetMonthIncomesUseCase(incomeRepo adapter.IncomeRepository) *GetMonthIncomesUseCase {
	return &GetMonthIncomesUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute resolves the month's income set.
func (uc *GetMonthIncomesUseCase) Execute(ctx context.Context, input GetMonthIncomesInput) (*GetMonthIncomesOutput, error) {
	if !input.MonthKey.Valid() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidMonthKey,
			"month key must be in YYYY-MM format",
			domainerror.ErrInvalidMonthKey,
		)
	}

	overrides, err := uc.incomeRepo.FindOverrides(ctx, input.UserID, input.MonthKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load income overrides: %w", err)
	}
	if len(overrides) > 0 {
		return &GetMonthIncomesOutput{Incomes: overrides, Overridden: true}, nil
	}

	base, err := uc.incomeRepo.FindBase(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load base incomes: %w", err)
	}
	return &GetMonthIncomesOutput{Incomes: base, Overridden: false}, nil
}
