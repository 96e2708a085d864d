// Package income contains the use cases managing the household's income
// sources, including per-month override resolution.
package income

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
)

// ListIncomesInput represents the input for listing base incomes.
type ListIncomesInput struct {
	UserID uuid.UUID
}

// ListIncomesOutput represents the user's base income set.
type ListIncomesOutput struct {
	Incomes []*entity.Income
}

// ListIncomesUseCase lists the base income set.
type ListIncomesUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewListIncomesUseCase creates a new ListIncomesUseCase instance.
func NewListIncomesUseCase(incomeRepo adapter.IncomeRepository) *ListIncomesUseCase {
	return &ListIncomesUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute lists the base incomes.
func (uc *ListIncomesUseCase) Execute(ctx context.Context, input ListIncomesInput) (*ListIncomesOutput, error) {
	incomes, err := uc.incomeRepo.FindBase(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}
	return &ListIncomesOutput{Incomes: incomes}, nil
}
