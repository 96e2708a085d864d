package income

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
)

// UpdateIncomeInput represents a partial update to a base income. Nil fields
// are left unchanged.
type UpdateIncomeInput struct {
	UserID uuid.UUID
	ID     uuid.UUID
	Update adapter.IncomeUpdate
}

// UpdateIncomeUseCase applies partial updates to a base income.
type UpdateIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewUpdateIncomeUseCase creates a new UpdateIncomeUseCase instance.
func NewUpdateIncomeUseCase(incomeRepo adapter.IncomeRepository) *UpdateIncomeUseCase {
	return &UpdateIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute applies the update.
func (uc *UpdateIncomeUseCase) Execute(ctx context.Context, input UpdateIncomeInput) error {
	if input.Update.Description != nil && strings.TrimSpace(*input.Update.Description) == "" {
		return domainerror.NewIncomeError(
			domainerror.ErrCodeMissingIncomeDescription,
			"income description is required",
			domainerror.ErrMissingIncomeDescription,
		)
	}
	if input.Update.Amount != nil && input.Update.Amount.IsNegative() {
		return domainerror.NewIncomeError(
			domainerror.ErrCodeInvalidIncomeAmount,
			"income amount must not be negative",
			domainerror.ErrInvalidIncomeAmount,
		)
	}
	if input.Update.Currency != nil &&
		*input.Update.Currency != entity.CurrencyARS && *input.Update.Currency != entity.CurrencyUSD {
		return domainerror.NewIncomeError(
			domainerror.ErrCodeInvalidCurrency,
			"currency must be ARS or USD",
			domainerror.ErrInvalidCurrency,
		)
	}

	if err := uc.incomeRepo.Update(ctx, input.UserID, input.ID, input.Update); err != nil {
		if errors.Is(err, domainerror.ErrIncomeNotFound) {
			return domainerror.NewIncomeError(
				domainerror.ErrCodeIncomeNotFound,
				"income not found",
				domainerror.ErrIncomeNotFound,
			)
		}
		return fmt.Errorf("failed to update income: %w", err)
	}

	return nil
}
