package income

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
)

// CreateIncomeInput represents the input for creating a base income.
type CreateIncomeInput struct {
	UserID      uuid.UUID
	Description string
	Amount      decimal.Decimal
	Currency    entity.Currency
	Responsible string
	Recurring   bool
}

// CreateIncomeOutput represents the created income.
type CreateIncomeOutput struct {
	Income *entity.Income
}

// CreateIncomeUseCase adds an income source to the base set.
type CreateIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewCreateIncomeUseCase creates a new CreateIncomeUseCase instance.
func NewCreateIncomeUseCase(incomeRepo adapter.IncomeRepository) *CreateIncomeUseCase {
	return &CreateIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute creates the income.
func (uc *CreateIncomeUseCase) Execute(ctx context.Context, input CreateIncomeInput) (*CreateIncomeOutput, error) {
	if err := validateIncomeFields(input.Description, input.Amount, input.Currency); err != nil {
		return nil, err
	}

	income := entity.NewIncome(
		input.UserID,
		strings.TrimSpace(input.Description),
		input.Amount,
		input.Currency,
		strings.TrimSpace(input.Responsible),
		input.Recurring,
	)

	if err := uc.incomeRepo.Create(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to create income: %w", err)
	}

	return &CreateIncomeOutput{Income: income}, nil
}

func validateIncomeFields(description string, amount decimal.Decimal, currency entity.Currency) error {
	if strings.TrimSpace(description) == "" {
		return domainerror.NewIncomeError(
			domainerror.ErrCodeMissingIncomeDescription,
			"income description is required",
			domainerror.ErrMissingIncomeDescription,
		)
	}
	if amount.IsNegative() {
		return domainerror.NewIncomeError(
			domainerror.ErrCodeInvalidIncomeAmount,
			"income amount must not be negative",
			domainerror.ErrInvalidIncomeAmount,
		)
	}
	if currency != entity.CurrencyARS && currency != entity.CurrencyUSD {
		return domainerror.NewIncomeError(
			domainerror.ErrCodeInvalidCurrency,
			"currency must be ARS or USD",
			domainerror.ErrInvalidCurrency,
		)
	}
	return nil
}
