// Package settings contains the use cases for per-user configuration, today
// limited to the ARS-per-USD exchange rate.
package settings

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/application/adapter"
)

// GetExchangeRateInput represents the input for reading the exchange rate.
type GetExchangeRateInput struct {
	UserID uuid.UUID
}

// GetExchangeRateOutput carries the user's current ARS-per-USD rate.
type GetExchangeRateOutput struct {
	Rate decimal.Decimal
}

// GetExchangeRateUseCase reads the user's exchange rate setting.
type GetExchangeRateUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewGetExchangeRateUseCase creates a new GetExchangeRateUseCase instance.
func NewGetExchangeRateUseCase(settingsRepo adapter.SettingsRepository) *GetExchangeRateUseCase {
	return &GetExchangeRateUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute reads the rate.
func (uc *GetExchangeRateUseCase) Execute(ctx context.Context, input GetExchangeRateInput) (*GetExchangeRateOutput, error) {
	rate, err := uc.settingsRepo.GetExchangeRate(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to read exchange rate: %w", err)
	}
	return &GetExchangeRateOutput{Rate: rate}, nil
}
