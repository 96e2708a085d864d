package settings

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/application/adapter"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
)

// SetExchangeRateInput represents the input for updating the exchange rate.
type SetExchangeRateInput struct {
	UserID uuid.UUID
	Rate   decimal.Decimal
}

// SetExchangeRateUseCase updates the user's ARS-per-USD exchange rate.
type SetExchangeRateUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewSetExchangeRateUseCase creates a new SetExchangeRateUseCase instance.
func NewSetExchangeRateUseCase(settingsRepo adapter.SettingsRepository) *SetExchangeRateUseCase {
	return &SetExchangeRateUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute stores the new rate. Rates must be strictly positive.
func (uc *SetExchangeRateUseCase) Execute(ctx context.Context, input SetExchangeRateInput) error {
	if !input.Rate.IsPositive() {
		return domainerror.NewSettingsError(
			domainerror.ErrCodeNonPositiveExchangeRate,
			"exchange rate must be greater than zero",
			domainerror.ErrNonPositiveExchangeRate,
		)
	}

	if err := uc.settingsRepo.SetExchangeRate(ctx, input.UserID, input.Rate); err != nil {
		return fmt.Errorf("failed to store exchange rate: %w", err)
	}

	slog.Info("exchange rate updated",
		"user_id", input.UserID,
		"rate", input.Rate.String(),
	)
	return nil
}
