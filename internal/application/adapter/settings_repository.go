package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SettingsRepository defines the interface for per-user settings persistence.
type SettingsRepository interface {
	// GetExchangeRate returns the user's ARS-per-USD exchange rate, falling
	// back to the application default when none is stored.
	GetExchangeRate(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)

	// SetExchangeRate stores the user's ARS-per-USD exchange rate.
	SetExchangeRate(ctx context.Context, userID uuid.UUID, rate decimal.Decimal) error
}
