package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestSettingsRepository(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("missing rate falls back to the default", func(t *testing.T) {
		repo := NewSettingsRepository(setupTestDB(t))

		rate, err := repo.GetExchangeRate(ctx, userID)
		if err != nil {
			t.Fatalf("GetExchangeRate failed: %v", err)
		}
		if !rate.Equal(decimal.RequireFromString(defaultExchangeRate)) {
			t.Errorf("rate = %s, want default %s", rate, defaultExchangeRate)
		}
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		repo := NewSettingsRepository(setupTestDB(t))

		want := decimal.RequireFromString("1350.50")
		if err := repo.SetExchangeRate(ctx, userID, want); err != nil {
			t.Fatalf("SetExchangeRate failed: %v", err)
		}

		rate, err := repo.GetExchangeRate(ctx, userID)
		if err != nil {
			t.Fatalf("GetExchangeRate failed: %v", err)
		}
		if !rate.Equal(want) {
			t.Errorf("rate = %s, want %s", rate, want)
		}
	})

	t.Run("second set upserts instead of duplicating", func(t *testing.T) {
		repo := NewSettingsRepository(setupTestDB(t))

		_ = repo.SetExchangeRate(ctx, userID, decimal.NewFromInt(1000))
		if err := repo.SetExchangeRate(ctx, userID, decimal.NewFromInt(1500)); err != nil {
			t.Fatalf("second SetExchangeRate failed: %v", err)
		}

		rate, _ := repo.GetExchangeRate(ctx, userID)
		if !rate.Equal(decimal.NewFromInt(1500)) {
			t.Errorf("rate = %s, want 1500", rate)
		}
	})

	t.Run("rates are per user", func(t *testing.T) {
		repo := NewSettingsRepository(setupTestDB(t))
		otherUser := uuid.New()

		_ = repo.SetExchangeRate(ctx, userID, decimal.NewFromInt(1000))

		rate, _ := repo.GetExchangeRate(ctx, otherUser)
		if !rate.Equal(decimal.RequireFromString(defaultExchangeRate)) {
			t.Errorf("other user's rate = %s, want default", rate)
		}
	})
}
