package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
)

func TestIncomeRepository(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	newIncome := func(desc, amount string) *entity.Income {
		return entity.NewIncome(userID, desc, decimal.RequireFromString(amount), entity.CurrencyARS, "Person A", true)
	}

	t.Run("Create and FindBase", func(t *testing.T) {
		repo := NewIncomeRepository(setupTestDB(t))

		if err := repo.Create(ctx, newIncome("Sueldo", "1000000")); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if err := repo.Create(ctx, newIncome("Freelance", "250000")); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		incomes, err := repo.FindBase(ctx, userID)
		if err != nil {
			t.Fatalf("FindBase failed: %v", err)
		}
		if len(incomes) != 2 {
			t.Fatalf("expected 2 incomes, got %d", len(incomes))
		}
		if !incomes[0].Amount.Equal(decimal.RequireFromString("1000000")) {
			t.Errorf("Amount = %s, want 1000000", incomes[0].Amount)
		}
	})

	t.Run("Update applies only non-nil fields", func(t *testing.T) {
		repo := NewIncomeRepository(setupTestDB(t))
		income := newIncome("Sueldo", "1000000")
		_ = repo.Create(ctx, income)

		newAmount := decimal.RequireFromString("1200000")
		if err := repo.Update(ctx, userID, income.ID, adapter.IncomeUpdate{Amount: &newAmount}); err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		incomes, _ := repo.FindBase(ctx, userID)
		if !incomes[0].Amount.Equal(newAmount) {
			t.Errorf("Amount = %s, want 1200000", incomes[0].Amount)
		}
		if incomes[0].Description != "Sueldo" {
			t.Errorf("Description changed unexpectedly: %q", incomes[0].Description)
		}
	})

	t.Run("Update of unknown income", func(t *testing.T) {
		repo := NewIncomeRepository(setupTestDB(t))
		desc := "x"
		err := repo.Update(ctx, userID, uuid.New(), adapter.IncomeUpdate{Description: &desc})
		if !errors.Is(err, domainerror.ErrIncomeNotFound) {
			t.Fatalf("expected ErrIncomeNotFound, got %v", err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		repo := NewIncomeRepository(setupTestDB(t))
		income := newIncome("Sueldo", "1000000")
		_ = repo.Create(ctx, income)

		if err := repo.Delete(ctx, userID, income.ID); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		incomes, _ := repo.FindBase(ctx, userID)
		if len(incomes) != 0 {
			t.Errorf("expected empty base set, got %d", len(incomes))
		}

		if err := repo.Delete(ctx, userID, income.ID); !errors.Is(err, domainerror.ErrIncomeNotFound) {
			t.Fatalf("expected ErrIncomeNotFound on second delete, got %v", err)
		}
	})

	t.Run("SaveOverrides replaces wholesale and empty set removes", func(t *testing.T) {
		repo := NewIncomeRepository(setupTestDB(t))

		_ = repo.SaveOverrides(ctx, userID, "2025-01", []*entity.Income{
			newIncome("Aguinaldo", "500000"),
			newIncome("Sueldo", "1000000"),
		})

		overrides, err := repo.FindOverrides(ctx, userID, "2025-01")
		if err != nil {
			t.Fatalf("FindOverrides failed: %v", err)
		}
		if len(overrides) != 2 {
			t.Fatalf("expected 2 overrides, got %d", len(overrides))
		}

		// Other months are untouched.
		overrides, _ = repo.FindOverrides(ctx, userID, "2025-02")
		if len(overrides) != 0 {
			t.Errorf("expected no overrides for other month, got %d", len(overrides))
		}

		// A second save replaces rather than appends.
		_ = repo.SaveOverrides(ctx, userID, "2025-01", []*entity.Income{newIncome("Solo", "100")})
		overrides, _ = repo.FindOverrides(ctx, userID, "2025-01")
		if len(overrides) != 1 || overrides[0].Description != "Solo" {
			t.Errorf("expected single replacement override, got %d", len(overrides))
		}

		// Empty set removes the override for the month.
		_ = repo.SaveOverrides(ctx, userID, "2025-01", nil)
		overrides, _ = repo.FindOverrides(ctx, userID, "2025-01")
		if len(overrides) != 0 {
			t.Errorf("expected override removed, got %d", len(overrides))
		}
	})

	t.Run("ClearAll removes base incomes and overrides", func(t *testing.T) {
		repo := NewIncomeRepository(setupTestDB(t))

		_ = repo.Create(ctx, newIncome("Sueldo", "1000000"))
		_ = repo.SaveOverrides(ctx, userID, "2025-01", []*entity.Income{newIncome("Extra", "50000")})

		if err := repo.ClearAll(ctx, userID); err != nil {
			t.Fatalf("ClearAll failed: %v", err)
		}

		base, _ := repo.FindBase(ctx, userID)
		overrides, _ := repo.FindOverrides(ctx, userID, "2025-01")
		if len(base) != 0 || len(overrides) != 0 {
			t.Errorf("expected everything cleared, got %d base / %d overrides", len(base), len(overrides))
		}
	})
}
