package summary

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
	"github.com/household-ledger/backend/internal/domain/valueobject"
)

type fakeExpenseRepository struct {
	months map[valueobject.MonthKey][]*entity.Expense
}

func (r *fakeExpenseRepository) FindByMonth(_ context.Context, _ uuid.UUID, monthKey valueobject.MonthKey) ([]*entity.Expense, error) {
	return r.months[monthKey], nil
}

func (r *fakeExpenseRepository) FindAll(_ context.Context, _ uuid.UUID) (map[valueobject.MonthKey][]*entity.Expense, error) {
	return r.months, nil
}

func (r *fakeExpenseRepository) AddToMonth(_ context.Context, _ uuid.UUID, _ valueobject.MonthKey, _ []*entity.Expense) error {
	return nil
}

func (r *fakeExpenseRepository) ReplaceMonth(_ context.Context, _ uuid.UUID, _ valueobject.MonthKey, _ []*entity.Expense) error {
	return nil
}

func (r *fakeExpenseRepository) DeleteByIndex(_ context.Context, _ uuid.UUID, _ valueobject.MonthKey, _ int) error {
	return nil
}

func (r *fakeExpenseRepository) ClearMonth(_ context.Context, _ uuid.UUID, _ valueobject.MonthKey) error {
	return nil
}

func (r *fakeExpenseRepository) ClearAll(_ context.Context, _ uuid.UUID) error {
	return nil
}

type fakeSettingsRepository struct {
	rate decimal.Decimal
}

func (r *fakeSettingsRepository) GetExchangeRate(_ context.Context, _ uuid.UUID) (decimal.Decimal, error) {
	return r.rate, nil
}

func (r *fakeSettingsRepository) SetExchangeRate(_ context.Context, _ uuid.UUID, rate decimal.Decimal) error {
	r.rate = rate
	return nil
}

func usdAmount(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func TestGetMonthSummary(t *testing.T) {
	userID := uuid.New()
	expenses := []*entity.Expense{
		{
			Description:   "Supermercado",
			PaymentMethod: entity.PaymentMethodVisa,
			Responsible:   entity.ResponsiblePersonA,
			Category:      "Comida",
			AmountARS:     decimal.NewFromInt(30000),
			Paid:          true,
		},
		{
			Description:   "Streaming",
			PaymentMethod: entity.PaymentMethodVisa,
			Responsible:   entity.ResponsibleShared,
			Category:      "Servicios",
			AmountARS:     decimal.NewFromInt(5000),
			AmountUSD:     usdAmount("10"), // USD takes priority over the ARS figure
		},
		{
			Description:        "Heladera",
			PaymentMethod:      entity.PaymentMethodMastercard,
			Responsible:        entity.ResponsiblePersonB,
			InstallmentsTotal:  12,
			InstallmentCurrent: 3,
			AmountARS:          decimal.NewFromInt(20000),
		},
		{
			Description: "Ajuste",
			AmountARS:   decimal.Zero, // zero ARS, no USD: counts toward neither currency bucket
		},
	}

	expenseRepo := &fakeExpenseRepository{months: map[valueobject.MonthKey][]*entity.Expense{
		"2025-01": expenses,
	}}
	settingsRepo := &fakeSettingsRepository{rate: decimal.NewFromInt(1000)}
	uc := NewGetMonthSummaryUseCase(expenseRepo, settingsRepo)

	output, err := uc.Execute(context.Background(), GetMonthSummaryInput{UserID: userID, MonthKey: "2025-01"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("currency buckets", func(t *testing.T) {
		if output.ExpenseCount != 4 {
			t.Errorf("ExpenseCount = %d, want 4", output.ExpenseCount)
		}
		if !output.TotalARS.Equal(decimal.NewFromInt(50000)) {
			t.Errorf("TotalARS = %s, want 50000", output.TotalARS)
		}
		if !output.TotalUSD.Equal(decimal.NewFromInt(10)) {
			t.Errorf("TotalUSD = %s, want 10", output.TotalUSD)
		}
		if output.CountARS != 2 || output.CountUSD != 1 {
			t.Errorf("counts = %d ARS / %d USD, want 2/1", output.CountARS, output.CountUSD)
		}
	})

	t.Run("combined total converts USD", func(t *testing.T) {
		if !output.TotalCombined.Equal(decimal.NewFromInt(60000)) {
			t.Errorf("TotalCombined = %s, want 60000", output.TotalCombined)
		}
	})

	t.Run("status counters", func(t *testing.T) {
		if output.PaidCount != 1 {
			t.Errorf("PaidCount = %d, want 1", output.PaidCount)
		}
		if output.InstallmentOpen != 1 {
			t.Errorf("InstallmentOpen = %d, want 1", output.InstallmentOpen)
		}
	})

	t.Run("breakdowns sort descending and fall back to Unassigned", func(t *testing.T) {
		if len(output.ByPaymentMethod) != 3 {
			t.Fatalf("ByPaymentMethod groups = %d, want 3", len(output.ByPaymentMethod))
		}
		if output.ByPaymentMethod[0].Name != "Visa" {
			t.Errorf("top method = %s, want Visa", output.ByPaymentMethod[0].Name)
		}
		if output.ByPaymentMethod[0].Count != 2 {
			t.Errorf("Visa count = %d, want 2", output.ByPaymentMethod[0].Count)
		}

		var foundUnassigned bool
		for _, entry := range output.ByCategory {
			if entry.Name == "Unassigned" {
				foundUnassigned = true
			}
		}
		if !foundUnassigned {
			t.Error("expected blank categories grouped as Unassigned")
		}
	})

	t.Run("invalid month key is rejected", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetMonthSummaryInput{UserID: userID, MonthKey: "enero"})
		var expErr *domainerror.ExpenseError
		if !errors.As(err, &expErr) || expErr.Code != domainerror.ErrCodeInvalidMonthKey {
			t.Fatalf("expected invalid month key error, got %v", err)
		}
	})

	t.Run("empty month yields zeroed summary", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), GetMonthSummaryInput{UserID: userID, MonthKey: "2030-01"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.ExpenseCount != 0 || !output.TotalCombined.IsZero() {
			t.Errorf("expected empty summary, got %+v", output)
		}
	})
}
