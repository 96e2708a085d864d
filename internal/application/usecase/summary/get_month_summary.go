// Package summary contains the monthly aggregation use case feeding the
// dashboard and chart views.
package summary

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/application/adapter"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
	"github.com/household-ledger/backend/internal/domain/valueobject"
)

// BreakdownEntry is one slice of a grouped total, sorted descending by amount.
type BreakdownEntry struct {
	Name   string
	Amount decimal.Decimal
	Count  int
}

// GetMonthSummaryInput represents the input for a month summary.
type GetMonthSummaryInput struct {
	UserID   uuid.UUID
	MonthKey valueobject.MonthKey
}

// GetMonthSummaryOutput aggregates one ledger period. Each expense counts
// toward either the USD totals (when a positive USD amount is present) or the
// ARS totals; TotalCombined converts USD at the user's exchange rate.
type GetMonthSummaryOutput struct {
	ExpenseCount    int
	TotalARS        decimal.Decimal
	TotalUSD        decimal.Decimal
	TotalCombined   decimal.Decimal
	CountARS        int
	CountUSD        int
	PaidCount       int
	InstallmentOpen int
	ByPaymentMethod []BreakdownEntry
	ByResponsible   []BreakdownEntry
	ByCategory      []BreakdownEntry
	ExchangeRate    decimal.Decimal
}

// GetMonthSummaryUseCase computes the aggregated view of one ledger period.
type GetMonthSummaryUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	settingsRepo adapter.SettingsRepository
}

// NewGetMonthSummaryUseCase creates a new GetMonthSummaryUseCase instance.
func NewGetMonthSummaryUseCase(
	expenseRepo adapter.ExpenseRepository,
	settingsRepo adapter.SettingsRepository,
) *GetMonthSummaryUseCase {
	return &GetMonthSummaryUseCase{
		expenseRepo:  expenseRepo,
		settingsRepo: settingsRepo,
	}
}

// Execute computes the summary.
func (uc *GetMonthSummaryUseCase) Execute(ctx context.Context, input GetMonthSummaryInput) (*GetMonthSummaryOutput, error) {
	if !input.MonthKey.Valid() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidMonthKey,
			"month key must be in YYYY-MM format",
			domainerror.ErrInvalidMonthKey,
		)
	}

	expenses, err := uc.expenseRepo.FindByMonth(ctx, input.UserID, input.MonthKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses for summary: %w", err)
	}

	rate, err := uc.settingsRepo.GetExchangeRate(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load exchange rate: %w", err)
	}

	output := &GetMonthSummaryOutput{
		ExpenseCount:  len(expenses),
		TotalARS:      decimal.Zero,
		TotalUSD:      decimal.Zero,
		TotalCombined: decimal.Zero,
		ExchangeRate:  rate,
	}

	byMethod := newBreakdown()
	byResponsible := newBreakdown()
	byCategory := newBreakdown()

	for _, exp := range expenses {
		if exp.AmountUSD != nil && exp.AmountUSD.IsPositive() {
			output.TotalUSD = output.TotalUSD.Add(*exp.AmountUSD)
			output.CountUSD++
		} else if !exp.AmountARS.IsZero() {
			output.TotalARS = output.TotalARS.Add(exp.AmountARS)
			output.CountARS++
		}

		if exp.Paid {
			output.PaidCount++
		}
		if exp.HasInstallments() {
			output.InstallmentOpen++
		}

		byMethod.add(orUnassigned(string(exp.PaymentMethod)), exp.AmountARS)
		byResponsible.add(orUnassigned(string(exp.Responsible)), exp.AmountARS)
		byCategory.add(orUnassigned(exp.Category), exp.AmountARS)
	}

	output.TotalCombined = output.TotalARS.Add(output.TotalUSD.Mul(rate))
	output.ByPaymentMethod = byMethod.sorted()
	output.ByResponsible = byResponsible.sorted()
	output.ByCategory = byCategory.sorted()

	return output, nil
}

func orUnassigned(name string) string {
	if name == "" {
		return "Unassigned"
	}
	return name
}

// breakdown accumulates grouped amounts while preserving insertion order for
// stable tie-breaks.
type breakdown struct {
	index   map[string]int
	entries []BreakdownEntry
}

func newBreakdown() *breakdown {
	return &breakdown{index: make(map[string]int)}
}

func (b *breakdown) add(name string, amount decimal.Decimal) {
	i, ok := b.index[name]
	if !ok {
		i = len(b.entries)
		b.index[name] = i
		b.entries = append(b.entries, BreakdownEntry{Name: name, Amount: decimal.Zero})
	}
	b.entries[i].Amount = b.entries[i].Amount.Add(amount)
	b.entries[i].Count++
}

func (b *breakdown) sorted() []BreakdownEntry {
	sort.SliceStable(b.entries, func(i, j int) bool {
		return b.entries[i].Amount.GreaterThan(b.entries[j].Amount)
	})
	return b.entries
}
