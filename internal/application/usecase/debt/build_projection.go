// Package debt contains the installment debt projection use cases.
package debt

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
	"github.com/household-ledger/backend/internal/domain/valueobject"
)

// monthNames holds the Spanish month names used in projection labels.
var monthNames = []string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// DebtItem is one installment-bearing expense with its derived figures.
// MonthlyAmount is in ARS: USD-denominated records are converted with the
// exchange rate supplied to the projection.
type DebtItem struct {
	Description        string
	Institution        string
	PaymentMethod      string
	Responsible        string
	InstallmentsTotal  int
	InstallmentCurrent int
	AmountARS          decimal.Decimal
	AmountUSD          *decimal.Decimal
	Remaining          int
	MonthlyAmount      decimal.Decimal
	PendingAmount      decimal.Decimal
}

// Stats aggregates the debt set at the reference month.
type Stats struct {
	Count              int
	TotalPending       decimal.Decimal
	TotalMonthly       decimal.Decimal
	MaxRemaining       int
	FreedomDate        *time.Time
	MonthsUntilFreedom int
}

// MonthProjection is one entry of the forward payment schedule.
type MonthProjection struct {
	Month         int // offset from the reference month, >= 1
	Label         string
	ShortLabel    string
	MonthlyTotal  decimal.Decimal
	ActiveItems   []DebtItem
	FinalPayments []DebtItem
	ReleaseAmount decimal.Decimal
	ReleaseMonth  string
}

// BuildProjectionInput represents the input for building a debt projection.
// ExchangeRate overrides the user's stored rate when non-nil.
type BuildProjectionInput struct {
	UserID       uuid.UUID
	Month        int // 1-indexed reference month
	Year         int
	ExchangeRate *decimal.Decimal
}

// BuildProjectionOutput represents the complete debt analysis for the
// reference month.
type BuildProjectionOutput struct {
	Items         []DebtItem
	Stats         Stats
	Projection    []MonthProjection
	ByInstitution []GroupedDebt
	ByMethod      []GroupedDebt
	ExchangeRate  decimal.Decimal
}

// BuildProjectionUseCase derives the month-by-month installment schedule from
// the reference month's committed expenses.
type BuildProjectionUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	settingsRepo adapter.SettingsRepository
}

// NewBuildProjectionUseCase creates a new BuildProjectionUseCase instance.
func NewBuildProjectionUseCase(
	expenseRepo adapter.ExpenseRepository,
	settingsRepo adapter.SettingsRepository,
) *BuildProjectionUseCase {
	return &BuildProjectionUseCase{
		expenseRepo:  expenseRepo,
		settingsRepo: settingsRepo,
	}
}

// Execute builds the projection.
func (uc *BuildProjectionUseCase) Execute(ctx context.Context, input BuildProjectionInput) (*BuildProjectionOutput, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeInvalidReferenceMonth,
			"reference month must be between 1 and 12",
			domainerror.ErrInvalidReferenceMonth,
		)
	}
	if input.Year < 1 {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeInvalidReferenceYear,
			"reference year is out of range",
			domainerror.ErrInvalidReferenceYear,
		)
	}

	rate, err := uc.resolveExchangeRate(ctx, input)
	if err != nil {
		return nil, err
	}

	monthKey := valueobject.NewMonthKey(input.Month, input.Year)
	expenses, err := uc.expenseRepo.FindByMonth(ctx, input.UserID, monthKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses for projection: %w", err)
	}

	items := BuildDebtItems(expenses, rate)
	stats := ComputeStats(items, input.Month, input.Year)
	projection := BuildSchedule(items, stats.MaxRemaining, input.Month, input.Year)

	return &BuildProjectionOutput{
		Items:         items,
		Stats:         stats,
		Projection:    projection,
		ByInstitution: GroupByInstitution(items),
		ByMethod:      GroupByPaymentMethod(items),
		ExchangeRate:  rate,
	}, nil
}

func (uc *BuildProjectionUseCase) resolveExchangeRate(ctx context.Context, input BuildProjectionInput) (decimal.Decimal, error) {
	if input.ExchangeRate != nil {
		if !input.ExchangeRate.IsPositive() {
			return decimal.Zero, domainerror.NewDebtError(
				domainerror.ErrCodeInvalidExchangeRate,
				"exchange rate must be positive",
				domainerror.ErrInvalidExchangeRate,
			)
		}
		return *input.ExchangeRate, nil
	}

	rate, err := uc.settingsRepo.GetExchangeRate(ctx, input.UserID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load exchange rate: %w", err)
	}
	return rate, nil
}

// BuildDebtItems filters the expense set down to installment-bearing records
// and derives their remaining, monthly and pending figures.
func BuildDebtItems(expenses []*entity.Expense, exchangeRate decimal.Decimal) []DebtItem {
	var items []DebtItem

	for _, exp := range expenses {
		if !exp.HasInstallments() {
			continue
		}

		remaining := exp.RemainingInstallments()

		monthly := exp.AmountARS
		if monthly.IsZero() && exp.AmountUSD != nil {
			monthly = exp.AmountUSD.Mul(exchangeRate)
		}

		institution := string(exp.Institution)
		if institution == "" {
			institution = "Unassigned"
		}
		method := string(exp.PaymentMethod)
		if method == "" {
			method = "Unassigned"
		}

		items = append(items, DebtItem{
			Description:        exp.Description,
			Institution:        institution,
			PaymentMethod:      method,
			Responsible:        string(exp.Responsible),
			InstallmentsTotal:  exp.InstallmentsTotal,
			InstallmentCurrent: exp.InstallmentCurrent,
			AmountARS:          exp.AmountARS,
			AmountUSD:          exp.AmountUSD,
			Remaining:          remaining,
			MonthlyAmount:      monthly,
			PendingAmount:      monthly.Mul(decimal.NewFromInt(int64(remaining))),
		})
	}

	return items
}

// ComputeStats aggregates the debt set. The freedom date is the first day of
// the month one full month after the last installment: a record with N
// remaining installments finishes paying at offset N, so the user is released
// at offset N+1.
func ComputeStats(items []DebtItem, refMonth, refYear int) Stats {
	stats := Stats{
		Count:        len(items),
		TotalPending: decimal.Zero,
		TotalMonthly: decimal.Zero,
	}

	for _, item := range items {
		stats.TotalPending = stats.TotalPending.Add(item.PendingAmount)
		stats.TotalMonthly = stats.TotalMonthly.Add(item.MonthlyAmount)
		if item.Remaining > stats.MaxRemaining {
			stats.MaxRemaining = item.Remaining
		}
	}

	if stats.MaxRemaining > 0 {
		freedom := monthStart(refYear, refMonth, stats.MaxRemaining+1)
		stats.FreedomDate = &freedom
		stats.MonthsUntilFreedom = stats.MaxRemaining + 1
	}

	return stats
}

// BuildSchedule constructs the forward payment table for offsets
// 1..maxRemaining. Records whose remaining count is below the offset have
// finished paying and drop out, so the monthly total is non-increasing and
// steps down exactly at offsets where final payments occur.
func BuildSchedule(items []DebtItem, maxRemaining, refMonth, refYear int) []MonthProjection {
	if maxRemaining == 0 {
		return nil
	}

	schedule := make([]MonthProjection, 0, maxRemaining)

	for month := 1; month <= maxRemaining; month++ {
		entry := MonthProjection{
			Month:         month,
			Label:         monthLabel(refYear, refMonth, month),
			ShortLabel:    shortMonthLabel(refYear, refMonth, month),
			MonthlyTotal:  decimal.Zero,
			ReleaseAmount: decimal.Zero,
			ReleaseMonth:  monthLabel(refYear, refMonth, month+1),
		}

		for _, item := range items {
			if item.Remaining >= month {
				entry.MonthlyTotal = entry.MonthlyTotal.Add(item.MonthlyAmount)
				entry.ActiveItems = append(entry.ActiveItems, item)
			}
			if item.Remaining == month {
				entry.FinalPayments = append(entry.FinalPayments, item)
				entry.ReleaseAmount = entry.ReleaseAmount.Add(item.MonthlyAmount)
			}
		}

		schedule = append(schedule, entry)
	}

	return schedule
}

// monthStart returns the first day of the reference month advanced by the
// given offset. time.Date normalizes month overflow into the following year.
func monthStart(year, month, offset int) time.Time {
	return time.Date(year, time.Month(month+offset), 1, 0, 0, 0, 0, time.UTC)
}

func monthLabel(year, month, offset int) string {
	t := monthStart(year, month, offset)
	return fmt.Sprintf("%s %d", monthNames[int(t.Month())-1], t.Year())
}

func shortMonthLabel(year, month, offset int) string {
	t := monthStart(year, month, offset)
	return fmt.Sprintf("%s '%02d", monthNames[int(t.Month())-1][:3], t.Year()%100)
}
