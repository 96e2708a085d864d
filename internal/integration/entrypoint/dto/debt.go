// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/household-ledger/backend/internal/application/usecase/debt"
)

// DebtItemResponse represents one installment-bearing expense in the debt view.
type DebtItemResponse struct {
	Description        string  `json:"description"`
	Institution        string  `json:"institution"`
	PaymentMethod      string  `json:"payment_method"`
	Responsible        string  `json:"responsible"`
	InstallmentsTotal  int     `json:"installments_total"`
	InstallmentCurrent int     `json:"installment_current"`
	AmountARS          string  `json:"amount_ars"`
	AmountUSD          *string `json:"amount_usd,omitempty"`
	Remaining          int     `json:"remaining"`
	MonthlyAmount      string  `json:"monthly_amount"`
	PendingAmount      string  `json:"pending_amount"`
}

// DebtStatsResponse aggregates the debt set at the reference month.
type DebtStatsResponse struct {
	Count              int        `json:"count"`
	TotalPending       string     `json:"total_pending"`
	TotalMonthly       string     `json:"total_monthly"`
	MaxRemaining       int        `json:"max_remaining"`
	FreedomDate        *time.Time `json:"freedom_date,omitempty"`
	MonthsUntilFreedom int        `json:"months_until_freedom"`
}

// MonthProjectionResponse is one entry of the forward payment schedule.
type MonthProjectionResponse struct {
	Month         int                `json:"month"`
	Label         string             `json:"label"`
	ShortLabel    string             `json:"short_label"`
	MonthlyTotal  string             `json:"monthly_total"`
	ActiveItems   []DebtItemResponse `json:"active_items"`
	FinalPayments []DebtItemResponse `json:"final_payments"`
	ReleaseAmount string             `json:"release_amount"`
	ReleaseMonth  string             `json:"release_month,omitempty"`
}

// GroupedDebtResponse aggregates the debt items sharing one grouping key.
type GroupedDebtResponse struct {
	Name         string             `json:"name"`
	Items        []DebtItemResponse `json:"items"`
	TotalMonthly string             `json:"total_monthly"`
	TotalPending string             `json:"total_pending"`
	MaxRemaining int                `json:"max_remaining"`
}

// DebtProjectionResponse represents the complete debt analysis.
type DebtProjectionResponse struct {
	Items         []DebtItemResponse        `json:"items"`
	Stats         DebtStatsResponse         `json:"stats"`
	Projection    []MonthProjectionResponse `json:"projection"`
	ByInstitution []GroupedDebtResponse     `json:"by_institution"`
	ByMethod      []GroupedDebtResponse     `json:"by_method"`
	ExchangeRate  string                    `json:"exchange_rate"`
}

// ToDebtItemResponse converts one debt item.
func ToDebtItemResponse(item debt.DebtItem) DebtItemResponse {
	var amountUSD *string
	if item.AmountUSD != nil {
		s := item.AmountUSD.String()
		amountUSD = &s
	}
	return DebtItemResponse{
		Description:        item.Description,
		Institution:        item.Institution,
		PaymentMethod:      item.PaymentMethod,
		Responsible:        item.Responsible,
		InstallmentsTotal:  item.InstallmentsTotal,
		InstallmentCurrent: item.InstallmentCurrent,
		AmountARS:          item.AmountARS.String(),
		AmountUSD:          amountUSD,
		Remaining:          item.Remaining,
		MonthlyAmount:      item.MonthlyAmount.String(),
		PendingAmount:      item.PendingAmount.String(),
	}
}

// ToDebtItemResponses converts a slice of debt items.
func ToDebtItemResponses(items []debt.DebtItem) []DebtItemResponse {
	responses := make([]DebtItemResponse, len(items))
	for i, item := range items {
		responses[i] = ToDebtItemResponse(item)
	}
	return responses
}

// ToDebtProjectionResponse converts the full projection output.
func ToDebtProjectionResponse(output *debt.BuildProjectionOutput) DebtProjectionResponse {
	projection := make([]MonthProjectionResponse, len(output.Projection))
	for i, month := range output.Projection {
		projection[i] = MonthProjectionResponse{
			Month:         month.Month,
			Label:         month.Label,
			ShortLabel:    month.ShortLabel,
			MonthlyTotal:  month.MonthlyTotal.String(),
			ActiveItems:   ToDebtItemResponses(month.ActiveItems),
			FinalPayments: ToDebtItemResponses(month.FinalPayments),
			ReleaseAmount: month.ReleaseAmount.String(),
			ReleaseMonth:  month.ReleaseMonth,
		}
	}

	return DebtProjectionResponse{
		Items: ToDebtItemResponses(output.Items),
		Stats: DebtStatsResponse{
			Count:              output.Stats.Count,
			TotalPending:       output.Stats.TotalPending.String(),
			TotalMonthly:       output.Stats.TotalMonthly.String(),
			MaxRemaining:       output.Stats.MaxRemaining,
			FreedomDate:        output.Stats.FreedomDate,
			MonthsUntilFreedom: output.Stats.MonthsUntilFreedom,
		},
		Projection:    projection,
		ByInstitution: toGroupedDebtResponses(output.ByInstitution),
		ByMethod:      toGroupedDebtResponses(output.ByMethod),
		ExchangeRate:  output.ExchangeRate.String(),
	}
}

func toGroupedDebtResponses(groups []debt.GroupedDebt) []GroupedDebtResponse {
	responses := make([]GroupedDebtResponse, len(groups))
	for i, group := range groups {
		responses[i] = GroupedDebtResponse{
			Name:         group.Name,
			Items:        ToDebtItemResponses(group.Items),
			TotalMonthly: group.TotalMonthly.String(),
			TotalPending: group.TotalPending.String(),
			MaxRemaining: group.MaxRemaining,
		}
	}
	return responses
}
