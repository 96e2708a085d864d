// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/household-ledger/backend/internal/application/usecase/summary"
)

// BreakdownEntryResponse is one slice of a grouped total.
type BreakdownEntryResponse struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Count  int    `json:"count"`
}

// MonthSummaryResponse aggregates one ledger period.
type MonthSummaryResponse struct {
	MonthKey        string                   `json:"month_key"`
	ExpenseCount    int                      `json:"expense_count"`
	TotalARS        string                   `json:"total_ars"`
	TotalUSD        string                   `json:"total_usd"`
	TotalCombined   string                   `json:"total_combined"`
	CountARS        int                      `json:"count_ars"`
	CountUSD        int                      `json:"count_usd"`
	PaidCount       int                      `json:"paid_count"`
	InstallmentOpen int                      `json:"installment_open"`
	ByPaymentMethod []BreakdownEntryResponse `json:"by_payment_method"`
	ByResponsible   []BreakdownEntryResponse `json:"by_responsible"`
	ByCategory      []BreakdownEntryResponse `json:"by_category"`
	ExchangeRate    string                   `json:"exchange_rate"`
}

// ToMonthSummaryResponse converts the summary output.
func ToMonthSummaryResponse(monthKey string, output *summary.GetMonthSummaryOutput) MonthSummaryResponse {
	return MonthSummaryResponse{
		MonthKey:        monthKey,
		ExpenseCount:    output.ExpenseCount,
		TotalARS:        output.TotalARS.String(),
		TotalUSD:        output.TotalUSD.String(),
		TotalCombined:   output.TotalCombined.String(),
		CountARS:        output.CountARS,
		CountUSD:        output.CountUSD,
		PaidCount:       output.PaidCount,
		InstallmentOpen: output.InstallmentOpen,
		ByPaymentMethod: toBreakdownResponses(output.ByPaymentMethod),
		ByResponsible:   toBreakdownResponses(output.ByResponsible),
		ByCategory:      toBreakdownResponses(output.ByCategory),
		ExchangeRate:    output.ExchangeRate.String(),
	}
}

func toBreakdownResponses(entries []summary.BreakdownEntry) []BreakdownEntryResponse {
	responses := make([]BreakdownEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = BreakdownEntryResponse{
			Name:   entry.Name,
			Amount: entry.Amount.String(),
			Count:  entry.Count,
		}
	}
	return responses
}
