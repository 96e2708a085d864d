// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/household-ledger/backend/internal/domain/entity"
)

// CreateIncomeRequest represents the request body for creating a base income.
type CreateIncomeRequest struct {
	Description string `json:"description" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Currency    string `json:"currency" binding:"required,oneof=ARS USD"`
	Responsible string `json:"responsible" binding:"required"`
	Recurring   *bool  `json:"recurring"`
}

// UpdateIncomeRequest represents a partial update to a base income.
type UpdateIncomeRequest struct {
	Description *string `json:"description"`
	Amount      *string `json:"amount"`
	Currency    *string `json:"currency"`
	Responsible *string `json:"responsible"`
	Recurring   *bool   `json:"recurring"`
}

// SetMonthIncomesRequest replaces a month's income override set. An empty
// list removes the override.
type SetMonthIncomesRequest struct {
	Incomes []CreateIncomeRequest `json:"incomes"`
}

// IncomeResponse represents one income in API responses.
type IncomeResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Currency    string    `json:"currency"`
	Responsible string    `json:"responsible"`
	Recurring   bool      `json:"recurring"`
	CreatedAt   time.Time `json:"created_at"`
}

// IncomeListResponse represents an income set.
type IncomeListResponse struct {
	Incomes []IncomeResponse `json:"incomes"`
}

// MonthIncomesResponse represents a month's resolved income set.
type MonthIncomesResponse struct {
	MonthKey   string           `json:"month_key"`
	Incomes    []IncomeResponse `json:"incomes"`
	Overridden bool             `json:"overridden"`
}

// ToIncomeResponse converts a domain Income entity to its DTO.
func ToIncomeResponse(income *entity.Income) IncomeResponse {
	return IncomeResponse{
		ID:          income.ID.String(),
		Description: income.Description,
		Amount:      income.Amount.String(),
		Currency:    string(income.Currency),
		Responsible: income.Responsible,
		Recurring:   income.Recurring,
		CreatedAt:   income.CreatedAt,
	}
}

// ToIncomeResponses converts a slice of Income entities.
func ToIncomeResponses(incomes []*entity.Income) []IncomeResponse {
	responses := make([]IncomeResponse, len(incomes))
	for i, income := range incomes {
		responses[i] = ToIncomeResponse(income)
	}
	return responses
}
