// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/domain/entity"
)

// ExpenseRequest represents one expense in API requests. Amounts travel as
// decimal strings to avoid float rounding on the wire.
type ExpenseRequest struct {
	Date               string  `json:"date" binding:"required"`
	Description        string  `json:"description" binding:"required"`
	PaymentMethod      string  `json:"payment_method"`
	Institution        string  `json:"institution"`
	InstallmentsTotal  int     `json:"installments_total"`
	InstallmentCurrent int     `json:"installment_current"`
	AmountARS          string  `json:"amount_ars" binding:"required"`
	AmountUSD          *string `json:"amount_usd"`
	Responsible        string  `json:"responsible"`
	Category           string  `json:"category"`
	Paid               bool    `json:"paid"`
}

// AddExpensesRequest represents the request body for appending expenses.
type AddExpensesRequest struct {
	MonthKey string           `json:"month_key" binding:"required"`
	Expenses []ExpenseRequest `json:"expenses" binding:"required"`
}

// ExpenseResponse represents one expense in API responses.
type ExpenseResponse struct {
	Date               string  `json:"date"`
	Description        string  `json:"description"`
	PaymentMethod      string  `json:"payment_method"`
	Institution        string  `json:"institution"`
	InstallmentsTotal  int     `json:"installments_total"`
	InstallmentCurrent int     `json:"installment_current"`
	AmountARS          string  `json:"amount_ars"`
	AmountUSD          *string `json:"amount_usd,omitempty"`
	Responsible        string  `json:"responsible"`
	Category           string  `json:"category,omitempty"`
	Paid               bool    `json:"paid"`
}

// MonthExpensesResponse represents one period's expense list.
type MonthExpensesResponse struct {
	MonthKey string            `json:"month_key"`
	Expenses []ExpenseResponse `json:"expenses"`
}

// ExpenseListResponse represents the grouped expense listing.
type ExpenseListResponse struct {
	Months []MonthExpensesResponse `json:"months"`
}

// AddExpensesResponse represents the result of appending expenses.
type AddExpensesResponse struct {
	AddedCount int `json:"added_count"`
}

// ToExpenseResponse converts a domain Expense entity to its DTO.
func ToExpenseResponse(expense *entity.Expense) ExpenseResponse {
	var amountUSD *string
	if expense.AmountUSD != nil {
		s := expense.AmountUSD.String()
		amountUSD = &s
	}
	return ExpenseResponse{
		Date:               expense.Date,
		Description:        expense.Description,
		PaymentMethod:      string(expense.PaymentMethod),
		Institution:        string(expense.Institution),
		InstallmentsTotal:  expense.InstallmentsTotal,
		InstallmentCurrent: expense.InstallmentCurrent,
		AmountARS:          expense.AmountARS.String(),
		AmountUSD:          amountUSD,
		Responsible:        string(expense.Responsible),
		Category:           expense.Category,
		Paid:               expense.Paid,
	}
}

// ToExpenseResponses converts a slice of Expense entities.
func ToExpenseResponses(expenses []*entity.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i, expense := range expenses {
		responses[i] = ToExpenseResponse(expense)
	}
	return responses
}

// ToExpenseEntity converts an ExpenseRequest to a domain Expense entity.
func (r ExpenseRequest) ToExpenseEntity() (*entity.Expense, error) {
	amountARS, err := decimal.NewFromString(r.AmountARS)
	if err != nil {
		return nil, err
	}

	var amountUSD *decimal.Decimal
	if r.AmountUSD != nil && *r.AmountUSD != "" {
		usd, err := decimal.NewFromString(*r.AmountUSD)
		if err != nil {
			return nil, err
		}
		amountUSD = &usd
	}

	installmentsTotal := r.InstallmentsTotal
	if installmentsTotal < 1 {
		installmentsTotal = 1
	}
	installmentCurrent := r.InstallmentCurrent
	if installmentCurrent < 1 {
		installmentCurrent = 1
	}

	return &entity.Expense{
		Date:               r.Date,
		Description:        r.Description,
		PaymentMethod:      entity.PaymentMethod(r.PaymentMethod),
		Institution:        entity.Institution(r.Institution),
		InstallmentsTotal:  installmentsTotal,
		InstallmentCurrent: installmentCurrent,
		AmountARS:          amountARS,
		AmountUSD:          amountUSD,
		Responsible:        entity.Responsible(r.Responsible),
		Category:           r.Category,
		Paid:               r.Paid,
	}, nil
}
