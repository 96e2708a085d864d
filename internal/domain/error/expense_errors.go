package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found at the given position.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrInvalidMonthKey is returned when a month key is not in YYYY-MM form.
	ErrInvalidMonthKey = errors.New("invalid month key")

	// ErrEmptyExpenseList is returned when an empty expense list is provided for insertion.
	ErrEmptyExpenseList = errors.New("expense list cannot be empty")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeExpenseNotFound  ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidMonthKey  ExpenseErrorCode = "EXP-010002"
	ErrCodeEmptyExpenseList ExpenseErrorCode = "EXP-010003"

	// Internal errors (99XXXX)
	ErrCodeExpenseInternal ExpenseErrorCode = "EXP-990001"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
